package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ultraai/internal/logger"
)

type BaseHandler struct {
	logger logger.Logger
}

func NewBaseHandler(component string) *BaseHandler {
	return &BaseHandler{
		logger: logger.NewForComponent(component),
	}
}

func (h *BaseHandler) respondError(c *gin.Context, statusCode int, message string, err error) {
	h.logger.Error("Erro HTTP", "status", statusCode, "message", message, "error", err)

	response := gin.H{
		"error":     true,
		"message":   message,
		"code":      statusCode,
		"timestamp": time.Now().Unix(),
	}
	if err != nil {
		response["details"] = err.Error()
	}

	c.JSON(statusCode, response)
}

// @Summary      Verificar saúde da API
// @Description  Endpoint para verificar se a API está funcionando
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func HealthCheck(c *gin.Context) {
	response := map[string]interface{}{
		"status":    "ok",
		"service":   "ultraai-api",
		"timestamp": time.Now().Unix(),
		"version":   "1.0.0",
	}

	c.JSON(http.StatusOK, response)
}
