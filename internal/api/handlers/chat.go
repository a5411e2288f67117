package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ultraai/internal/api/dto"
	"ultraai/internal/api/middleware"
	"ultraai/internal/db/models"
	"ultraai/internal/relay"
	"ultraai/internal/repository"
)

const relayFallbackMessage = "Desculpe, não consegui obter uma resposta do assistente. Tente novamente."

type ChatHandler struct {
	*BaseHandler
	webhookRepo repository.WebhookRepositoryInterface
	dispatcher  *relay.Dispatcher
}

func NewChatHandler(webhookRepo repository.WebhookRepositoryInterface, dispatcher *relay.Dispatcher) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler("ChatHandler"),
		webhookRepo: webhookRepo,
		dispatcher:  dispatcher,
	}
}

// @Summary      Encaminhar prompt ao assistente
// @Description  Envia o prompt ao webhook selecionado e devolve a resposta da IA
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RelayRequest  true  "Prompt e webhook de destino"
// @Success      200      {object}  dto.RelayResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      401      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}
// @Failure      502      {object}  map[string]interface{}
// @Router       /chat/relay [post]
// @Security     ApiKeyAuth
func (h *ChatHandler) Relay(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	var req dto.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	// O webhook é resolvido pelo dono autenticado; não aceitamos URL nem
	// credenciais vindas do cliente.
	webhook, err := h.webhookRepo.GetByIDForOwner(c.Request.Context(), req.WebhookID, authCtx.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			h.respondError(c, http.StatusNotFound, "Webhook não encontrado", nil)
			return
		}
		h.respondError(c, http.StatusInternalServerError, "Erro ao buscar webhook", err)
		return
	}

	output, err := h.dispatcher.Relay(c.Request.Context(), h.relayInput(req.Prompt, webhook))
	if err != nil {
		var relayErr *relay.Error
		if errors.As(err, &relayErr) {
			h.logger.Warn("Falha no relay", "webhookID", webhook.ID, "reason", relayErr.Reason)
			h.respondError(c, http.StatusBadGateway, relayFallbackMessage, relayErr)
			return
		}
		h.respondError(c, http.StatusInternalServerError, relayFallbackMessage, err)
		return
	}

	c.JSON(http.StatusOK, &dto.RelayResponse{
		AIResponse: output.AIResponse,
	})
}

func (h *ChatHandler) relayInput(prompt string, webhook *models.Webhook) relay.Input {
	return relay.Input{
		Prompt:            prompt,
		WebhookURL:        webhook.URL,
		Username:          webhook.AuthUsername,
		PasswordEncrypted: webhook.AuthPasswordEncrypted,
	}
}
