package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ultraai/internal/db/models"
	"ultraai/internal/logger"
)

type AuthContextKey string

const (
	AuthContextKeyValue AuthContextKey = "auth"
)

// APIKeyValidator resolve a identidade do chamador a partir da API Key.
type APIKeyValidator interface {
	ValidateAPIKey(ctx context.Context, apiKey string) (*models.User, error)
}

// AuthContext carrega a identidade resolvida do chamador. O UserID daqui é
// a única fonte usada como ownerId nas operações de webhook — nunca um
// valor vindo do corpo da requisição.
type AuthContext struct {
	APIKey string
	UserID string
	User   *models.User
}

func AuthMiddleware(validator APIKeyValidator) gin.HandlerFunc {
	authLogger := logger.NewForComponent("AuthMiddleware")

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			authLogger.Warn("API Key não fornecida", "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     true,
				"message":   "API Key é obrigatória",
				"code":      http.StatusUnauthorized,
				"timestamp": time.Now().Unix(),
			})
			c.Abort()
			return
		}

		apiKey := strings.TrimPrefix(authHeader, "Bearer ")
		apiKey = strings.TrimSpace(apiKey)

		if apiKey == "" {
			authLogger.Warn("API Key vazia", "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     true,
				"message":   "API Key inválida",
				"code":      http.StatusUnauthorized,
				"timestamp": time.Now().Unix(),
			})
			c.Abort()
			return
		}

		user, err := validator.ValidateAPIKey(c.Request.Context(), apiKey)
		if err != nil || user == nil {
			authLogger.Warn("API Key inválida", "apiKey", maskAPIKey(apiKey), "path", c.Request.URL.Path, "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     true,
				"message":   "API Key inválida",
				"code":      http.StatusUnauthorized,
				"timestamp": time.Now().Unix(),
			})
			c.Abort()
			return
		}

		authCtx := &AuthContext{
			APIKey: apiKey,
			UserID: user.ID,
			User:   user,
		}

		c.Set(string(AuthContextKeyValue), authCtx)

		authLogger.Debug("Autenticação bem-sucedida",
			"apiKey", maskAPIKey(apiKey),
			"userID", user.ID,
			"path", c.Request.URL.Path,
			"method", c.Request.Method)

		c.Next()
	}
}

func GetAuthContext(c *gin.Context) (*AuthContext, bool) {
	authCtx, exists := c.Get(string(AuthContextKeyValue))
	if !exists {
		return nil, false
	}
	auth, ok := authCtx.(*AuthContext)
	return auth, ok
}

func GetAuthContextFromContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(AuthContextKeyValue).(*AuthContext)
	return authCtx, ok
}

func RequireAuth(c *gin.Context) (*AuthContext, error) {
	authCtx, ok := GetAuthContext(c)
	if !ok {
		return nil, &AuthError{Message: "Autenticação necessária"}
	}
	return authCtx, nil
}

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 8 {
		return strings.Repeat("*", len(apiKey))
	}
	return apiKey[:4] + strings.Repeat("*", len(apiKey)-8) + apiKey[len(apiKey)-4:]
}
