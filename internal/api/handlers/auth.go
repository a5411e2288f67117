package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ultraai/internal/api/dto"
	"ultraai/internal/api/middleware"
	"ultraai/internal/auth"
	"ultraai/internal/repository"
)

type AuthHandler struct {
	*BaseHandler
	authManager *auth.Manager
}

func NewAuthHandler(authManager *auth.Manager) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler("AuthHandler"),
		authManager: authManager,
	}
}

// @Summary      Criar conta
// @Description  Cria uma conta de usuário e emite a API Key usada como Bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SignUpRequest  true  "Dados da conta"
// @Success      201      {object}  dto.AuthResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      409      {object}  map[string]interface{}
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	h.logger.Info("Criando conta", "email", req.Email)

	user, err := h.authManager.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			h.respondError(c, http.StatusConflict, "Email já cadastrado", nil)
			return
		}
		h.respondError(c, http.StatusInternalServerError, "Erro ao criar conta", err)
		return
	}

	c.JSON(http.StatusCreated, &dto.AuthResponse{
		User:    dto.ToUserResponse(user),
		APIKey:  user.APIKey,
		Message: "Conta criada com sucesso",
	})
}

// @Summary      Entrar
// @Description  Autentica com email e senha e devolve a API Key do usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SignInRequest  true  "Credenciais"
// @Success      200      {object}  dto.AuthResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      401      {object}  map[string]interface{}
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	user, err := h.authManager.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.respondError(c, http.StatusUnauthorized, "Email ou senha incorretos", nil)
			return
		}
		h.respondError(c, http.StatusInternalServerError, "Erro ao autenticar", err)
		return
	}

	c.JSON(http.StatusOK, &dto.AuthResponse{
		User:    dto.ToUserResponse(user),
		APIKey:  user.APIKey,
		Message: "Login realizado com sucesso",
	})
}

// @Summary      Sair
// @Description  Invalida o cache de autenticação da API Key atual
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SignOutResponse
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/signout [post]
// @Security     ApiKeyAuth
func (h *AuthHandler) SignOut(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	h.authManager.InvalidateCache(authCtx.APIKey)
	h.logger.Info("Sessão encerrada", "userID", authCtx.UserID)

	c.JSON(http.StatusOK, &dto.SignOutResponse{
		Message: "Sessão encerrada",
		Success: true,
	})
}
