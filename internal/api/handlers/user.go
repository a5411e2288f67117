package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ultraai/internal/api/dto"
	"ultraai/internal/api/middleware"
	"ultraai/internal/auth"
	"ultraai/internal/repository"
	"ultraai/internal/storage"
)

type UserHandler struct {
	*BaseHandler
	userRepo    repository.UserRepositoryInterface
	authManager *auth.Manager
	avatars     *storage.AvatarStore
}

func NewUserHandler(userRepo repository.UserRepositoryInterface, authManager *auth.Manager, avatars *storage.AvatarStore) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler("UserHandler"),
		userRepo:    userRepo,
		authManager: authManager,
		avatars:     avatars,
	}
}

// @Summary      Perfil do usuário
// @Description  Retorna o perfil do usuário autenticado
// @Tags         profile
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  map[string]interface{}
// @Router       /profile/me [get]
// @Security     ApiKeyAuth
func (h *UserHandler) Me(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	c.JSON(http.StatusOK, &dto.ProfileResponse{
		User: dto.ToUserResponse(authCtx.User),
	})
}

// @Summary      Atualizar avatar
// @Description  Recebe a imagem como data URL, grava no bucket e salva a URL no perfil
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      dto.UpdateAvatarRequest  true  "Avatar em data URL"
// @Success      200      {object}  dto.UpdateAvatarResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      401      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]interface{}
// @Router       /profile/avatar [post]
// @Security     ApiKeyAuth
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	avatarURL, err := h.avatars.UploadFromDataURL(c.Request.Context(), authCtx.UserID, req.DataURL)
	if err != nil {
		if errors.Is(err, storage.ErrAvatarTooLarge) ||
			errors.Is(err, storage.ErrInvalidDataURL) ||
			errors.Is(err, storage.ErrUnsupportedFormat) {
			h.respondError(c, http.StatusBadRequest, "Imagem de avatar inválida", err)
			return
		}
		h.respondError(c, http.StatusInternalServerError, "Erro ao enviar avatar", err)
		return
	}

	if err := h.userRepo.UpdateAvatarURL(c.Request.Context(), authCtx.UserID, avatarURL); err != nil {
		h.respondError(c, http.StatusInternalServerError, "Erro ao salvar avatar no perfil", err)
		return
	}

	// O usuário em cache ficou desatualizado
	if err := h.authManager.RefreshCache(c.Request.Context(), authCtx.APIKey); err != nil {
		h.logger.Warn("Erro ao atualizar cache do usuário", "userID", authCtx.UserID, "error", err)
	}

	h.logger.Info("Avatar atualizado", "userID", authCtx.UserID)

	c.JSON(http.StatusOK, &dto.UpdateAvatarResponse{
		AvatarURL: avatarURL,
		Message:   "Avatar atualizado com sucesso",
	})
}
