package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"ultraai/internal/api/dto"
	"ultraai/internal/api/middleware"
	"ultraai/internal/codec"
	"ultraai/internal/db/models"
	"ultraai/internal/repository"
)

const listCacheTTL = 5 * time.Minute

type WebhookHandler struct {
	*BaseHandler
	webhookRepo repository.WebhookRepositoryInterface

	// Cache da listagem por dono; toda mutação invalida a entrada do dono.
	listCache *cache.Cache
}

func NewWebhookHandler(webhookRepo repository.WebhookRepositoryInterface) *WebhookHandler {
	return &WebhookHandler{
		BaseHandler: NewBaseHandler("WebhookHandler"),
		webhookRepo: webhookRepo,
		listCache:   cache.New(listCacheTTL, 10*time.Minute),
	}
}

// @Summary      Listar webhooks do usuário
// @Description  Retorna os webhooks do usuário autenticado, mais recentes primeiro
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.WebhookListResponse
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /webhooks/list [get]
// @Security     ApiKeyAuth
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	if cached, found := h.listCache.Get(authCtx.UserID); found {
		if response, ok := cached.(*dto.WebhookListResponse); ok {
			c.JSON(http.StatusOK, response)
			return
		}
	}

	webhooks, err := h.webhookRepo.GetByOwnerID(c.Request.Context(), authCtx.UserID)
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, "Erro ao listar webhooks", err)
		return
	}

	response := &dto.WebhookListResponse{
		Webhooks: dto.ToWebhookResponseList(webhooks),
		Total:    len(webhooks),
	}

	h.listCache.Set(authCtx.UserID, response, cache.DefaultExpiration)

	c.JSON(http.StatusOK, response)
}

// @Summary      Registrar webhook
// @Description  Registra um assistente externo (endpoint HTTP) para o usuário autenticado
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateWebhookRequest  true  "Dados do webhook"
// @Success      201      {object}  dto.CreateWebhookResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      401      {object}  map[string]interface{}
// @Router       /webhooks/add [post]
// @Security     ApiKeyAuth
func (h *WebhookHandler) AddWebhook(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	webhook := &models.Webhook{
		OwnerID:      authCtx.UserID,
		Name:         req.Name,
		URL:          req.URL,
		AuthUsername: req.Username,
	}
	if req.Password != "" {
		webhook.AuthPasswordEncrypted = codec.Encode(req.Password)
	}

	if err := h.webhookRepo.Create(c.Request.Context(), webhook); err != nil {
		h.respondError(c, http.StatusInternalServerError, "Erro ao criar webhook", err)
		return
	}

	h.listCache.Delete(authCtx.UserID)
	h.logger.Info("Webhook criado", "webhookID", webhook.ID, "ownerID", authCtx.UserID)

	c.JSON(http.StatusCreated, &dto.CreateWebhookResponse{
		Webhook: dto.ToWebhookResponse(webhook),
		Message: "Webhook criado com sucesso",
	})
}

// @Summary      Obter webhook
// @Description  Retorna um webhook do usuário autenticado
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        webhookID  path      string  true  "ID do webhook"
// @Success      200        {object}  dto.WebhookResponse
// @Failure      401        {object}  map[string]interface{}
// @Failure      404        {object}  map[string]interface{}
// @Router       /webhooks/{webhookID}/info [get]
// @Security     ApiKeyAuth
func (h *WebhookHandler) GetWebhookInfo(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	webhookID := c.Param("webhookID")
	webhook, err := h.webhookRepo.GetByIDForOwner(c.Request.Context(), webhookID, authCtx.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			h.respondError(c, http.StatusNotFound, "Webhook não encontrado", nil)
			return
		}
		h.respondError(c, http.StatusInternalServerError, "Erro ao buscar webhook", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWebhookResponse(webhook))
}

// @Summary      Atualizar webhook
// @Description  Atualiza nome, URL e credenciais. Senha omitida mantém a armazenada
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        webhookID  path      string                    true  "ID do webhook"
// @Param        request    body      dto.UpdateWebhookRequest  true  "Campos do patch"
// @Success      200        {object}  dto.UpdateWebhookResponse
// @Failure      400        {object}  map[string]interface{}
// @Failure      401        {object}  map[string]interface{}
// @Failure      404        {object}  map[string]interface{}
// @Router       /webhooks/{webhookID}/update [put]
// @Security     ApiKeyAuth
func (h *WebhookHandler) UpdateWebhook(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	webhookID := c.Param("webhookID")

	var req dto.UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	patch := &repository.WebhookPatch{
		Name:     req.Name,
		URL:      req.URL,
		Username: req.Username,
	}
	if req.Password != nil {
		encoded := codec.Encode(*req.Password)
		patch.PasswordEncrypted = &encoded
	}

	webhook, err := h.webhookRepo.UpdateForOwner(c.Request.Context(), webhookID, authCtx.UserID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			h.respondError(c, http.StatusNotFound, "Webhook não encontrado", nil)
			return
		}
		h.respondError(c, http.StatusInternalServerError, "Erro ao atualizar webhook", err)
		return
	}

	h.listCache.Delete(authCtx.UserID)
	h.logger.Info("Webhook atualizado", "webhookID", webhookID, "ownerID", authCtx.UserID)

	c.JSON(http.StatusOK, &dto.UpdateWebhookResponse{
		Webhook: dto.ToWebhookResponse(webhook),
		Message: "Webhook atualizado com sucesso",
	})
}

// @Summary      Remover webhook
// @Description  Remove um webhook do usuário autenticado
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        webhookID  path      string  true  "ID do webhook"
// @Success      200        {object}  dto.DeleteWebhookResponse
// @Failure      401        {object}  map[string]interface{}
// @Failure      404        {object}  map[string]interface{}
// @Router       /webhooks/{webhookID}/delete [delete]
// @Security     ApiKeyAuth
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	authCtx, err := middleware.RequireAuth(c)
	if err != nil {
		h.respondError(c, http.StatusUnauthorized, "Autenticação necessária", nil)
		return
	}

	webhookID := c.Param("webhookID")

	if err := h.webhookRepo.DeleteForOwner(c.Request.Context(), webhookID, authCtx.UserID); err != nil {
		if errors.Is(err, repository.ErrWebhookNotFound) {
			h.respondError(c, http.StatusNotFound, "Webhook não encontrado", nil)
			return
		}
		h.respondError(c, http.StatusInternalServerError, "Erro ao remover webhook", err)
		return
	}

	h.listCache.Delete(authCtx.UserID)
	h.logger.Info("Webhook removido", "webhookID", webhookID, "ownerID", authCtx.UserID)

	c.JSON(http.StatusOK, &dto.DeleteWebhookResponse{
		Message: "Webhook removido com sucesso",
		Success: true,
	})
}
