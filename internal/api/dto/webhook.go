package dto

import (
	"fmt"
	"net/url"
	"time"

	"ultraai/internal/db/models"
)

// ValidationError sinaliza entrada mal formada; nunca chega ao banco.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type CreateWebhookRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255" example:"Bot de Suporte"` // Nome de exibição do assistente
	URL      string `json:"url" binding:"required" example:"https://n8n.example.com/webhook/abc"`
	Username string `json:"username,omitempty" example:"usuario"` // Usuário de Basic Auth (opcional)
	Password string `json:"password,omitempty" example:"senha"`   // Senha de Basic Auth (opcional, nunca armazenada em claro)
}

func (r *CreateWebhookRequest) Validate() error {
	return validateWebhookURL(r.URL)
}

// UpdateWebhookRequest é o patch explícito de atualização: username e
// password nil significam "não alterar o valor armazenado".
type UpdateWebhookRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255" example:"Bot de Suporte"`
	URL      string  `json:"url" binding:"required" example:"https://n8n.example.com/webhook/abc"`
	Username *string `json:"username,omitempty" example:"usuario"`
	Password *string `json:"password,omitempty" example:"nova-senha"`
}

func (r *UpdateWebhookRequest) Validate() error {
	return validateWebhookURL(r.URL)
}

func validateWebhookURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "deve ser uma URL HTTP(S) absoluta"}
	}
	return nil
}

type WebhookResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string    `json:"name" example:"Bot de Suporte"`
	URL         string    `json:"url" example:"https://n8n.example.com/webhook/abc"`
	Username    string    `json:"username,omitempty" example:"usuario"`
	HasPassword bool      `json:"hasPassword" example:"true"` // A senha codificada nunca é devolvida
	CreatedAt   time.Time `json:"createdAt" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2023-01-01T00:00:00Z"`
}

type WebhookListResponse struct {
	Webhooks []*WebhookResponse `json:"webhooks"`
	Total    int                `json:"total"`
}

type CreateWebhookResponse struct {
	Webhook *WebhookResponse `json:"webhook"`
	Message string           `json:"message" example:"Webhook criado com sucesso"`
}

type UpdateWebhookResponse struct {
	Webhook *WebhookResponse `json:"webhook"`
	Message string           `json:"message" example:"Webhook atualizado com sucesso"`
}

type DeleteWebhookResponse struct {
	Message string `json:"message" example:"Webhook removido com sucesso"`
	Success bool   `json:"success" example:"true"`
}

func ToWebhookResponse(webhook *models.Webhook) *WebhookResponse {
	if webhook == nil {
		return nil
	}

	return &WebhookResponse{
		ID:          webhook.ID,
		Name:        webhook.Name,
		URL:         webhook.URL,
		Username:    webhook.AuthUsername,
		HasPassword: webhook.HasPassword(),
		CreatedAt:   webhook.CreatedAt,
		UpdatedAt:   webhook.UpdatedAt,
	}
}

func ToWebhookResponseList(webhooks []*models.Webhook) []*WebhookResponse {
	if len(webhooks) == 0 {
		return []*WebhookResponse{}
	}

	responses := make([]*WebhookResponse, len(webhooks))
	for i, webhook := range webhooks {
		responses[i] = ToWebhookResponse(webhook)
	}
	return responses
}
