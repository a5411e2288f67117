package dto

type RelayRequest struct {
	WebhookID string `json:"webhookId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"` // Webhook selecionado no chat
	Prompt    string `json:"prompt" binding:"required" example:"Olá, tudo bem?"`
}

type RelayResponse struct {
	AIResponse string `json:"aiResponse" example:"Olá! Como posso ajudar?"`
}
