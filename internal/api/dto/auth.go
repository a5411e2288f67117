package dto

import (
	"time"

	"ultraai/internal/db/models"
)

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email" example:"usuario@example.com"`
	Password    string `json:"password" binding:"required,min=6" example:"senha123"` // Mínimo de 6 caracteres
	DisplayName string `json:"displayName" binding:"required,min=1,max=255" example:"João Silva"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"usuario@example.com"`
	Password string `json:"password" binding:"required" example:"senha123"`
}

type AuthResponse struct {
	User    *UserResponse `json:"user"`
	APIKey  string        `json:"apiKey" example:"550e8400-e29b-41d4-a716-446655440000"` // Enviar como Bearer token
	Message string        `json:"message" example:"Login realizado com sucesso"`
}

type SignOutResponse struct {
	Message string `json:"message" example:"Sessão encerrada"`
	Success bool   `json:"success" example:"true"`
}

type UserResponse struct {
	ID          string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email       string          `json:"email" example:"usuario@example.com"`
	DisplayName string          `json:"displayName" example:"João Silva"`
	Role        models.UserRole `json:"role" example:"user"`
	AvatarURL   string          `json:"avatarUrl,omitempty" example:"https://bucket.s3.us-east-1.amazonaws.com/avatars/x.png"`
	CreatedAt   time.Time       `json:"createdAt" example:"2023-01-01T00:00:00Z"`
}

func ToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
	}
}
