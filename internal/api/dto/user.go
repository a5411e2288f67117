package dto

type UpdateAvatarRequest struct {
	// Imagem como data URL (data:image/png;base64,...), até 2MB
	DataURL string `json:"dataUrl" binding:"required"`
}

type UpdateAvatarResponse struct {
	AvatarURL string `json:"avatarUrl" example:"https://bucket.s3.us-east-1.amazonaws.com/avatars/x.png"`
	Message   string `json:"message" example:"Avatar atualizado com sucesso"`
}

type ProfileResponse struct {
	User *UserResponse `json:"user"`
}
