package dto

import (
	"github.com/google/uuid"

	"mosque_backend/internals/features/users/user/model"
)

// ================== RESPONSE ==================
type UserResponse struct {
	ID          uuid.UUID              `json:"id"`
	UserName    string                 `json:"user_name"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	AvatarURL   string                 `json:"avatar_url"`
	Preferences map[string]interface{} `json:"preferences"`
	JoinedAt    string                 `json:"joined_at"`
}

// ================== REQUEST ==================
type UpdateProfileRequest struct {
	UserName    *string                `json:"user_name" validate:"omitempty,min=3,max=100"`
	Phone       *string                `json:"phone" validate:"omitempty,max=30"`
	Preferences map[string]interface{} `json:"preferences"`
}

// ================ CONVERSION =================
func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:          m.ID,
		UserName:    m.UserName,
		Email:       m.Email,
		Phone:       m.Phone,
		AvatarURL:   m.AvatarURL,
		Preferences: m.Preferences,
		JoinedAt:    m.CreatedAt.Format("2006-01-02"),
	}
}
