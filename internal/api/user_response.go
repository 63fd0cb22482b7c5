// File: internal/api/user_response.go
package api

import (
	"time"

	"iapedia/internal/model"
)

// UserResponse 回傳給本人或管理員的完整使用者資訊，不含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"USER"`
	AvatarURL string    `json:"avatar_url" example:"https://cdn.example.com/a.png"`
	Bio       string    `json:"bio" example:"AI enthusiast"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// PublicUserResponse 公開的使用者檔案（任何人可讀）
// swagger:model api.PublicUserResponse
type PublicUserResponse struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"Alice"`
	AvatarURL   string    `json:"avatar_url" example:"https://cdn.example.com/a.png"`
	Bio         string    `json:"bio" example:"AI enthusiast"`
	ReviewCount int       `json:"review_count" example:"3"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// NewUserResponse 由 model.User 組裝回應
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
