// File: internal/api/update_me_request.go
package api

// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	Name      string `json:"name" validate:"required" example:"Alice"`
	AvatarURL string `json:"avatar_url" example:"https://cdn.example.com/a.png"`
	Bio       string `json:"bio" example:"AI enthusiast"`
}
