// File: internal/api/login_request.go
package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Abcdef1!"`
}
