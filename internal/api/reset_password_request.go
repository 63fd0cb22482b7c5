// File: internal/api/reset_password_request.go
package api

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required" example:"1f8d..."`
	Password string `json:"password" validate:"required" example:"Abcdef1!"`
}
