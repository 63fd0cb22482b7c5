// File: internal/api/forgot_password_request.go
package api

// swagger:model api.ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}
