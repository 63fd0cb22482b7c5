// File: internal/api/message_response.go
package api

// MessageResponse 簡單訊息回應
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
