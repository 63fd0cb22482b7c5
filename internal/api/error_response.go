// File: internal/api/error_response.go
package api

// 錯誤分類標籤，對應 HTTP 狀態碼
const (
	ErrValidation = "validation_error"
	ErrUnauth     = "unauthorized"
	ErrForbidden  = "forbidden"
	ErrNotFound   = "not_found"
	ErrConflict   = "conflict"
	ErrInternal   = "internal_error"
)

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// 機器可讀的錯誤標籤
	Error string `json:"error" example:"validation_error"`
	// 人類可讀的錯誤描述
	Message string `json:"message" example:"invalid request body"`
}
