// File: internal/api/create_review_request.go
package api

// 評論者身分取自通過驗證的令牌，請求不攜帶 user id
// swagger:model api.CreateReviewRequest
type CreateReviewRequest struct {
	ToolID  int    `json:"tool_id" validate:"required" example:"1"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"5"`
	Content string `json:"content" example:"Great tool"`
}
