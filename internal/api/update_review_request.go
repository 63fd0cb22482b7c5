// File: internal/api/update_review_request.go
package api

// swagger:model api.UpdateReviewRequest
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Content string `json:"content" example:"Still good"`
}
