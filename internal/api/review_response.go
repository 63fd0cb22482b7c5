// File: internal/api/review_response.go
package api

import (
	"time"

	"iapedia/internal/model"
)

// swagger:model api.ReviewResponse
type ReviewResponse struct {
	ID        int       `json:"id" example:"1"`
	UserID    int       `json:"user_id" example:"1"`
	ToolID    int       `json:"tool_id" example:"2"`
	Rating    int       `json:"rating" example:"5"`
	Content   string    `json:"content" example:"Great tool"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// ReviewWithAuthorResponse 評論加上作者顯示資訊
// swagger:model api.ReviewWithAuthorResponse
type ReviewWithAuthorResponse struct {
	ReviewResponse
	UserName      string `json:"user_name" example:"Alice"`
	UserAvatarURL string `json:"user_avatar_url" example:"https://cdn.example.com/a.png"`
}

// NewReviewResponse 由 model.Review 組裝回應
func NewReviewResponse(r model.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		ToolID:    r.ToolID,
		Rating:    r.Rating,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

// NewReviewWithAuthorResponse 由 model.ReviewWithAuthor 組裝回應
func NewReviewWithAuthorResponse(r model.ReviewWithAuthor) ReviewWithAuthorResponse {
	return ReviewWithAuthorResponse{
		ReviewResponse: NewReviewResponse(r.Review),
		UserName:       r.UserName,
		UserAvatarURL:  r.UserAvatarURL,
	}
}
