// File: internal/api/tool_response.go
package api

import (
	"time"

	"iapedia/internal/model"
	"iapedia/internal/service"
)

// ToolResponse 工具資訊加上標籤與評論統計
// swagger:model api.ToolResponse
type ToolResponse struct {
	ID             int             `json:"id" example:"1"`
	Name           string          `json:"name" example:"Foo"`
	Description    string          `json:"description" example:"An AI tool"`
	URL            string          `json:"url" example:"https://foo.example.com"`
	ImageURL       string          `json:"image_url" example:"https://cdn.example.com/foo.png"`
	BannerURL      string          `json:"banner_url" example:"https://cdn.example.com/foo-banner.png"`
	CategoryID     int             `json:"category_id" example:"2"`
	PlanType       string          `json:"plan_type" example:"FREE"`
	IsTrending     bool            `json:"is_trending" example:"false"`
	IsNew          bool            `json:"is_new" example:"true"`
	Views          int             `json:"views" example:"42"`
	FavoritesCount int             `json:"favorites_count" example:"7"`
	AverageRating  float64         `json:"average_rating" example:"4.7"`
	ReviewCount    int             `json:"review_count" example:"3"`
	Labels         []LabelResponse `json:"labels"`
	CreatedAt      time.Time       `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// SearchToolsResponse 搜尋結果與分頁中繼資料
// swagger:model api.SearchToolsResponse
type SearchToolsResponse struct {
	Tools []ToolResponse `json:"tools"`
	Total int            `json:"total" example:"57"`
	Page  int            `json:"page" example:"1"`
	Limit int            `json:"limit" example:"10"`
	Pages int            `json:"pages" example:"6"`
}

// NewToolResponse 組裝工具回應，評分統計由已載入的評論列計算
func NewToolResponse(t model.Tool, labels []model.Label, reviews []model.Review) ToolResponse {
	avg, count := service.AverageRating(reviews)
	ls := make([]LabelResponse, 0, len(labels))
	for _, l := range labels {
		ls = append(ls, NewLabelResponse(l))
	}
	return ToolResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		URL:            t.URL,
		ImageURL:       t.ImageURL,
		BannerURL:      t.BannerURL,
		CategoryID:     t.CategoryID,
		PlanType:       t.PlanType,
		IsTrending:     t.IsTrending,
		IsNew:          t.IsNew,
		Views:          t.Views,
		FavoritesCount: t.FavoritesCount,
		AverageRating:  avg,
		ReviewCount:    count,
		Labels:         ls,
		CreatedAt:      t.CreatedAt,
	}
}
