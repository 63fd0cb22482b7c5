// File: internal/api/create_tool_request.go
package api

// swagger:model api.CreateToolRequest
type CreateToolRequest struct {
	Name        string `json:"name" validate:"required" example:"Foo"`
	Description string `json:"description" example:"An AI tool"`
	URL         string `json:"url" validate:"required,url" example:"https://foo.example.com"`
	ImageURL    string `json:"image_url" example:"https://cdn.example.com/foo.png"`
	BannerURL   string `json:"banner_url" example:"https://cdn.example.com/foo-banner.png"`
	CategoryID  int    `json:"category_id" validate:"required" example:"2"`
	PlanType    string `json:"plan_type" validate:"required,oneof=FREE PAID FREEMIUM" example:"FREE"`
	IsTrending  bool   `json:"is_trending" example:"false"`
	IsNew       bool   `json:"is_new" example:"true"`
	LabelIDs    []int  `json:"label_ids" example:"1,3"`
}
