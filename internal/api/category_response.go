// File: internal/api/category_response.go
package api

import "iapedia/internal/model"

// swagger:model api.CategoryResponse
type CategoryResponse struct {
	ID              int    `json:"id" example:"2"`
	Name            string `json:"name" example:"Writing"`
	Description     string `json:"description" example:"Writing assistants"`
	LongDescription string `json:"long_description" example:"Tools that help with writing"`
	IconURL         string `json:"icon_url" example:"https://cdn.example.com/pen.svg"`
}

// CategoryWithToolsResponse 分類詳情加上所屬工具
// swagger:model api.CategoryWithToolsResponse
type CategoryWithToolsResponse struct {
	CategoryResponse
	Tools []ToolResponse `json:"tools"`
}

// NewCategoryResponse 由 model.Category 組裝回應
func NewCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		LongDescription: c.LongDescription,
		IconURL:         c.IconURL,
	}
}
