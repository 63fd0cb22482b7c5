// File: internal/api/category_requests.go
package api

// swagger:model api.CreateCategoryRequest
type CreateCategoryRequest struct {
	Name            string `json:"name" validate:"required" example:"Writing"`
	Description     string `json:"description" example:"Writing assistants"`
	LongDescription string `json:"long_description" example:"Tools that help with writing"`
	IconURL         string `json:"icon_url" example:"https://cdn.example.com/pen.svg"`
}

// swagger:model api.UpdateCategoryRequest
type UpdateCategoryRequest struct {
	Name            string `json:"name" validate:"required" example:"Writing"`
	Description     string `json:"description" example:"Writing assistants"`
	LongDescription string `json:"long_description" example:"Tools that help with writing"`
	IconURL         string `json:"icon_url" example:"https://cdn.example.com/pen.svg"`
}
