// File: internal/api/label_requests.go
package api

// swagger:model api.CreateLabelRequest
type CreateLabelRequest struct {
	Name        string `json:"name" validate:"required" example:"Free"`
	Slug        string `json:"slug" validate:"required" example:"free"`
	Kind        string `json:"kind" validate:"required,oneof=PRICING CAPABILITY STATUS SPECIALTY" example:"PRICING"`
	Color       string `json:"color" example:"#00aa55"`
	Description string `json:"description" example:"Free to use"`
}

// swagger:model api.UpdateLabelRequest
type UpdateLabelRequest struct {
	Name        string `json:"name" validate:"required" example:"Free"`
	Slug        string `json:"slug" validate:"required" example:"free"`
	Kind        string `json:"kind" validate:"required,oneof=PRICING CAPABILITY STATUS SPECIALTY" example:"PRICING"`
	Color       string `json:"color" example:"#00aa55"`
	Description string `json:"description" example:"Free to use"`
}
