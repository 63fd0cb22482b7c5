// File: internal/api/label_response.go
package api

import "iapedia/internal/model"

// swagger:model api.LabelResponse
type LabelResponse struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Free"`
	Slug        string `json:"slug" example:"free"`
	Kind        string `json:"kind" example:"PRICING"`
	Color       string `json:"color" example:"#00aa55"`
	Description string `json:"description" example:"Free to use"`
}

// NewLabelResponse 由 model.Label 組裝回應
func NewLabelResponse(l model.Label) LabelResponse {
	return LabelResponse{
		ID:          l.ID,
		Name:        l.Name,
		Slug:        l.Slug,
		Kind:        l.Kind,
		Color:       l.Color,
		Description: l.Description,
	}
}
