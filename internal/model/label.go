// File: internal/model/label.go
package model

// 標籤分類
const (
	LabelKindPricing    = "PRICING"
	LabelKindCapability = "CAPABILITY"
	LabelKindStatus     = "STATUS"
	LabelKindSpecialty  = "SPECIALTY"
)

type Label struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Kind        string `db:"kind" json:"kind"`
	Color       string `db:"color" json:"color"`
	Description string `db:"description" json:"description"`
}

// ToolLabel 為 Tool 與 Label 的多對多關聯，僅攜帶兩個外鍵
type ToolLabel struct {
	ToolID  int `db:"tool_id" json:"tool_id"`
	LabelID int `db:"label_id" json:"label_id"`
}
