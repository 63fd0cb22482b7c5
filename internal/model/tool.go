// File: internal/model/tool.go
package model

import "time"

// 工具收費方案
const (
	PlanFree     = "FREE"
	PlanPaid     = "PAID"
	PlanFreemium = "FREEMIUM"
)

type Tool struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description"`
	URL            string    `db:"url" json:"url"`
	ImageURL       string    `db:"image_url" json:"image_url"`
	BannerURL      string    `db:"banner_url" json:"banner_url"`
	CategoryID     int       `db:"category_id" json:"category_id"`
	PlanType       string    `db:"plan_type" json:"plan_type"`
	IsTrending     bool      `db:"is_trending" json:"is_trending"`
	IsNew          bool      `db:"is_new" json:"is_new"`
	Views          int       `db:"views" json:"views"`
	FavoritesCount int       `db:"favorites_count" json:"favorites_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
