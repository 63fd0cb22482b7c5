// File: internal/model/favorite.go
package model

import "time"

type Favorite struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	ToolID    int       `db:"tool_id" json:"tool_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
