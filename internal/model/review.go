// File: internal/model/review.go
package model

import "time"

type Review struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	ToolID    int       `db:"tool_id" json:"tool_id"`
	Rating    int       `db:"rating" json:"rating"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReviewWithAuthor 為評論加上作者顯示資訊，供工具頁列表使用
type ReviewWithAuthor struct {
	Review
	UserName      string `db:"user_name" json:"user_name"`
	UserAvatarURL string `db:"user_avatar_url" json:"user_avatar_url"`
}
