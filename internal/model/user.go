// File: internal/model/user.go
package model

import "time"

// 使用者角色
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID                  int        `db:"id" json:"id"`
	Name                string     `db:"name" json:"name"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	Role                string     `db:"role" json:"role"`
	AvatarURL           string     `db:"avatar_url" json:"avatar_url"`
	Bio                 string     `db:"bio" json:"bio"`
	ResetToken          *string    `db:"reset_token" json:"-"`
	ResetTokenExpiresAt *time.Time `db:"reset_token_expires_at" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
}

// IsAdmin 判斷使用者是否具有管理員角色
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
