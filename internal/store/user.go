// File: internal/store/user.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"iapedia/internal/database"
	"iapedia/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, role, avatar_url, bio, reset_token, reset_token_expires_at, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.AvatarURL,
		&u.Bio,
		&u.ResetToken,
		&u.ResetTokenExpiresAt,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, avatar_url, bio)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.AvatarURL,
		u.Bio,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func UpdateUserProfile(ctx context.Context, db database.DB, userID int, name, avatarURL, bio string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET name = $1, avatar_url = $2, bio = $3
		 WHERE id = $4`,
		name,
		avatarURL,
		bio,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserProfile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}

// SetResetToken 覆寫使用者的重設令牌與到期時間（每人同時僅一組有效令牌）
func SetResetToken(ctx context.Context, db database.DB, userID int, token string, expiresAt time.Time) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET reset_token = $1, reset_token_expires_at = $2
		 WHERE id = $3`,
		token,
		expiresAt,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetResetToken: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearResetToken 清除重設令牌（寄信失敗時回滾用）
func ClearResetToken(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET reset_token = NULL, reset_token_expires_at = NULL
		 WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ClearResetToken: %w", err)
	}
	return nil
}

// ResetPasswordByToken 以單一語句消費重設令牌：
// 令牌須存在且未過期，成功時寫入新密碼並清除令牌，
// 失敗（不存在或已過期）不改動任何狀態
func ResetPasswordByToken(ctx context.Context, db database.DB, token, passwordHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, reset_token = NULL, reset_token_expires_at = NULL
		 WHERE reset_token = $2 AND reset_token_expires_at > now()`,
		passwordHash,
		token,
	)
	if err != nil {
		return fmt.Errorf("ResetPasswordByToken: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
