// File: internal/store/favorite.go
package store

import (
	"context"
	"fmt"

	"iapedia/internal/database"
	"iapedia/internal/model"
)

// AddFavorite 新增收藏並同步遞增 tools.favorites_count。
// data-modifying CTE 讓兩步寫入落在同一條語句內：
// 收藏列與計數器不可能只改其中之一。
// (user, tool) 已存在 → ErrDuplicate；工具不存在 → ErrNotFound（外鍵違反）
func AddFavorite(ctx context.Context, db database.DB, userID, toolID int) error {
	_, err := db.Exec(ctx,
		`WITH ins AS (
		     INSERT INTO favorites (user_id, tool_id)
		     VALUES ($1, $2)
		     RETURNING tool_id
		 )
		 UPDATE tools SET favorites_count = favorites_count + 1
		 WHERE id IN (SELECT tool_id FROM ins)`,
		userID,
		toolID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("AddFavorite: %w", err)
	}
	return nil
}

// RemoveFavorite 移除收藏並同步遞減計數器；收藏不存在 → ErrNotFound
func RemoveFavorite(ctx context.Context, db database.DB, userID, toolID int) error {
	tag, err := db.Exec(ctx,
		`WITH del AS (
		     DELETE FROM favorites
		     WHERE user_id = $1 AND tool_id = $2
		     RETURNING tool_id
		 )
		 UPDATE tools SET favorites_count = favorites_count - 1
		 WHERE id IN (SELECT tool_id FROM del)`,
		userID,
		toolID,
	)
	if err != nil {
		return fmt.Errorf("RemoveFavorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func IsFavorited(ctx context.Context, db database.DB, userID, toolID int) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND tool_id = $2)`,
		userID,
		toolID,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("IsFavorited: %w", err)
	}
	return exists, nil
}

// ListFavoriteToolsByUser 回傳使用者收藏的工具（新收藏在前）
func ListFavoriteToolsByUser(ctx context.Context, db database.DB, userID int) ([]model.Tool, error) {
	rows, err := db.Query(ctx,
		`SELECT `+toolColumnsPrefixed+`
		 FROM favorites f
		 JOIN tools t ON t.id = f.tool_id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFavoriteToolsByUser: %w", err)
	}
	tools, err := scanTools(rows)
	if err != nil {
		return nil, fmt.Errorf("ListFavoriteToolsByUser: %w", err)
	}
	return tools, nil
}
