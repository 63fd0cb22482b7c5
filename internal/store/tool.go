// File: internal/store/tool.go
package store

import (
	"context"
	"errors"
	"fmt"

	"iapedia/internal/database"
	"iapedia/internal/model"

	"github.com/jackc/pgx/v5"
)

const toolColumns = `id, name, description, url, image_url, banner_url, category_id, plan_type, is_trending, is_new, views, favorites_count, created_at`

const toolColumnsPrefixed = `t.id, t.name, t.description, t.url, t.image_url, t.banner_url, t.category_id, t.plan_type, t.is_trending, t.is_new, t.views, t.favorites_count, t.created_at`

func scanTool(row pgx.Row) (*model.Tool, error) {
	t := &model.Tool{}
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.URL,
		&t.ImageURL,
		&t.BannerURL,
		&t.CategoryID,
		&t.PlanType,
		&t.IsTrending,
		&t.IsNew,
		&t.Views,
		&t.FavoritesCount,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func scanTools(rows pgx.Rows) ([]model.Tool, error) {
	defer rows.Close()
	var tools []model.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tools, nil
}

func CreateTool(ctx context.Context, db database.DB, t *model.Tool) (*model.Tool, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tools (name, description, url, image_url, banner_url, category_id, plan_type, is_trending, is_new)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, views, favorites_count, created_at`,
		t.Name,
		t.Description,
		t.URL,
		t.ImageURL,
		t.BannerURL,
		t.CategoryID,
		t.PlanType,
		t.IsTrending,
		t.IsNew,
	)
	if err := row.Scan(&t.ID, &t.Views, &t.FavoritesCount, &t.CreatedAt); err != nil {
		// 指向不存在分類的外鍵違反視為 not found
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("CreateTool: %w", err)
	}
	return t, nil
}

func GetToolByID(ctx context.Context, db database.DB, toolID int) (*model.Tool, error) {
	row := db.QueryRow(ctx,
		`SELECT `+toolColumns+` FROM tools WHERE id = $1`,
		toolID,
	)
	t, err := scanTool(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetToolByID: %w", err)
	}
	return t, nil
}

func ListTools(ctx context.Context, db database.DB) ([]model.Tool, error) {
	rows, err := db.Query(ctx,
		`SELECT `+toolColumns+` FROM tools ORDER BY views DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTools: %w", err)
	}
	tools, err := scanTools(rows)
	if err != nil {
		return nil, fmt.Errorf("ListTools: %w", err)
	}
	return tools, nil
}

func ListToolsByCategory(ctx context.Context, db database.DB, categoryID int) ([]model.Tool, error) {
	rows, err := db.Query(ctx,
		`SELECT `+toolColumns+` FROM tools WHERE category_id = $1 ORDER BY views DESC, id`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListToolsByCategory: %w", err)
	}
	tools, err := scanTools(rows)
	if err != nil {
		return nil, fmt.Errorf("ListToolsByCategory: %w", err)
	}
	return tools, nil
}

func UpdateTool(ctx context.Context, db database.DB, t *model.Tool) error {
	tag, err := db.Exec(ctx,
		`UPDATE tools
		 SET name = $1, description = $2, url = $3, image_url = $4, banner_url = $5,
		     category_id = $6, plan_type = $7, is_trending = $8, is_new = $9
		 WHERE id = $10`,
		t.Name,
		t.Description,
		t.URL,
		t.ImageURL,
		t.BannerURL,
		t.CategoryID,
		t.PlanType,
		t.IsTrending,
		t.IsNew,
		t.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("UpdateTool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTool(ctx context.Context, db database.DB, toolID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM tools WHERE id = $1`,
		toolID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews 遞增瀏覽計數；工具不存在時為靜默 no-op
func IncrementViews(ctx context.Context, db database.DB, toolID int) error {
	_, err := db.Exec(ctx,
		`UPDATE tools SET views = views + 1 WHERE id = $1`,
		toolID,
	)
	if err != nil {
		return fmt.Errorf("IncrementViews: %w", err)
	}
	return nil
}

// ReplaceToolLabels 以單一語句整組取代工具的標籤集合：
// CTE 清空舊集合、主體由 unnest 寫入新集合，避免兩語句之間留下已清空的集合
func ReplaceToolLabels(ctx context.Context, db database.DB, toolID int, labelIDs []int) error {
	if labelIDs == nil {
		labelIDs = []int{}
	}
	if _, err := db.Exec(ctx,
		`WITH del AS (
		     DELETE FROM tool_labels WHERE tool_id = $1
		 )
		 INSERT INTO tool_labels (tool_id, label_id)
		 SELECT $1, unnest($2::int[])`,
		toolID,
		labelIDs,
	); err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("ReplaceToolLabels: %w", err)
	}
	return nil
}
