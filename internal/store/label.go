// File: internal/store/label.go
package store

import (
	"context"
	"errors"
	"fmt"

	"iapedia/internal/database"
	"iapedia/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateLabel(ctx context.Context, db database.DB, l *model.Label) (*model.Label, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO labels (name, slug, kind, color, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		l.Name,
		l.Slug,
		l.Kind,
		l.Color,
		l.Description,
	)
	if err := row.Scan(&l.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("CreateLabel: %w", err)
	}
	return l, nil
}

func GetLabelByID(ctx context.Context, db database.DB, labelID int) (*model.Label, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, slug, kind, color, description
		 FROM labels WHERE id = $1`,
		labelID,
	)
	l := &model.Label{}
	if err := row.Scan(&l.ID, &l.Name, &l.Slug, &l.Kind, &l.Color, &l.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetLabelByID: %w", err)
	}
	return l, nil
}

func ListLabels(ctx context.Context, db database.DB) ([]model.Label, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, slug, kind, color, description
		 FROM labels ORDER BY kind, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListLabels: %w", err)
	}
	defer rows.Close()

	var labels []model.Label
	for rows.Next() {
		var l model.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Slug, &l.Kind, &l.Color, &l.Description); err != nil {
			return nil, fmt.Errorf("ListLabels: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListLabels: %w", err)
	}
	return labels, nil
}

func UpdateLabel(ctx context.Context, db database.DB, l *model.Label) error {
	tag, err := db.Exec(ctx,
		`UPDATE labels SET name = $1, slug = $2, kind = $3, color = $4, description = $5
		 WHERE id = $6`,
		l.Name,
		l.Slug,
		l.Kind,
		l.Color,
		l.Description,
		l.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("UpdateLabel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteLabel(ctx context.Context, db database.DB, labelID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM labels WHERE id = $1`,
		labelID,
	)
	if err != nil {
		return fmt.Errorf("DeleteLabel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListToolLabels 載入多個工具的標籤，回傳 tool_id → labels
func ListToolLabels(ctx context.Context, db database.DB, toolIDs []int) (map[int][]model.Label, error) {
	result := make(map[int][]model.Label)
	if len(toolIDs) == 0 {
		return result, nil
	}
	rows, err := db.Query(ctx,
		`SELECT tl.tool_id, l.id, l.name, l.slug, l.kind, l.color, l.description
		 FROM tool_labels tl
		 JOIN labels l ON l.id = tl.label_id
		 WHERE tl.tool_id = ANY($1)
		 ORDER BY l.kind, l.name`,
		toolIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("ListToolLabels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var toolID int
		var l model.Label
		if err := rows.Scan(&toolID, &l.ID, &l.Name, &l.Slug, &l.Kind, &l.Color, &l.Description); err != nil {
			return nil, fmt.Errorf("ListToolLabels: %w", err)
		}
		result[toolID] = append(result[toolID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListToolLabels: %w", err)
	}
	return result, nil
}
