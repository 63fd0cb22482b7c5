// File: internal/store/category.go
package store

import (
	"context"
	"errors"
	"fmt"

	"iapedia/internal/database"
	"iapedia/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateCategory(ctx context.Context, db database.DB, c *model.Category) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO categories (name, description, long_description, icon_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Name,
		c.Description,
		c.LongDescription,
		c.IconURL,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateCategory: %w", err)
	}
	return c, nil
}

func GetCategoryByID(ctx context.Context, db database.DB, categoryID int) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, long_description, icon_url
		 FROM categories WHERE id = $1`,
		categoryID,
	)
	c := &model.Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.LongDescription, &c.IconURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetCategoryByID: %w", err)
	}
	return c, nil
}

func ListCategories(ctx context.Context, db database.DB) ([]model.Category, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, long_description, icon_url
		 FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.LongDescription, &c.IconURL); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return categories, nil
}

func UpdateCategory(ctx context.Context, db database.DB, c *model.Category) error {
	tag, err := db.Exec(ctx,
		`UPDATE categories SET name = $1, description = $2, long_description = $3, icon_url = $4
		 WHERE id = $5`,
		c.Name,
		c.Description,
		c.LongDescription,
		c.IconURL,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateCategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCategory(ctx context.Context, db database.DB, categoryID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM categories WHERE id = $1`,
		categoryID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
