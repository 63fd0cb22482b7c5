// File: internal/store/review.go
package store

import (
	"context"
	"errors"
	"fmt"

	"iapedia/internal/database"
	"iapedia/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateReview 寫入評論；(user, tool) 重複由唯一約束擋下並回報 ErrDuplicate
func CreateReview(ctx context.Context, db database.DB, r *model.Review) (*model.Review, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reviews (user_id, tool_id, rating, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		r.UserID,
		r.ToolID,
		r.Rating,
		r.Content,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("CreateReview: %w", err)
	}
	return r, nil
}

func GetReviewByID(ctx context.Context, db database.DB, reviewID int) (*model.Review, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, tool_id, rating, content, created_at
		 FROM reviews WHERE id = $1`,
		reviewID,
	)
	r := &model.Review{}
	if err := row.Scan(&r.ID, &r.UserID, &r.ToolID, &r.Rating, &r.Content, &r.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetReviewByID: %w", err)
	}
	return r, nil
}

func UpdateReview(ctx context.Context, db database.DB, reviewID, rating int, content string) error {
	tag, err := db.Exec(ctx,
		`UPDATE reviews SET rating = $1, content = $2
		 WHERE id = $3`,
		rating,
		content,
		reviewID,
	)
	if err != nil {
		return fmt.Errorf("UpdateReview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteReview(ctx context.Context, db database.DB, reviewID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM reviews WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		return fmt.Errorf("DeleteReview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListReviewsByTool 載入單一工具的評論，附作者顯示資訊
func ListReviewsByTool(ctx context.Context, db database.DB, toolID int) ([]model.ReviewWithAuthor, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.user_id, r.tool_id, r.rating, r.content, r.created_at, u.name, u.avatar_url
		 FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.tool_id = $1
		 ORDER BY r.created_at DESC`,
		toolID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReviewsByTool: %w", err)
	}
	defer rows.Close()

	var reviews []model.ReviewWithAuthor
	for rows.Next() {
		var r model.ReviewWithAuthor
		if err := rows.Scan(&r.ID, &r.UserID, &r.ToolID, &r.Rating, &r.Content, &r.CreatedAt, &r.UserName, &r.UserAvatarURL); err != nil {
			return nil, fmt.Errorf("ListReviewsByTool: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReviewsByTool: %w", err)
	}
	return reviews, nil
}

// ListReviewsByToolIDs 載入多個工具的評論，回傳 tool_id → reviews
// 評分統計在應用層由這些列計算
func ListReviewsByToolIDs(ctx context.Context, db database.DB, toolIDs []int) (map[int][]model.Review, error) {
	result := make(map[int][]model.Review)
	if len(toolIDs) == 0 {
		return result, nil
	}
	rows, err := db.Query(ctx,
		`SELECT id, user_id, tool_id, rating, content, created_at
		 FROM reviews WHERE tool_id = ANY($1)`,
		toolIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReviewsByToolIDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.UserID, &r.ToolID, &r.Rating, &r.Content, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListReviewsByToolIDs: %w", err)
		}
		result[r.ToolID] = append(result[r.ToolID], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReviewsByToolIDs: %w", err)
	}
	return result, nil
}

func CountReviewsByUser(ctx context.Context, db database.DB, userID int) (int, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE user_id = $1`,
		userID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("CountReviewsByUser: %w", err)
	}
	return count, nil
}
