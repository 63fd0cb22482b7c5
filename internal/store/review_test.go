// File: internal/store/review_test.go
package store

import (
	"context"
	"testing"
	"time"

	"iapedia/internal/database"
	"iapedia/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func reviewScanFn(r model.Review) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = r.ID
		*dest[1].(*int) = r.UserID
		*dest[2].(*int) = r.ToolID
		*dest[3].(*int) = r.Rating
		*dest[4].(*string) = r.Content
		*dest[5].(*time.Time) = r.CreatedAt
		return nil
	}
}

func TestCreateReview(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{1, 2, 5, "great"}, args)
				return &scanRow{scanFn: func(dest ...any) error {
					*dest[0].(*int) = 10
					*dest[1].(*time.Time) = now
					return nil
				}}
			},
		}
		r := &model.Review{UserID: 1, ToolID: 2, Rating: 5, Content: "great"}
		created, err := CreateReview(context.Background(), db, r)
		require.NoError(t, err)
		require.Equal(t, 10, created.ID)
	})

	t.Run("duplicate per user and tool", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &errRow{err: uniqueViolation()}
			},
		}
		_, err := CreateReview(context.Background(), db, &model.Review{})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("tool missing", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &errRow{err: foreignKeyViolation()}
			},
		}
		_, err := CreateReview(context.Background(), db, &model.Review{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetReviewByID(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &scanRow{scanFn: reviewScanFn(model.Review{ID: 3, UserID: 1, ToolID: 2, Rating: 4})}
		},
	}
	r, err := GetReviewByID(context.Background(), db, 3)
	require.NoError(t, err)
	require.Equal(t, 1, r.UserID)

	db.QueryRowFn = func(_ context.Context, _ string, _ ...any) pgx.Row {
		return &errRow{err: pgx.ErrNoRows}
	}
	_, err = GetReviewByID(context.Background(), db, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDeleteReview(t *testing.T) {
	db := &database.FakeDB{
		ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}
	require.NoError(t, UpdateReview(context.Background(), db, 3, 4, "ok"))

	db.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.ErrorIs(t, UpdateReview(context.Background(), db, 3, 4, "ok"), ErrNotFound)
	require.ErrorIs(t, DeleteReview(context.Background(), db, 3), ErrNotFound)
}

func TestListReviewsByTool(t *testing.T) {
	db := &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "JOIN users")
			require.Equal(t, []any{2}, args)
			return &scanRows{scanFns: []func(dest ...any) error{
				func(dest ...any) error {
					*dest[0].(*int) = 1
					*dest[1].(*int) = 7
					*dest[2].(*int) = 2
					*dest[3].(*int) = 5
					*dest[4].(*string) = "nice"
					*dest[5].(*time.Time) = time.Time{}
					*dest[6].(*string) = "Alice"
					*dest[7].(*string) = "a.png"
					return nil
				},
			}}, nil
		},
	}
	reviews, err := ListReviewsByTool(context.Background(), db, 2)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, "Alice", reviews[0].UserName)
}

func TestListReviewsByToolIDs(t *testing.T) {
	t.Run("empty input skips query", func(t *testing.T) {
		db := &database.FakeDB{}
		m, err := ListReviewsByToolIDs(context.Background(), db, nil)
		require.NoError(t, err)
		require.Empty(t, m)
	})

	t.Run("groups by tool", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &scanRows{scanFns: []func(dest ...any) error{
					reviewScanFn(model.Review{ID: 1, ToolID: 2, Rating: 5}),
					reviewScanFn(model.Review{ID: 2, ToolID: 2, Rating: 4}),
					reviewScanFn(model.Review{ID: 3, ToolID: 9, Rating: 3}),
				}}, nil
			},
		}
		m, err := ListReviewsByToolIDs(context.Background(), db, []int{2, 9})
		require.NoError(t, err)
		require.Len(t, m[2], 2)
		require.Len(t, m[9], 1)
	})
}

func TestCountReviewsByUser(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &scanRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 4
				return nil
			}}
		},
	}
	n, err := CountReviewsByUser(context.Background(), db, 1)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}
