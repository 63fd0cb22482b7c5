// File: internal/store/store_test.go
package store

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"iapedia/internal/model"
)

/* ---------- 共用假實作 ---------- */

// scanRow 以自訂函式實作 pgx.Row
type scanRow struct {
	scanFn func(dest ...any) error
}

func (r *scanRow) Scan(dest ...any) error { return r.scanFn(dest...) }

// errRow 恆回傳錯誤的 pgx.Row
type errRow struct{ err error }

func (r *errRow) Scan(...any) error { return r.err }

// scanRows 以自訂函式串接多筆列，實作 pgx.Rows
type scanRows struct {
	scanFns []func(dest ...any) error
	idx     int
	err     error
}

func (r *scanRows) Close()                                       {}
func (r *scanRows) Err() error                                   { return r.err }
func (r *scanRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *scanRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *scanRows) Next() bool                                   { return r.idx < len(r.scanFns) }
func (r *scanRows) Scan(dest ...any) error {
	fn := r.scanFns[r.idx]
	r.idx++
	return fn(dest...)
}
func (r *scanRows) Values() ([]any, error) { return nil, nil }
func (r *scanRows) RawValues() [][]byte    { return nil }
func (r *scanRows) Conn() *pgx.Conn        { return nil }

func uniqueViolation() error     { return &pgconn.PgError{Code: "23505"} }
func foreignKeyViolation() error { return &pgconn.PgError{Code: "23503"} }

func userScanFn(u model.User) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*string) = u.Role
		*dest[5].(*string) = u.AvatarURL
		*dest[6].(*string) = u.Bio
		*dest[7].(**string) = u.ResetToken
		*dest[8].(**time.Time) = u.ResetTokenExpiresAt
		*dest[9].(*time.Time) = u.CreatedAt
		return nil
	}
}

func toolScanFn(t model.Tool) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int) = t.ID
		*dest[1].(*string) = t.Name
		*dest[2].(*string) = t.Description
		*dest[3].(*string) = t.URL
		*dest[4].(*string) = t.ImageURL
		*dest[5].(*string) = t.BannerURL
		*dest[6].(*int) = t.CategoryID
		*dest[7].(*string) = t.PlanType
		*dest[8].(*bool) = t.IsTrending
		*dest[9].(*bool) = t.IsNew
		*dest[10].(*int) = t.Views
		*dest[11].(*int) = t.FavoritesCount
		*dest[12].(*time.Time) = t.CreatedAt
		return nil
	}
}
