// File: internal/store/errors.go
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// 哨兵錯誤：handler 以 errors.Is 映射至 HTTP 狀態碼
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// 唯一性約束是重複判定的真正依據（insert 時的 23505），
// 而非先查詢後寫入的預檢查
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
