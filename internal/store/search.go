// File: internal/store/search.go
package store

import (
	"context"
	"fmt"
	"strings"

	"iapedia/internal/database"
	"iapedia/internal/model"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// SearchOptions 組合四個彼此獨立且皆可省略的查詢輸入
type SearchOptions struct {
	Term     string
	LabelIDs []int
	SortBy   string
	Page     int
	Limit    int
}

// Normalize 套用分頁邊界：page >= 1，limit 夾在 [1, MaxSearchLimit]，0 取預設
func (o *SearchOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit == 0 {
		o.Limit = DefaultSearchLimit
	}
	if o.Limit < 1 {
		o.Limit = 1
	}
	if o.Limit > MaxSearchLimit {
		o.Limit = MaxSearchLimit
	}
}

// Pages 由獨立計得的總數算出總頁數 ceil(total/limit)
func (o SearchOptions) Pages(total int) int {
	if total == 0 {
		return 0
	}
	return (total + o.Limit - 1) / o.Limit
}

// sortClause 把排序鍵映射為 ORDER BY 子句（白名單，未知鍵回退預設）。
// rating 目前沿用瀏覽數作為代理排序。
func sortClause(key string) string {
	switch key {
	case "newest":
		return "t.created_at DESC, t.id"
	case "trending":
		return "t.is_trending DESC, t.views DESC, t.id"
	case "views", "rating":
		return "t.views DESC, t.id"
	default:
		return "t.views DESC, t.id"
	}
}

// escapeLike 跳脫 ILIKE 的萬用字元，使用者輸入一律視為字面值
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// 同一份 WHERE 供分頁查詢與總數查詢共用：
// 詞彙比對為工具名稱、工具描述、所屬分類名稱三者任一的不分大小寫子字串；
// 標籤篩選為「至少命中一個指定標籤」（OR 語意）
const searchWhere = `
 FROM tools t
 JOIN categories c ON c.id = t.category_id
 WHERE (t.name ILIKE $1 OR t.description ILIKE $1 OR c.name ILIKE $1)
   AND (cardinality($2::int[]) = 0 OR EXISTS (
        SELECT 1 FROM tool_labels tl
        WHERE tl.tool_id = t.id AND tl.label_id = ANY($2)))`

// SearchTools 執行組合查詢並回傳該頁工具與獨立計得的總數
func SearchTools(ctx context.Context, db database.DB, opts SearchOptions) ([]model.Tool, int, error) {
	opts.Normalize()

	pattern := "%" + escapeLike(opts.Term) + "%"
	labelIDs := opts.LabelIDs
	if labelIDs == nil {
		labelIDs = []int{}
	}

	var total int
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*)`+searchWhere,
		pattern,
		labelIDs,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("SearchTools count: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s%s ORDER BY %s LIMIT $3 OFFSET $4`,
		toolColumnsPrefixed,
		searchWhere,
		sortClause(opts.SortBy),
	)
	rows, err := db.Query(ctx, query,
		pattern,
		labelIDs,
		opts.Limit,
		(opts.Page-1)*opts.Limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("SearchTools: %w", err)
	}
	tools, err := scanTools(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("SearchTools: %w", err)
	}
	return tools, total, nil
}
