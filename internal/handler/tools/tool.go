// File: internal/handler/tools/tool.go
package tools

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"iapedia/internal/api"
	"iapedia/internal/database"
	"iapedia/internal/model"
	"iapedia/internal/store"
	"iapedia/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createTool          = store.CreateTool
	getToolByID         = store.GetToolByID
	listTools           = store.ListTools
	updateTool          = store.UpdateTool
	deleteTool          = store.DeleteTool
	incrementViews      = store.IncrementViews
	replaceToolLabels   = store.ReplaceToolLabels
	searchTools         = store.SearchTools
	listToolLabels      = store.ListToolLabels
	listReviewsByToolID = store.ListReviewsByToolIDs
	addFavorite         = store.AddFavorite
	removeFavorite      = store.RemoveFavorite
)

// enrichTools 為一批工具載入標籤與評論並組裝回應
func enrichTools(ctx context.Context, db database.DB, ts []model.Tool) ([]api.ToolResponse, error) {
	ids := make([]int, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.ID)
	}
	labels, err := listToolLabels(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	reviews, err := listReviewsByToolID(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	resp := make([]api.ToolResponse, 0, len(ts))
	for _, t := range ts {
		resp = append(resp, api.NewToolResponse(t, labels[t.ID], reviews[t.ID]))
	}
	return resp, nil
}

// ListToolsHandler 列出所有工具
// @Summary     List all tools
// @Description 回傳所有工具，含標籤與評分統計
// @Tags        tools
// @Produce     json
// @Success     200 {array} api.ToolResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tools [get]
func ListToolsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		ts, err := listTools(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to list tools"})
		}
		resp, err := enrichTools(ctx, db, ts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool relations"})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetToolHandler 取得單一工具
// @Summary     Get a tool by ID
// @Description 回傳工具詳細資料，含標籤與評分統計
// @Tags        tools
// @Produce     json
// @Param       id path int true "工具 ID"
// @Success     200 {object} api.ToolResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tools/{id} [get]
func GetToolHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid tool ID"})
		}
		ctx := c.Request().Context()
		t, err := getToolByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "tool not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool"})
		}
		resp, err := enrichTools(ctx, db, []model.Tool{*t})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool relations"})
		}
		return c.JSON(http.StatusOK, resp[0])
	}
}

// parseLabelIDs 解析逗號分隔的標籤 ID，無法解析的片段直接略過
func parseLabelIDs(raw string) []int {
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// SearchToolsHandler 搜尋工具
// @Summary     Search tools
// @Description 關鍵字、標籤過濾、排序與分頁
// @Tags        tools
// @Produce     json
// @Param       q      query string false "關鍵字（名稱或描述，不分大小寫）"
// @Param       labels query string false "標籤 ID（逗號分隔，任一命中即符合）"
// @Param       sortBy query string false "views | rating | newest | trending"
// @Param       page   query int    false "頁碼，從 1 起算"
// @Param       limit  query int    false "每頁筆數，1-50，預設 10"
// @Success     200 {object} api.SearchToolsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tools/search/query [get]
func SearchToolsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		opts := store.SearchOptions{
			Term:     c.QueryParam("q"),
			LabelIDs: parseLabelIDs(c.QueryParam("labels")),
			SortBy:   c.QueryParam("sortBy"),
		}
		opts.Page, _ = strconv.Atoi(c.QueryParam("page"))
		opts.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
		opts.Normalize()

		ctx := c.Request().Context()
		ts, total, err := searchTools(ctx, db, opts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "search failed"})
		}
		resp, err := enrichTools(ctx, db, ts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool relations"})
		}
		return c.JSON(http.StatusOK, api.SearchToolsResponse{
			Tools: resp,
			Total: total,
			Page:  opts.Page,
			Limit: opts.Limit,
			Pages: opts.Pages(total),
		})
	}
}

// RecordViewHandler 記錄一次工具瀏覽
// 實際遞增交由 worker pool 背景處理，未知 ID 為靜默 no-op
// @Summary     Record a tool view
// @Description 非同步遞增瀏覽計數，立即回覆 202
// @Tags        tools
// @Produce     json
// @Param       id path int true "工具 ID"
// @Success     202 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Router      /tools/{id}/view [post]
func RecordViewHandler(db database.DB, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid tool ID"})
		}
		pool.Submit(func() {
			// 請求早已結束，不能沿用請求的 context
			_ = incrementViews(context.Background(), db, id)
		})
		return c.JSON(http.StatusAccepted, api.MessageResponse{Message: "view recorded"})
	}
}
