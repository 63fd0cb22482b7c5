// File: internal/handler/tools/admin.go
package tools

import (
	"errors"
	"net/http"
	"strconv"

	"iapedia/internal/api"
	"iapedia/internal/database"
	"iapedia/internal/model"
	"iapedia/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateToolHandler 建立工具（管理員）
// @Summary     Create a tool
// @Description 建立工具並設定標籤集合
// @Tags        tools
// @Accept      json
// @Produce     json
// @Param       request body api.CreateToolRequest true "工具資料"
// @Success     201 {object} api.ToolResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tools [post]
func CreateToolHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateToolRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		ctx := c.Request().Context()
		t, err := createTool(ctx, db, &model.Tool{
			Name:        req.Name,
			Description: req.Description,
			URL:         req.URL,
			ImageURL:    req.ImageURL,
			BannerURL:   req.BannerURL,
			CategoryID:  req.CategoryID,
			PlanType:    req.PlanType,
			IsTrending:  req.IsTrending,
			IsNew:       req.IsNew,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to create tool"})
		}

		if len(req.LabelIDs) > 0 {
			if err := replaceToolLabels(ctx, db, t.ID, req.LabelIDs); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "label not found"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to set tool labels"})
			}
		}

		resp, err := enrichTools(ctx, db, []model.Tool{*t})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool relations"})
		}
		return c.JSON(http.StatusCreated, resp[0])
	}
}

// UpdateToolHandler 整體更新工具（管理員），標籤集合以取代方式寫入
// @Summary     Update a tool
// @Description 更新工具欄位並取代其標籤集合
// @Tags        tools
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "工具 ID"
// @Param       request body api.UpdateToolRequest true "工具資料"
// @Success     200 {object} api.ToolResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tools/{id} [put]
func UpdateToolHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid tool ID"})
		}
		var req api.UpdateToolRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := updateTool(ctx, db, &model.Tool{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			URL:         req.URL,
			ImageURL:    req.ImageURL,
			BannerURL:   req.BannerURL,
			CategoryID:  req.CategoryID,
			PlanType:    req.PlanType,
			IsTrending:  req.IsTrending,
			IsNew:       req.IsNew,
		}); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "tool not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to update tool"})
		}

		if err := replaceToolLabels(ctx, db, id, req.LabelIDs); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "label not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to set tool labels"})
		}

		t, err := getToolByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool"})
		}
		resp, err := enrichTools(ctx, db, []model.Tool{*t})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool relations"})
		}
		return c.JSON(http.StatusOK, resp[0])
	}
}

// DeleteToolHandler 刪除工具（管理員），關聯由外鍵 cascade 一併清除
// @Summary     Delete a tool
// @Description 刪除工具及其標籤、評論與收藏
// @Tags        tools
// @Produce     json
// @Param       id path int true "工具 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tools/{id} [delete]
func DeleteToolHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid tool ID"})
		}
		if err := deleteTool(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "tool not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to delete tool"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
