// File: internal/handler/labels/label.go
package labels

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

var (
	createLabel = store.CreateLabel
	listLabels  = store.ListLabels
	updateLabel = store.UpdateLabel
	deleteLabel = store.DeleteLabel
)

// ListLabelsHandler 列出所有標籤
// @Summary     List all labels
// @Tags        labels
// @Produce     json
// @Success     200 {array} api.LabelResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /labels [get]
func ListLabelsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ls, err := listLabels(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to list labels"})
		}
		resp := make([]api.LabelResponse, 0, len(ls))
		for _, l := range ls {
			resp = append(resp, api.NewLabelResponse(l))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateLabelHandler 建立標籤（管理員），slug 必須唯一
// @Summary     Create a label
// @Tags        labels
// @Accept      json
// @Produce     json
// @Param       request body api.CreateLabelRequest true "標籤資料"
// @Success     201 {object} api.LabelResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /labels [post]
func CreateLabelHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateLabelRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		l, err := createLabel(c.Request().Context(), db, &model.Label{
			Name:        req.Name,
			Slug:        req.Slug,
			Kind:        req.Kind,
			Color:       req.Color,
			Description: req.Description,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: api.ErrConflict, Message: "label slug already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to create label"})
		}
		return c.JSON(http.StatusCreated, api.NewLabelResponse(*l))
	}
}

// UpdateLabelHandler 更新標籤（管理員）
// @Summary     Update a label
// @Tags        labels
// @Accept      json
// @Produce     json
// @Param       id      path int                    true "標籤 ID"
// @Param       request body api.UpdateLabelRequest true "標籤資料"
// @Success     200 {object} api.LabelResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /labels/{id} [put]
func UpdateLabelHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid label ID"})
		}
		var req api.UpdateLabelRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		l := &model.Label{
			ID:          id,
			Name:        req.Name,
			Slug:        req.Slug,
			Kind:        req.Kind,
			Color:       req.Color,
			Description: req.Description,
		}
		if err := updateLabel(c.Request().Context(), db, l); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "label not found"})
			}
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: api.ErrConflict, Message: "label slug already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to update label"})
		}
		return c.JSON(http.StatusOK, api.NewLabelResponse(*l))
	}
}

// DeleteLabelHandler 刪除標籤（管理員），工具上的關聯一併移除
// @Summary     Delete a label
// @Tags        labels
// @Produce     json
// @Param       id path int true "標籤 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /labels/{id} [delete]
func DeleteLabelHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid label ID"})
		}
		if err := deleteLabel(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "label not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to delete label"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
