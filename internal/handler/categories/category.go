// File: internal/handler/categories/category.go
package categories

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
	createCategory      = store.CreateCategory
	getCategoryByID     = store.GetCategoryByID
	listCategories      = store.ListCategories
	updateCategory      = store.UpdateCategory
	deleteCategory      = store.DeleteCategory
	listToolsByCategory = store.ListToolsByCategory
	listToolLabels      = store.ListToolLabels
	listReviewsByToolID = store.ListReviewsByToolIDs
)

// ListCategoriesHandler 列出所有分類
// @Summary     List all categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} api.CategoryResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to list categories"})
		}
		resp := make([]api.CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			resp = append(resp, api.NewCategoryResponse(cat))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetCategoryHandler 取得分類及其所屬工具
// @Summary     Get a category with its tools
// @Tags        categories
// @Produce     json
// @Param       id path int true "分類 ID"
// @Success     200 {object} api.CategoryWithToolsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories/{id} [get]
func GetCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid category ID"})
		}

		ctx := c.Request().Context()
		cat, err := getCategoryByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load category"})
		}

		ts, err := listToolsByCategory(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to list category tools"})
		}
		ids := make([]int, 0, len(ts))
		for _, t := range ts {
			ids = append(ids, t.ID)
		}
		labels, err := listToolLabels(ctx, db, ids)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool relations"})
		}
		reviews, err := listReviewsByToolID(ctx, db, ids)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load tool relations"})
		}

		tools := make([]api.ToolResponse, 0, len(ts))
		for _, t := range ts {
			tools = append(tools, api.NewToolResponse(t, labels[t.ID], reviews[t.ID]))
		}
		return c.JSON(http.StatusOK, api.CategoryWithToolsResponse{
			CategoryResponse: api.NewCategoryResponse(*cat),
			Tools:            tools,
		})
	}
}

// CreateCategoryHandler 建立分類（管理員）
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body api.CreateCategoryRequest true "分類資料"
// @Success     201 {object} api.CategoryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories [post]
func CreateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		cat, err := createCategory(c.Request().Context(), db, &model.Category{
			Name:            req.Name,
			Description:     req.Description,
			LongDescription: req.LongDescription,
			IconURL:         req.IconURL,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to create category"})
		}
		return c.JSON(http.StatusCreated, api.NewCategoryResponse(*cat))
	}
}

// UpdateCategoryHandler 更新分類（管理員）
// @Summary     Update a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path int                       true "分類 ID"
// @Param       request body api.UpdateCategoryRequest true "分類資料"
// @Success     200 {object} api.CategoryResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories/{id} [put]
func UpdateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid category ID"})
		}
		var req api.UpdateCategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		cat := &model.Category{
			ID:              id,
			Name:            req.Name,
			Description:     req.Description,
			LongDescription: req.LongDescription,
			IconURL:         req.IconURL,
		}
		if err := updateCategory(c.Request().Context(), db, cat); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to update category"})
		}
		return c.JSON(http.StatusOK, api.NewCategoryResponse(*cat))
	}
}

// DeleteCategoryHandler 刪除分類（管理員），所屬工具一併刪除
// @Summary     Delete a category
// @Tags        categories
// @Produce     json
// @Param       id path int true "分類 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories/{id} [delete]
func DeleteCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid category ID"})
		}
		if err := deleteCategory(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to delete category"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
