// File: internal/handler/reviews/review.go
package reviews

import (
	"errors"
	"net/http"
	"strconv"

	"iapedia/internal/api"
	"iapedia/internal/database"
	"iapedia/internal/middleware"
	"iapedia/internal/model"
	"iapedia/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createReview      = store.CreateReview
	getReviewByID     = store.GetReviewByID
	updateReview      = store.UpdateReview
	deleteReview      = store.DeleteReview
	listReviewsByTool = store.ListReviewsByTool
)

// CreateReviewHandler 建立評論
// 評論者身分一律取自令牌，每人每工具限一則
// @Summary     Create a review
// @Description 對工具留下 1-5 星評論
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       request body api.CreateReviewRequest true "評論內容"
// @Success     201 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews [post]
func CreateReviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}

		var req api.CreateReviewRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		review, err := createReview(c.Request().Context(), db, &model.Review{
			UserID:  claims.UserID,
			ToolID:  req.ToolID,
			Rating:  req.Rating,
			Content: req.Content,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: api.ErrConflict, Message: "tool already reviewed"})
			}
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "tool not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to create review"})
		}

		return c.JSON(http.StatusCreated, api.NewReviewResponse(*review))
	}
}

// UpdateReviewHandler 更新自己的評論
// 僅評論作者可改，管理員也不行
// @Summary     Update a review
// @Description 更新評分與內容
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       id      path int                     true "評論 ID"
// @Param       request body api.UpdateReviewRequest true "評論內容"
// @Success     200 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/{id} [put]
func UpdateReviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid review ID"})
		}

		var req api.UpdateReviewRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		ctx := c.Request().Context()
		review, err := getReviewByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "review not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load review"})
		}
		if review.UserID != claims.UserID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: api.ErrForbidden, Message: "not the review author"})
		}

		if err := updateReview(ctx, db, id, req.Rating, req.Content); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to update review"})
		}

		review.Rating = req.Rating
		review.Content = req.Content
		return c.JSON(http.StatusOK, api.NewReviewResponse(*review))
	}
}

// DeleteReviewHandler 刪除自己的評論
// @Summary     Delete a review
// @Description 僅評論作者可刪
// @Tags        reviews
// @Produce     json
// @Param       id path int true "評論 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/{id} [delete]
func DeleteReviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid review ID"})
		}

		ctx := c.Request().Context()
		review, err := getReviewByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "review not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load review"})
		}
		if review.UserID != claims.UserID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: api.ErrForbidden, Message: "not the review author"})
		}

		if err := deleteReview(ctx, db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to delete review"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ListToolReviewsHandler 列出工具的評論（含作者名稱與頭像）
// @Summary     List reviews of a tool
// @Description 新評論在前
// @Tags        reviews
// @Produce     json
// @Param       id path int true "工具 ID"
// @Success     200 {array} api.ReviewWithAuthorResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tools/{id}/reviews [get]
func ListToolReviewsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid tool ID"})
		}
		reviews, err := listReviewsByTool(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to list reviews"})
		}
		resp := make([]api.ReviewWithAuthorResponse, 0, len(reviews))
		for _, r := range reviews {
			resp = append(resp, api.NewReviewWithAuthorResponse(r))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
