// File: internal/handler/users/user.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	"iapedia/internal/api"
	"iapedia/internal/database"
	"iapedia/internal/middleware"
	"iapedia/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID             = store.GetUserByID
	listUsers               = store.ListUsers
	countReviewsByUser      = store.CountReviewsByUser
	listFavoriteToolsByUser = store.ListFavoriteToolsByUser
	listToolLabels          = store.ListToolLabels
	listReviewsByToolID     = store.ListReviewsByToolIDs
)

// GetUserHandler 公開的使用者檔案
// 只露出名稱、頭像、簡介與評論數，Email 與角色不公開
// @Summary     Get a public user profile
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.PublicUserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid user ID"})
		}

		ctx := c.Request().Context()
		user, err := getUserByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load user"})
		}
		reviewCount, err := countReviewsByUser(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to count reviews"})
		}

		return c.JSON(http.StatusOK, api.PublicUserResponse{
			ID:          user.ID,
			Name:        user.Name,
			AvatarURL:   user.AvatarURL,
			Bio:         user.Bio,
			ReviewCount: reviewCount,
			CreatedAt:   user.CreatedAt,
		})
	}
}

// ListUsersHandler 使用者清單（管理員）
// @Summary     List all users
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		us, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to list users"})
		}
		resp := make([]api.UserResponse, 0, len(us))
		for _, u := range us {
			resp = append(resp, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// ListMyFavoritesHandler 當前使用者的收藏工具
// @Summary     List current user's favorite tools
// @Tags        users
// @Produce     json
// @Success     200 {array} api.ToolResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/favorites [get]
func ListMyFavoritesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}

		ctx := c.Request().Context()
		ts, err := listFavoriteToolsByUser(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to list favorites"})
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

		resp := make([]api.ToolResponse, 0, len(ts))
		for _, t := range ts {
			resp = append(resp, api.NewToolResponse(t, labels[t.ID], reviews[t.ID]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
