// File: internal/handler/tools/favorite.go
package tools

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

// AddFavoriteHandler 收藏工具
// 收藏列與計數器在同一條語句內更新
// @Summary     Favorite a tool
// @Description 將工具加入當前使用者的收藏
// @Tags        tools
// @Produce     json
// @Param       id path int true "工具 ID"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tools/{id}/favorite [post]
func AddFavoriteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid tool ID"})
		}
		if err := addFavorite(c.Request().Context(), db, claims.UserID, id); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: api.ErrConflict, Message: "already favorited"})
			}
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "tool not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to add favorite"})
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "favorited"})
	}
}

// RemoveFavoriteHandler 取消收藏
// @Summary     Unfavorite a tool
// @Description 將工具移出當前使用者的收藏
// @Tags        tools
// @Produce     json
// @Param       id path int true "工具 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /tools/{id}/favorite [delete]
func RemoveFavoriteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid tool ID"})
		}
		if err := removeFavorite(c.Request().Context(), db, claims.UserID, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "favorite not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to remove favorite"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
