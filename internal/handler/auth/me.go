// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"iapedia/internal/api"
	"iapedia/internal/database"
	"iapedia/internal/middleware"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 回傳當前使用者資料
// @Summary     Get current user info
// @Description 依據 JWT 取得當前使用者詳細資料
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.ErrNotFound, Message: "user not found"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// UpdateMeHandler 更新當前使用者的名稱、頭像與簡介
// @Summary     Update current user info
// @Description 使用 JWT 更新當前使用者的公開檔案欄位
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateMeRequest true "個人資料"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [put]
func UpdateMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}

		var req api.UpdateMeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := updateUserProfile(ctx, db, claims.UserID, req.Name, req.AvatarURL, req.Bio); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to update profile"})
		}
		user, err := getUserByID(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to load profile"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}
