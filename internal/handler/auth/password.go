// File: internal/handler/auth/password.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"iapedia/internal/api"
	"iapedia/internal/cache"
	"iapedia/internal/database"
	"iapedia/internal/mailer"
	"iapedia/internal/service"
	"iapedia/internal/store"

	"github.com/labstack/echo/v4"
)

// 同一信箱的重設信件間隔
const forgotThrottleTTL = 15 * time.Minute

const forgotMessage = "if the email exists, a reset link has been sent"

// ForgotPasswordHandler 寄送密碼重設信
// 無論信箱是否存在都回覆相同訊息，避免帳號枚舉
// @Summary     Request a password reset
// @Description 寄送密碼重設連結到指定信箱（一小時內有效）
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ForgotPasswordRequest true "信箱"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/forgot-password [post]
func ForgotPasswordHandler(db database.DB, cch cache.Cache, m mailer.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		ctx := c.Request().Context()
		email := strings.ToLower(req.Email)

		user, err := getUserByEmail(ctx, db, email)
		if err != nil {
			// 只有未知信箱偽裝成功，其餘查詢失敗照實回報
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusOK, api.MessageResponse{Message: forgotMessage})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to look up account"})
		}

		// 節流：同一信箱在 TTL 內只寄一次，節流失效時照常寄送
		ok, err := cch.SetNX(ctx, "reset-throttle:"+email, 1, forgotThrottleTTL).Result()
		if err == nil && !ok {
			return c.JSON(http.StatusOK, api.MessageResponse{Message: forgotMessage})
		}

		token, err := newResetToken()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to generate reset token"})
		}
		if err := setResetToken(ctx, db, user.ID, token, time.Now().Add(service.ResetTokenTTL)); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to store reset token"})
		}

		if err := m.SendPasswordReset(ctx, user.Email, token); err != nil {
			// 寄信失敗時撤銷剛存的令牌
			_ = clearResetToken(ctx, db, user.ID)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to send reset email"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: forgotMessage})
	}
}

// ResetPasswordHandler 以重設令牌設定新密碼
// @Summary     Reset password with a token
// @Description 驗證一次性令牌並更新密碼，令牌一小時內有效
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ResetPasswordRequest true "令牌與新密碼"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/reset-password [post]
func ResetPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}
		if err := validatePassword(req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to hash password"})
		}

		if err := resetPasswordByTok(c.Request().Context(), db, req.Token, hash); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid or expired reset token"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to reset password"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "password updated"})
	}
}
