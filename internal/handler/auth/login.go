// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"iapedia/internal/api"
	"iapedia/internal/database"
	"iapedia/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// 未知帳號與密碼錯誤回覆相同訊息，避免帳號枚舉
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與使用者資訊
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ErrValidation, Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid credentials"})
		}

		authUser, err := authenticateUser(*user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*authUser, service.AccessTokenTTL())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			User:        api.NewUserResponse(*authUser),
		})
	}
}
