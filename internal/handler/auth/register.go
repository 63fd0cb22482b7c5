// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"iapedia/internal/api"
	"iapedia/internal/database"
	"iapedia/internal/model"
	"iapedia/internal/service"
	"iapedia/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	validatePassword   = service.ValidatePassword
	authenticateUser   = service.AuthenticateUser
	issueAccessToken   = service.IssueAccessToken
	newResetToken      = service.NewResetToken
	createUser         = store.CreateUser
	getUserByEmail     = store.GetUserByEmail
	getUserByID        = store.GetUserByID
	updateUserProfile  = store.UpdateUserProfile
	setResetToken      = store.SetResetToken
	clearResetToken    = store.ClearResetToken
	resetPasswordByTok = store.ResetPasswordByToken
)

// RegisterHandler 註冊新帳號並直接發給存取令牌
// @Summary     Register a new account
// @Description Email 轉為小寫且必須唯一，密碼需通過強度檢查
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
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

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: api.ErrConflict, Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to create user"})
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.ErrInternal, Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.LoginResponse{
			AccessToken: token,
			User:        api.NewUserResponse(*user),
		})
	}
}
