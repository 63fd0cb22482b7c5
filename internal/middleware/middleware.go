// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"strings"

	"iapedia/internal/api"
	"iapedia/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 可覆寫以便測試
var verifyAccessToken = service.VerifyAccessToken

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer 令牌並將 claims 放入 context
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: api.ErrUnauth, Message: "invalid or missing token"})
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// RequireAdmin 在 RequireAuth 之上再要求管理員角色
// 未帶令牌回 401，帶了非管理員令牌回 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		claims := c.Get(ContextUserKey).(*service.CustomClaims)
		if !claims.IsAdmin() {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: api.ErrForbidden, Message: "admin privileges required"})
		}
		return next(c)
	})
}

// ClaimsFromContext 取出 RequireAuth 放入的 claims
func ClaimsFromContext(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok
}
