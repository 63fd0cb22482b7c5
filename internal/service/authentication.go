// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"iapedia/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL 為存取令牌預設有效期（7 天）
const DefaultAccessTokenTTL = 168 * time.Hour

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin 判斷令牌持有者是否為管理員
func (c *CustomClaims) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

// AccessTokenTTL 讀取 JWT_TTL_HOURS，未設定或無效時回傳預設值
func AccessTokenTTL() time.Duration {
	v := os.Getenv("JWT_TTL_HOURS")
	if v == "" {
		return DefaultAccessTokenTTL
	}
	hours, err := strconv.Atoi(v)
	if err != nil || hours <= 0 {
		return DefaultAccessTokenTTL
	}
	return time.Duration(hours) * time.Hour
}

// AuthenticateUser 驗證明文密碼與使用者哈希，成功回傳使用者
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, errors.New("invalid password")
	}
	return &user, nil
}

// IssueAccessToken 依據使用者資訊與 TTL 產生 JWT
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	claims := CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌
// 簽名錯誤、格式錯誤與過期對呼叫端一律為同一種失敗
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
