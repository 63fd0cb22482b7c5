// File: internal/service/reset.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ResetTokenTTL 為重設密碼令牌的有效期
const ResetTokenTTL = time.Hour

// randRead 供測試覆寫
var randRead = rand.Read

// NewResetToken 產生 32 bytes 的隨機重設令牌（hex 編碼）
func NewResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := randRead(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
