// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"sample-app/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var parseWithClaims = jwt.ParseWithClaims

// CustomClaims 定義 JWT 負載內容；UserID 即後續所有核心呼叫使用的使用者 ID
type CustomClaims struct {
	UserID  int  `json:"uid"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenIssuer 簽發與驗證存取令牌
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("JWT secret not set")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue 依據使用者資訊產生 JWT，並回傳到期時間
func (t *TokenIssuer) Issue(user model.User) (string, time.Time, error) {
	now := timeNow()
	expires := now.Add(t.ttl)
	claims := CustomClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Verify 驗證並解析 JWT 令牌
func (t *TokenIssuer) Verify(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
