package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

// AccessClaims is carried by login tokens. Subject holds the account id.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ActionClaims is carried by single-purpose tokens (email verification,
// password reset). Subject holds the account id.
type ActionClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(secret, id, email, role string, expiration time.Duration) (string, error) {
	claims := AccessClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func GenerateActionToken(secret, id, purpose string, expiration time.Duration) (string, error) {
	claims := ActionClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseAccessToken(secret, tokenString string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, cerr.SetCustomError(constant.ErrInvalidToken)
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, cerr.SetCustomError(constant.ErrExpiredLink)
		}
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}
	return claims, nil
}

// ParseActionToken verifies signature, expiry and purpose. An expired link and
// a tampered link are distinct failures per the reset-password contract.
func ParseActionToken(secret, tokenString, purpose string) (*ActionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ActionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, cerr.SetCustomError(constant.ErrInvalidToken)
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, cerr.SetCustomError(constant.ErrExpiredLink)
		}
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*ActionClaims)
	if !ok || !token.Valid || claims.Purpose != purpose {
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}
	return claims, nil
}
