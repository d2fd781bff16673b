package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	cerr "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/token"
)

const secret = "test-secret"

func TestActionToken_RoundTrip(t *testing.T) {
	raw, err := token.GenerateActionToken(secret, "u-1", constant.TokenPurposeResetPassword, 5*time.Minute)
	if err != nil {
		t.Fatalf("GenerateActionToken() error = %v", err)
	}

	claims, err := token.ParseActionToken(secret, raw, constant.TokenPurposeResetPassword)
	if err != nil {
		t.Fatalf("ParseActionToken() error = %v", err)
	}
	if claims.Subject != "u-1" {
		t.Fatalf("subject = %s, want u-1", claims.Subject)
	}
}

func TestActionToken_Failures(t *testing.T) {
	valid, err := token.GenerateActionToken(secret, "u-1", constant.TokenPurposeResetPassword, 5*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	expired, err := token.GenerateActionToken(secret, "u-1", constant.TokenPurposeResetPassword, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		raw     string
		purpose string
		errCode constant.ErrorType
	}{
		{
			name:    "expired link",
			raw:     expired,
			purpose: constant.TokenPurposeResetPassword,
			errCode: constant.ErrExpiredLink,
		},
		{
			name:    "tampered signature",
			raw:     valid + "x",
			purpose: constant.TokenPurposeResetPassword,
			errCode: constant.ErrInvalidToken,
		},
		{
			name:    "wrong purpose",
			raw:     valid,
			purpose: constant.TokenPurposeVerifyEmail,
			errCode: constant.ErrInvalidToken,
		},
		{
			name:    "wrong secret",
			raw:     valid,
			purpose: constant.TokenPurposeResetPassword,
			errCode: constant.ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			parseSecret := secret
			if tt.name == "wrong secret" {
				parseSecret = "other-secret"
			}

			_, err := token.ParseActionToken(parseSecret, tt.raw, tt.purpose)
			var ce cerr.CustomError
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want CustomError", err)
			}
			if ce.Type() != tt.errCode {
				t.Fatalf("error = %v, want %s", err, constant.ErrorTypeMessage[tt.errCode])
			}
		})
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	raw, err := token.GenerateAccessToken(secret, "u-1", "test@example.com", constant.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := token.ParseAccessToken(secret, raw)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}
	if claims.Subject != "u-1" || claims.Email != "test@example.com" || claims.Role != constant.RoleUser {
		t.Fatalf("claims = %+v", claims)
	}
}
