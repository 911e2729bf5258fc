package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/studytrack-backend/internal/platform/ctxutil"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

const testSecret = "test-secret-0123456789"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims, method jwt.SigningMethod) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestAuthService_SetContextFromToken(t *testing.T) {
	svc, err := NewAuthService(logger.NewNop(), AuthConfig{JWTSecret: testSecret, Issuer: "https://auth.example", Audience: "authenticated"})
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	userID := uuid.New()
	valid := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    "https://auth.example",
		Audience:  jwt.ClaimStrings{"authenticated"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	ctx, err := svc.SetContextFromToken(context.Background(), signToken(t, testSecret, valid, jwt.SigningMethodHS256))
	if err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if got := ctxutil.UserID(ctx); got != userID {
		t.Fatalf("user id = %s want %s", got, userID)
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	wrongIss := valid
	wrongIss.Issuer = "https://evil.example"
	wrongAud := valid
	wrongAud.Audience = jwt.ClaimStrings{"other"}
	badSub := valid
	badSub.Subject = "not-a-uuid"
	noExp := valid
	noExp.ExpiresAt = nil

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "abc.def.ghi"},
		{"wrong_secret", signToken(t, "another-secret", valid, jwt.SigningMethodHS256)},
		{"wrong_alg", signToken(t, testSecret, valid, jwt.SigningMethodHS512)},
		{"expired", signToken(t, testSecret, expired, jwt.SigningMethodHS256)},
		{"wrong_issuer", signToken(t, testSecret, wrongIss, jwt.SigningMethodHS256)},
		{"wrong_audience", signToken(t, testSecret, wrongAud, jwt.SigningMethodHS256)},
		{"bad_subject", signToken(t, testSecret, badSub, jwt.SigningMethodHS256)},
		{"missing_exp", signToken(t, testSecret, noExp, jwt.SigningMethodHS256)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SetContextFromToken(context.Background(), tc.token); err == nil {
				t.Fatalf("expected rejection")
			}
		})
	}
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	if _, err := NewAuthService(logger.NewNop(), AuthConfig{}); err == nil {
		t.Fatalf("expected error without secret")
	}
}
