package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/studytrack-backend/internal/platform/ctxutil"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

// AuthConfig describes the tokens issued by the hosted auth provider.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
	Leeway    time.Duration
}

// AuthService verifies bearer tokens. Sign-in happens at the provider; this
// service never issues tokens.
type AuthService interface {
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	log    *logger.Logger
	cfg    AuthConfig
	parser *jwt.Parser
}

func NewAuthService(log *logger.Logger, cfg AuthConfig) (AuthService, error) {
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("missing AUTH_JWT_SECRET")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &authService{
		log:    log.With("service", "AuthService"),
		cfg:    cfg,
		parser: jwt.NewParser(opts...),
	}, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return ctx, fmt.Errorf("missing token")
	}
	claims := &jwt.RegisteredClaims{}
	tok, err := as.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(as.cfg.JWTSecret), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("invalid token: %w", err)
	}
	if tok == nil || !tok.Valid {
		return ctx, fmt.Errorf("invalid token")
	}
	userID, err := uuid.Parse(strings.TrimSpace(claims.Subject))
	if err != nil || userID == uuid.Nil {
		return ctx, fmt.Errorf("invalid user id in token")
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}), nil
}
