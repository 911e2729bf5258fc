package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studytrack-backend/internal/http/response"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
	"github.com/yungbote/studytrack-backend/internal/services"
)

var errNoBearer = errors.New("missing or invalid token")

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), authService: authService}
}

// RequireAuth verifies the bearer token and stores the caller on the request
// context. Every failure is a 401 in the standard error envelope.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			am.reject(c, errNoBearer)
			return
		}
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), token)
		if err != nil {
			am.log.Debug("token rejected", "path", c.Request.URL.Path, "error", err.Error())
			am.reject(c, err)
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (am *AuthMiddleware) reject(c *gin.Context, err error) {
	response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	c.Abort()
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
