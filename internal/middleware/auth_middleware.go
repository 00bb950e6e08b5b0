package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/pkg/auth"
	"github.com/yigit/alumnisphere/internal/pkg/logger"
)

// Context keys set by JWTAuth
const (
	ContextKeySubject = "subject"
	ContextKeyScopes  = "scopes"
)

// AuthMiddleware validates bearer tokens in front of the analytics routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// Swagger UI sometimes sends the token as a query parameter
		if authHeader == "" {
			if queryToken := c.Query("token"); queryToken != "" {
				authHeader = queryToken
			}
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.FromContext(c.Request.Context()).Debug().Err(err).Msg("Rejected bearer token")
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyScopes, claims.Scopes)
		c.Next()
	}
}
