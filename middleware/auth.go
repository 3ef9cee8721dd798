package middleware

import (
	"strings"

	"campus-news-api/config"
	"campus-news-api/helper"
	"campus-news-api/models"
	"campus-news-api/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Middleware struct {
	helper   *helper.HTTPHelper
	userRepo repositories.UserRepository
	jwtCfg   config.JWTConfig
}

func New(h *helper.HTTPHelper, userRepo repositories.UserRepository, jwtCfg config.JWTConfig) *Middleware {
	return &Middleware{helper: h, userRepo: userRepo, jwtCfg: jwtCfg}
}

// Auth resolves the bearer token to an identity. A missing token and a
// rejected token both return 401, distinguished by details.reason so clients
// can tell "log in" from "log in again".
func (m *Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.helper.SendAPIError(c, models.Unauthenticated("authorization header required",
				gin.H{"reason": "token_missing"}))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			m.helper.SendAPIError(c, models.Unauthenticated("bearer token required",
				gin.H{"reason": "token_missing"}))
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.jwtCfg.Secret, nil
		})

		if err != nil || !token.Valid {
			m.helper.SendAPIError(c, models.Unauthenticated("invalid or expired token",
				gin.H{"reason": "token_rejected"}))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// RequireRole re-reads the persisted role on every request instead of
// trusting the token's role claim, because a role can change between token
// issuance and use.
func (m *Middleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			m.helper.SendAPIError(c, models.Unauthenticated("authentication required",
				gin.H{"reason": "token_missing"}))
			c.Abort()
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), userID.(uint))
		if err != nil {
			m.helper.SendAPIError(c, models.Forbidden("insufficient permissions"))
			c.Abort()
			return
		}

		if !user.IsActive {
			m.helper.SendAPIError(c, models.Forbidden("account is deactivated"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Set("current_user", user)
				c.Next()
				return
			}
		}

		m.helper.SendAPIError(c, models.Forbidden("insufficient permissions"))
		c.Abort()
	}
}
