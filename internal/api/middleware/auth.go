package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adiweb12/Devwatsee/internal/api/response"
	"github.com/adiweb12/Devwatsee/pkg/utils"
)

const (
	ContextKeySubject = "currentSubject"
	ContextKeyUserID  = "currentUserID"
)

// AuthRequired validates the bearer token and stores its subject in the
// context. Missing, malformed and expired tokens all get the same 401 body.
func AuthRequired(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		subject, err := tokens.Parse(token)
		if err != nil {
			response.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		c.Set(ContextKeySubject, subject)
		c.Next()
	}
}

// UserRequired resolves the token subject into a member user id. Must run
// after AuthRequired. An admin token carries no user id, so it is refused
// here with 403.
func UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			response.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			response.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// AdminRequired lets only the admin subject through. Must run after
// AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			response.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		if subject != utils.AdminSubject {
			response.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSubject reads the token subject set by AuthRequired.
func GetSubject(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeySubject)
	if !exists {
		return "", false
	}
	subject, ok := val.(string)
	return subject, ok
}

// GetCurrentUserID reads the member user id set by UserRequired.
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// extractToken pulls the bearer token out of the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
