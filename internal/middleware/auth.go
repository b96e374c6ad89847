package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bugtrail/bug-tracker-api/internal/auth"
	"github.com/bugtrail/bug-tracker-api/internal/constants"
	apierrors "github.com/bugtrail/bug-tracker-api/internal/errors"
)

// BearerAuth validates an Authorization bearer token when one is presented
// and stores the subject email in the request context. Whether a missing or
// invalid token rejects the request is policy data, not code: required=false
// keeps the permit-all behavior, required=true turns the routes into
// token-protected ones.
func BearerAuth(tokens *auth.JWTService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			if required {
				apierrors.Unauthorized(c, "")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		email, err := tokens.Verify(token)
		if err != nil {
			if required {
				apierrors.InvalidToken(c, "")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserEmail, email)
		c.Next()
	}
}

// GetUserEmail retrieves the authenticated user's email from context.
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUserEmail)
	if !exists {
		return "", false
	}

	email, ok := value.(string)
	return email, ok
}
