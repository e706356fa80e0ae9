package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal-api/internal/delivery/http/response"
	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/apperror"
	"recruitment-portal-api/pkg/auth"
)

// CookieName is the session cookie set at login and cleared at logout.
const CookieName = "token"

// RequireAuth authenticates the request from the session cookie. The person
// is re-read from the identity store on every request; there is no session
// cache, so role or account changes take effect immediately.
func RequireAuth(tokens *auth.TokenManager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			message := "Invalid token"
			if err == auth.ErrTokenExpired {
				message = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, message, nil)
			c.Abort()
			return
		}

		person, err := authUC.CurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), person.PersonID)
		c.Set(string(domain.KeyUsername), person.Username)
		c.Set(string(domain.KeyUserRole), string(person.Role))

		c.Next()
	}
}

// RequireRole authorizes the authenticated identity against the route's
// required role. Must run after RequireAuth.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != string(role) {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Access denied", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
