package middleware

import (
	"errors"
	"strings"

	autherrors "github.com/piyushraj0718/payrollmanagement/internal/auth/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenCookie = "access_token"

// AccessClaims is the payload of the access token issued at login.
type AccessClaims struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Organization string `json:"organization"`
	jwt.RegisteredClaims
}

// AuthMiddleware accepts a bearer token or the access_token cookie. On
// success user_id, username and organization are set on the gin context;
// every payroll query downstream is scoped by that organization.
func AuthMiddleware(secret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	key := func(*jwt.Token) (interface{}, error) { return []byte(secret), nil }

	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		var claims AccessClaims
		if _, err := parser.ParseWithClaims(raw, &claims, key); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}
		if claims.UserID == "" || claims.Organization == "" {
			abortWith(c, autherrors.ErrIncompleteClaims)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("organization", claims.Organization)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if tok, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && tok != "" {
		return tok
	}
	tok, _ := c.Cookie(AccessTokenCookie)
	return tok
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
