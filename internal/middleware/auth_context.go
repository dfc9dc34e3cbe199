package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"worknest/internal/authz"
	"worknest/internal/shared/apperror"
	"worknest/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthContext resolves the caller identity for mutating request operations.
// The original services passed identity as X-Role / X-Staff-ID /
// X-Department headers; those stay the primary carrier. A Bearer token
// issued by the profile service is accepted as an alternative carrying the
// same claims. Missing or malformed identity is a 400, per the request
// services' contract.
func AuthContext(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleRaw := c.GetHeader("X-Role")
		staffIDRaw := c.GetHeader("X-Staff-ID")
		department := c.GetHeader("X-Department")

		if roleRaw == "" && jwtSecret != "" {
			if claims, ok := bearerClaims(c, jwtSecret); ok {
				roleRaw, _ = claims["role"].(string)
				department, _ = claims["department"].(string)
				if v, ok := claims["staff_id"].(float64); ok {
					staffIDRaw = strconv.Itoa(int(v))
				}
			}
		}

		if roleRaw == "" || staffIDRaw == "" || department == "" {
			response.Error(c, http.StatusBadRequest, apperror.CodeMissingAuthContext,
				"Missing authentication headers", nil)
			c.Abort()
			return
		}

		role, ok := authz.ParseRole(roleRaw)
		if !ok {
			response.Error(c, http.StatusBadRequest, apperror.CodeMissingAuthContext,
				"Invalid role", nil)
			c.Abort()
			return
		}

		staffID, err := strconv.Atoi(staffIDRaw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeMissingAuthContext,
				"Invalid staff id", nil)
			c.Abort()
			return
		}

		c.Set("role", role.String())
		c.Set("staff_id", staffID)
		c.Set("department", strings.TrimSpace(department))

		c.Next()
	}
}

func bearerClaims(c *gin.Context, secret string) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// CallerFromContext rebuilds the authz caller set by AuthContext.
func CallerFromContext(c *gin.Context) authz.Caller {
	return authz.Caller{
		Role:       authz.Role(c.GetString("role")),
		StaffID:    c.GetInt("staff_id"),
		Department: c.GetString("department"),
	}
}
