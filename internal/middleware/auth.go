package middleware

import (
	"net/http"
	"strings"

	"github.com/civiclink/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const staffKey = "staff"

// StaffMiddleware resolves who is acting on the dashboard. Every caller is
// treated as the default administrator; when a secret is configured, a
// valid bearer token replaces that identity with the one in its claims.
// A token that fails verification is rejected.
func StaffMiddleware(secret string, fallback models.Staff) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff := fallback

		authHeader := c.GetHeader("Authorization")
		if secret != "" && authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Invalid authorization header format",
				})
				return
			}

			claims, err := parseStaffToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Invalid token",
				})
				return
			}
			staff = claims.merge(fallback)
		}

		c.Set(staffKey, staff)
		c.Next()
	}
}

// CurrentStaff returns the identity set by StaffMiddleware, or the default
// administrator outside of it.
func CurrentStaff(c *gin.Context) models.Staff {
	if v, ok := c.Get(staffKey); ok {
		if staff, ok := v.(models.Staff); ok {
			return staff
		}
	}
	return models.DefaultStaff
}

type StaffClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (sc StaffClaims) merge(fallback models.Staff) models.Staff {
	staff := fallback
	if sc.Subject != "" {
		staff.ID = sc.Subject
	}
	if sc.Name != "" {
		staff.Name = sc.Name
	}
	if sc.Email != "" {
		staff.Email = sc.Email
	}
	if sc.Role != "" {
		staff.Role = models.UserRole(sc.Role)
	}
	return staff
}

func parseStaffToken(tokenString, secret string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// SignStaffToken issues an HS256 token for staff. Used by operator tooling
// and tests.
func SignStaffToken(staff models.Staff, secret string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = staff.ID
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, StaffClaims{
		Name:             staff.Name,
		Email:            staff.Email,
		Role:             string(staff.Role),
		RegisteredClaims: claims,
	})
	return token.SignedString([]byte(secret))
}
