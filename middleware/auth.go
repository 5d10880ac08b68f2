package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-saas/models"
	"hotel-saas/services"
	"hotel-saas/utils"
)

const (
	claimsKey  = "claims"
	hotelIDKey = "hotelID"
)

// Authenticator verifies a raw bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*services.Claims, error)
}

func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		claims, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if !errors.Is(err, services.ErrInvalidToken) {
				LoggerFrom(c).Error("token check failed", zap.Error(err))
			}
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}

func CurrentClaims(c *gin.Context) *services.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*services.Claims); ok {
			return claims
		}
	}
	return nil
}

// RequireRoles lets only the listed roles through. Super admins always
// pass.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		if claims.Role != models.RoleSuperAdmin && !allowed[claims.Role] {
			utils.JSONError(c, http.StatusForbidden, "forbidden: insufficient role")
			return
		}
		c.Next()
	}
}

// Tenant decides which hotel the request acts on. Routes carrying
// :hotelId must name the caller's own hotel. Other routes use the hotel in
// the token; a super admin has none and must pass ?hotelId=.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		hotelID := c.Param("hotelId")
		switch {
		case hotelID != "":
			if !claims.CanAccessHotel(hotelID) {
				utils.JSONError(c, http.StatusForbidden, "access to this hotel is not allowed")
				return
			}
		case claims.Role == models.RoleSuperAdmin:
			hotelID = c.Query("hotelId")
			if hotelID == "" {
				utils.JSONValidationError(c, http.StatusBadRequest, []models.FieldError{
					{Field: "hotelId", Message: "is required for platform accounts"},
				})
				return
			}
		case claims.HotelID != nil:
			hotelID = *claims.HotelID
		default:
			utils.JSONError(c, http.StatusForbidden, "account is not attached to a hotel")
			return
		}
		c.Set(hotelIDKey, hotelID)
		c.Next()
	}
}

// HotelID is the tenant chosen by Tenant.
func HotelID(c *gin.Context) string {
	return c.GetString(hotelIDKey)
}
