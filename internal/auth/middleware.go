package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridequest/rideon-api/internal/config"
	"github.com/ridequest/rideon-api/internal/db"
	"github.com/ridequest/rideon-api/internal/models"
)

const (
	parentKey    = "currentParent"
	volunteerKey = "currentVolunteer"
)

// ParentFromToken resolves a bearer token to a parent and attaches it
// to the request. No header, or a token issued for the other kind, is
// not an error: the request just proceeds without a parent identity.
// A token that fails verification rejects the request outright.
func ParentFromToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		kind, id, err := ParseToken(cfg, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if kind != KindParent {
			c.Next()
			return
		}
		parent, err := db.GetParentByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(parentKey, parent)
		c.Next()
	}
}

func VolunteerFromToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		kind, id, err := ParseToken(cfg, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if kind != KindVolunteer {
			c.Next()
			return
		}
		volunteer, err := db.GetVolunteerByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(volunteerKey, volunteer)
		c.Next()
	}
}

// RequireParent gates endpoints that need an authenticated parent.
func RequireParent() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentParent(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

func RequireVolunteer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentVolunteer(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireFacilitator runs after VolunteerFromToken and rejects
// volunteers without the facilitator flag, independent of any id
// checks.
func RequireFacilitator() gin.HandlerFunc {
	return func(c *gin.Context) {
		volunteer, ok := CurrentVolunteer(c)
		if !ok || !volunteer.Facilitator {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: requires facilitator"})
			return
		}
		c.Next()
	}
}

func CurrentParent(c *gin.Context) (*models.Parent, bool) {
	v, ok := c.Get(parentKey)
	if !ok {
		return nil, false
	}
	parent, ok := v.(*models.Parent)
	return parent, ok
}

func CurrentVolunteer(c *gin.Context) (*models.Volunteer, bool) {
	v, ok := c.Get(volunteerKey)
	if !ok {
		return nil, false
	}
	volunteer, ok := v.(*models.Volunteer)
	return volunteer, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
