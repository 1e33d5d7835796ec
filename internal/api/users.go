package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridequest/rideon-api/internal/auth"
	"github.com/ridequest/rideon-api/internal/config"
	"github.com/ridequest/rideon-api/internal/db"
)

// LoginRequest is the body for both login endpoints
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ParentLogin godoc
// @Summary      Parent login
// @Description  Authenticates a parent and returns a bearer token
// @Tags         users
// @Accept       json
// @Produce      plain
// @Param        body  body  LoginRequest  true  "Credentials"
// @Success      200   {string} string "token"
// @Failure      400   {object} map[string]string
// @Failure      401   {object} map[string]string
// @Router       /users/parents/login [post]
func ParentLogin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		parent, err := db.AuthenticateParent(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, db.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
				return
			}
			abortInternal(c, err)
			return
		}
		token, err := auth.IssueToken(cfg, auth.KindParent, parent.ID)
		if err != nil {
			abortInternal(c, err)
			return
		}
		c.String(http.StatusOK, token)
	}
}

// VolunteerLogin godoc
// @Summary      Volunteer login
// @Description  Authenticates a volunteer and returns a bearer token
// @Tags         users
// @Accept       json
// @Produce      plain
// @Param        body  body  LoginRequest  true  "Credentials"
// @Success      200   {string} string "token"
// @Failure      400   {object} map[string]string
// @Failure      401   {object} map[string]string
// @Router       /users/volunteers/login [post]
func VolunteerLogin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}
		volunteer, err := db.AuthenticateVolunteer(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, db.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
				return
			}
			abortInternal(c, err)
			return
		}
		token, err := auth.IssueToken(cfg, auth.KindVolunteer, volunteer.ID)
		if err != nil {
			abortInternal(c, err)
			return
		}
		c.String(http.StatusOK, token)
	}
}
