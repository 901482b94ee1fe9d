package controllers

import (
	"errors"
	"net/http"

	"siteapi/models"
	"siteapi/services"
	"siteapi/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	adminService *services.AdminService
	jwtSecret    string
}

func NewAdminController(adminService *services.AdminService, jwtSecret string) *AdminController {
	return &AdminController{adminService: adminService, jwtSecret: jwtSecret}
}

// Login exchanges admin credentials for a bearer token
func (ac *AdminController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := ac.adminService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Unknown username and bad password look the same.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := utils.GenerateJWT(admin.Username, ac.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Register creates a new admin credential
func (ac *AdminController) Register(c *gin.Context) {
	var req models.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := ac.adminService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": admin})
}

// Dashboard returns aggregate counts and the most recent contact messages
func (ac *AdminController) Dashboard(c *gin.Context) {
	dashboard, err := ac.adminService.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
