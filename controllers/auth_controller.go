package controllers

import (
	"net/http"
	"time"

	"blogapi/config"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/services"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const cookieMaxAge = 86400

type AuthController struct {
	cfg         *config.Config
	authService *services.AuthService
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{
		cfg:         cfg,
		authService: services.NewAuthService(db, cfg),
	}
}

// Login verifies the credentials and sets the session cookie. Bad input is
// 400, bad credentials 401 with no cookie and no detail on what failed.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user := ac.authService.VerifyCredentials(req.Email, req.Password)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, token, cookieMaxAge, "/", "", ac.cfg.IsProduction(), true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", ac.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Session reports the identity behind the current cookie, or a null user.
// There is no server-side session store; the cookie is the whole session.
func (ac *AuthController) Session(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil, "expires": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    claims.Identity(),
		"expires": claims.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
