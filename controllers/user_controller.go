package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"chat-server/config"
	"chat-server/models"
	"chat-server/services"
	"chat-server/utils"
)

// currentUser pulls the authenticated user set by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := config.CookieSecure()
	c.SetCookie("accessToken", accessToken, int(config.AccessTokenTTL().Seconds()), "/", "", secure, true)
	c.SetCookie("refreshToken", refreshToken, int(config.RefreshTokenTTL().Seconds()), "/", "", secure, true)
}

func clearAuthCookies(c *gin.Context) {
	secure := config.CookieSecure()
	c.SetCookie("accessToken", "", -1, "/", "", secure, true)
	c.SetCookie("refreshToken", "", -1, "/", "", secure, true)
}

// Register creates a new user account and mails a verification link.
func Register(c *gin.Context) {
	var input struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	go services.SendVerificationEmail(user.FullName, user.Email, user.ID)

	utils.RespondSuccess(c, user, nil)
}

// Login verifies credentials, issues the token pair, and stores the refresh
// token on the user record.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := issueTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	setAuthCookies(c, accessToken, refreshToken)
	utils.RespondSuccess(c, gin.H{
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, nil)
}

// Logout clears the stored refresh token and drops the auth cookies.
func Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	if err := config.DB.Model(user).Update("refresh_token", "").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	clearAuthCookies(c)
	utils.RespondSuccess(c, gin.H{}, nil)
}

// RefreshToken rotates the token pair. The incoming refresh token must match
// the one stored on the user record; rotation invalidates it.
func RefreshToken(c *gin.Context) {
	incoming, err := c.Cookie("refreshToken")
	if err != nil || incoming == "" {
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.RefreshToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		incoming = input.RefreshToken
	}

	claims, err := services.ParseRefreshToken(incoming)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	if user.RefreshToken != incoming {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
		return
	}

	accessToken, refreshToken, err := issueTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	setAuthCookies(c, accessToken, refreshToken)
	utils.RespondSuccess(c, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, nil)
}

// VerifyEmail marks the account from the emailed link as verified.
func VerifyEmail(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user id"})
		return
	}

	result := config.DB.Model(&models.User{}).Where("id = ?", id).Update("is_verified", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	message := "User verified successfully"
	utils.RespondSuccess(c, gin.H{}, &message)
}

// GetAllUsers lists every user except the caller.
func GetAllUsers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	var users []models.User
	if err := config.DB.Where("id <> ?", user.ID).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	utils.RespondSuccess(c, users, nil)
}

// issueTokens generates a fresh token pair and persists the refresh token.
func issueTokens(user *models.User) (string, string, error) {
	accessToken, err := services.GenerateAccessToken(*user)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := services.GenerateRefreshToken(*user)
	if err != nil {
		return "", "", err
	}
	if err := config.DB.Model(user).Update("refresh_token", refreshToken).Error; err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
