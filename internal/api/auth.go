package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strings"  // String manipulation

	"crowdfund_backend/internal/domain" // Importing domain models
	"crowdfund_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Fullname  string `json:"fullname" binding:"required,min=3,max=50"` // Full name must be provided
	Email     string `json:"email" binding:"required,email"`           // Email must be provided and valid
	Phone     string `json:"phone" binding:"required"`                 // Phone must be provided
	Birthdate string `json:"birthdate" binding:"required"`             // Birthdate must be provided
	Password  string `json:"password" binding:"required,min=6"`        // Password must be at least 6 characters
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// AuthResponse carries the issued token pair
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`  // Short-lived access token
	RefreshToken string `json:"refreshToken"` // Long-lived refresh token
}

// phonePattern matches a 10-digit phone number
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate phone number format
		if !phonePattern.MatchString(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone must be 10 digits"})
			return
		}
		email := strings.ToLower(req.Email) // Store emails lowercase to keep uniqueness case-insensitive
		var existing domain.User
		// Reject early when the email is already registered
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "It seems you already have an account, please log in instead."})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			Fullname:  req.Fullname,  // Full name
			Email:     email,         // Lowercased email
			Phone:     req.Phone,     // Phone number
			Birthdate: req.Birthdate, // Birthdate
			Password:  string(hash),  // Hashed password
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate email), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "It seems you already have an account, please log in instead."})
			return
		}
		// Issue a token pair so the browser is logged in right after signup
		accessToken, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		refreshToken, err := utils.GenerateRefreshJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token pair in the response
		c.JSON(http.StatusCreated, AuthResponse{AccessToken: accessToken, RefreshToken: refreshToken})
	}
}

// LoginHandler authenticates a user and returns a token pair
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate the token pair
		accessToken, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		refreshToken, err := utils.GenerateRefreshJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token pair in the response
		c.JSON(http.StatusOK, AuthResponse{AccessToken: accessToken, RefreshToken: refreshToken})
	}
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"` // Refresh token must be provided
}

// RefreshTokenHandler exchanges a valid refresh token for a fresh token pair
func RefreshTokenHandler(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshTokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is required"})
			return
		}
		claims, err := utils.ParseJWT(req.RefreshToken, jwtSecret) // Validate the refresh token
		if err != nil {
			// If parsing fails, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}
		// Issue a new token pair for the same user
		accessToken, err := utils.GenerateJWT(claims.UserID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		refreshToken, err := utils.GenerateRefreshJWT(claims.UserID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the new token pair
		c.JSON(http.StatusOK, AuthResponse{AccessToken: accessToken, RefreshToken: refreshToken})
	}
}

// MeHandler returns the authenticated user's public profile
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user}) // Password is excluded by the model's json tag
	}
}
