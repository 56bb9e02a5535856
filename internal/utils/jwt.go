package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

const tokenIssuer = "crowdfund.com" // Issuer claim on every token

// JWT Claims
type Claims struct {
	UserID               uint `json:"user_id"` // Custom claim for user ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// GenerateJWT creates a short-lived access token for a given user ID
func GenerateJWT(userID uint, secret string) (string, error) {
	return signToken(userID, secret, time.Hour) // Access tokens expire in 1 hour
}

// GenerateRefreshJWT creates a long-lived refresh token for a given user ID
func GenerateRefreshJWT(userID uint, secret string) (string, error) {
	return signToken(userID, secret, 7*24*time.Hour) // Refresh tokens expire in 7 days
}

// signToken builds and signs an HS256 token with the given lifetime
func signToken(userID uint, secret string, lifetime time.Duration) (string, error) {
	// Set token claims
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)), // Expiration time
			IssuedAt:  jwt.NewNumericDate(time.Now()),               // Issued at current time
			Issuer:    tokenIssuer,                                  // Issuer claim
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
