package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"crowdfund_backend/internal/domain" // Importing domain models
	"crowdfund_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// ListCausesHandler returns every cause with its raised/goal totals
func ListCausesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Cause
		found, err := utils.GetCache(ctx, rdb, causesCacheKey, &cached) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"causes": cached, "cached": true})
			return
		}
		var causes []domain.Cause // Slice to hold causes
		// Fetch all causes in insertion order
		if err := db.Order("id asc").Find(&causes).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch causes"})
			return
		}
		_ = utils.SetCache(ctx, rdb, causesCacheKey, causes, 60*time.Second) // Cache the causes for 60 seconds
		c.JSON(http.StatusOK, gin.H{"causes": causes, "cached": false})      // Return the cause list
	}
}
