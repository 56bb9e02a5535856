package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"crowdfund_backend/internal/api"        // Custom package for API handlers
	"crowdfund_backend/internal/config"     // Custom package for configuration
	"crowdfund_backend/internal/gateway"    // Custom package for the payment gateway client
	"crowdfund_backend/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup Razorpay gateway client
	razorpayGateway := gateway.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", api.RegisterHandler(db, cfg.JWTSecret))  // Registration endpoint
	authGroup.POST("/login", api.LoginHandler(db, cfg.JWTSecret))        // Login endpoint
	authGroup.POST("/refresh-token", api.RefreshTokenHandler(cfg.JWTSecret)) // Token refresh endpoint
	authGroup.GET("/me", middleware.JWTAuthMiddleware(cfg.JWTSecret), api.MeHandler(db)) // Current user endpoint

	// Cause routes
	r.GET("/api/cause", api.ListCausesHandler(db, redisClient)) // Cause listing endpoint

	// Payment routes
	paymentGroup := r.Group("/api/payment")
	paymentGroup.POST("/donate", api.DonateHandler(db, razorpayGateway))                              // Order initiation endpoint
	paymentGroup.POST("/verify-payment", api.VerifyPaymentHandler(db, redisClient, cfg.RazorpayKeySecret)) // Signature verification endpoint
	paymentGroup.GET("/payment-history", api.PaymentHistoryHandler(db, redisClient))                  // Donation history endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/api/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(db, redisClient))         // List users endpoint
	adminGroup.GET("/donations", api.ListDonationsHandler(db, redisClient)) // List donations endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
