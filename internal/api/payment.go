package api

import (
	"context"  // Context for Redis operations
	"math"     // Rounding to minor units
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Receipt references and timestamps

	"crowdfund_backend/internal/domain"  // Importing domain models
	"crowdfund_backend/internal/gateway" // Payment gateway client and signature checks
	"crowdfund_backend/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

const causesCacheKey = "causes:all" // Cache key for the cause listing

// DonateRequest represents an order initiation request
type DonateRequest struct {
	Amount   float64 `json:"amount"`   // Donation amount in major units
	Currency string  `json:"currency"` // Optional ISO currency code, defaults to INR
}

// DonateHandler creates a gateway order for a donation attempt
func DonateHandler(db *gorm.DB, gw gateway.OrderCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DonateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Amount must be present and positive; no gateway call otherwise
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is required"})
			return
		}
		currency := req.Currency // Default currency to INR when absent
		if currency == "" {
			currency = "INR"
		}
		minorAmount := int64(math.Round(req.Amount * 100))                         // Gateway expects minor units (paise); round, never truncate
		receipt := "receipt_" + strconv.FormatInt(time.Now().UnixMilli(), 10)      // Time-based receipt reference, unique per request
		order, err := gw.CreateOrder(minorAmount, currency, receipt)               // Single attempt, fail-fast
		if err != nil {
			// Surface the gateway's message as a server error
			logrus.WithFields(logrus.Fields{
				"amount":   req.Amount,  // Requested amount
				"currency": currency,    // Currency
				"error":    err.Error(), // Gateway error message
			}).Error("Razorpay order creation failed") // Log order failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Persist the canonical order so verification does not have to trust
		// the amount the browser echoes back
		if orderID, ok := order["id"].(string); ok {
			rec := domain.DonationOrder{
				OrderID:  orderID,     // Gateway order identifier
				Amount:   minorAmount, // Minor units as sent to the gateway
				Currency: currency,    // Currency
				Receipt:  receipt,     // Receipt reference
			}
			if err := db.Create(&rec).Error; err != nil {
				// The gateway order exists either way; verification falls back
				// to client-supplied values when no local order is found
				logrus.WithFields(logrus.Fields{
					"order_id": orderID,     // Gateway order identifier
					"error":    err.Error(), // Persistence error
				}).Warn("Failed to persist donation order")
			}
		}
		c.JSON(http.StatusOK, order) // Return the gateway order object verbatim
	}
}

// VerifyPaymentRequest represents the checkout callback payload forwarded by the browser
type VerifyPaymentRequest struct {
	RazorpayOrderID   string  `json:"razorpay_order_id" binding:"required"`   // Gateway order identifier
	RazorpayPaymentID string  `json:"razorpay_payment_id" binding:"required"` // Gateway payment identifier
	RazorpaySignature string  `json:"razorpay_signature" binding:"required"`  // Gateway signature over order|payment
	UserID            uint    `json:"userId" binding:"required"`              // Donor reference
	Amount            float64 `json:"amount"`                                 // Amount as asserted by the client
	Currency          string  `json:"currency"`                               // Currency as asserted by the client
	DonatedTo         string  `json:"donatedto"`                              // Cause/campaign label
}

// VerifyPaymentHandler validates the gateway signature and writes the ledger entry
func VerifyPaymentHandler(db *gorm.DB, rdb *redis.Client, keySecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyPaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Resolve the donor before any signature work
		if err := db.First(&user, req.UserID).Error; err != nil {
			// Unknown donor short-circuits; nothing is written
			c.JSON(http.StatusBadRequest, gin.H{"error": "Donor not found"})
			return
		}
		amount, currency := req.Amount, req.Currency // Client-asserted values
		var order domain.DonationOrder
		// Prefer the canonical amount/currency persisted at order creation
		if err := db.Where("order_id = ?", req.RazorpayOrderID).First(&order).Error; err == nil {
			amount = float64(order.Amount) / 100 // Back to major units
			currency = order.Currency
		}
		donation := domain.Donation{
			UserID:    user.ID,               // Donor reference
			Amount:    amount,                // Major units
			Currency:  currency,              // Currency
			PaymentID: req.RazorpayPaymentID, // Gateway payment identifier
			OrderID:   req.RazorpayOrderID,   // Gateway order identifier
			Signature: req.RazorpaySignature, // Signature as received, for audit
			DonatedTo: req.DonatedTo,         // Cause label
		}
		// Recompute the expected signature and compare in constant time
		if !gateway.VerifySignature(keySecret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
			donation.Status = domain.DonationStatusFailed // Rejected attempts are still recorded
			if err := insertDonationIfAbsent(db, &donation); err != nil {
				logrus.WithFields(logrus.Fields{
					"order_id":   req.RazorpayOrderID,   // Gateway order identifier
					"payment_id": req.RazorpayPaymentID, // Gateway payment identifier
					"error":      err.Error(),           // Persistence error
				}).Error("Failed to record rejected payment")
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			return
		}
		donation.Status = domain.DonationStatusSuccess
		duplicate := false // Set when the ledger already holds this order/payment pair
		// Insert-if-absent so a replayed callback cannot write a second row;
		// only success rows count, a prior rejected attempt is no bar
		err := db.Transaction(func(tx *gorm.DB) error {
			exists, err := donationExists(tx, req.RazorpayOrderID, req.RazorpayPaymentID, domain.DonationStatusSuccess)
			if err != nil {
				return err // Return error to rollback
			}
			if exists {
				duplicate = true // Already recorded; nothing to write
				return nil
			}
			// Create the ledger entry
			if err := tx.Create(&donation).Error; err != nil {
				return err // Return error to rollback
			}
			// Credit the cause's raised total when the label matches a known cause
			if donation.DonatedTo != "" {
				if err := tx.Model(&domain.Cause{}).
					Where("title = ?", donation.DonatedTo).
					Update("raised", gorm.Expr("raised + ?", donation.Amount)).Error; err != nil {
					return err // Return error to rollback
				}
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// A verified payment that failed to persist is recorded as failed for audit
			donation.Status = domain.DonationStatusFailed
			_ = insertDonationIfAbsent(db, &donation)
			logrus.WithFields(logrus.Fields{
				"user_id":    user.ID,               // Donor reference
				"order_id":   req.RazorpayOrderID,   // Gateway order identifier
				"payment_id": req.RazorpayPaymentID, // Gateway payment identifier
				"error":      err.Error(),           // Persistence error
			}).Error("Failed to record verified payment") // Log ledger failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			return
		}
		if duplicate {
			// Replays are acknowledged without a second ledger row
			c.JSON(http.StatusOK, gin.H{"message": "Payment already recorded"})
			return
		}
		// Log successful donation
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID,                         // Donor reference
			"amount":     donation.Amount,                 // Donation amount
			"currency":   donation.Currency,               // Currency
			"donated_to": donation.DonatedTo,              // Cause label
			"order_id":   req.RazorpayOrderID,             // Gateway order identifier
			"payment_id": req.RazorpayPaymentID,           // Gateway payment identifier
			"timestamp":  time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Donation recorded") // Log donation success
		// Invalidate donor history and cause listing caches
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, donationHistoryCacheKey(user.ID))
		_ = utils.DeleteCache(ctx, rdb, causesCacheKey)
		c.JSON(http.StatusOK, gin.H{"message": "Payment verified successfully"})
	}
}

// donationExists reports whether the ledger already has this order/payment
// pair with the given status. Scoping by status keeps a failed audit row from
// masking (or blocking) the genuine success row for the same pair.
func donationExists(tx *gorm.DB, orderID, paymentID, status string) (bool, error) {
	var count int64
	err := tx.Model(&domain.Donation{}).
		Where("order_id = ? AND payment_id = ? AND status = ?", orderID, paymentID, status).
		Count(&count).Error
	return count > 0, err
}

// insertDonationIfAbsent writes the donation unless the pair is already recorded with the same status
func insertDonationIfAbsent(db *gorm.DB, donation *domain.Donation) error {
	return db.Transaction(func(tx *gorm.DB) error {
		exists, err := donationExists(tx, donation.OrderID, donation.PaymentID, donation.Status)
		if err != nil || exists {
			return err // Nothing to write when the pair is already present
		}
		return tx.Create(donation).Error // Create the ledger entry
	})
}

// donationHistoryCacheKey builds the per-donor history cache key
func donationHistoryCacheKey(userID uint) string {
	return "donations:user:" + strconv.Itoa(int(userID))
}

// PaymentHistoryHandler returns all donations for a donor, newest first
func PaymentHistoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.Query("userId") // Donor identifier from query string
		if userIDStr == "" {
			// Donor identifier is required
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}
		userID, err := strconv.Atoi(userIDStr) // Must be a numeric identifier
		if err != nil || userID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is invalid"})
			return
		}
		ctx := context.Background()                    // Context for Redis operations
		cacheKey := donationHistoryCacheKey(uint(userID)) // Cache key for this donor
		var cached []domain.Donation
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"donations": cached, "cached": true})
			return
		}
		var donations []domain.Donation // Slice to hold donations
		// Fetch all donations for this donor, most recent first
		if err := db.Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&donations).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, donations, 60*time.Second)    // Cache the history for 60 seconds
		c.JSON(http.StatusOK, gin.H{"donations": donations, "cached": false}) // Return donation history
	}
}
