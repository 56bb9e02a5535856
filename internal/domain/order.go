package domain

// DonationOrder Model — canonical gateway order persisted at creation time.
// Verification reads the amount/currency from here instead of trusting the
// values the browser echoes back.
type DonationOrder struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	OrderID   string `gorm:"unique;not null" json:"order_id"`        // Gateway order identifier
	Amount    int64  `gorm:"not null" json:"amount"`                 // Amount in minor units, as sent to the gateway
	Currency  string `gorm:"not null" json:"currency"`               // ISO currency code
	Receipt   string `gorm:"not null" json:"receipt"`                // Merchant receipt reference
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
