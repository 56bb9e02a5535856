package domain

// Donation statuses
const (
	DonationStatusSuccess = "success" // Signature verified, payment recorded
	DonationStatusFailed  = "failed"  // Signature mismatch or persistence fault, kept for audit
)

// Donation Model — one row per completed checkout attempt, immutable after
// insert. The unique index spans status so a rejected attempt for an
// order/payment pair can never block the genuine success row.
type Donation struct {
	ID        uint    `gorm:"primaryKey" json:"id"`                               // Primary key
	UserID    uint    `gorm:"not null;index" json:"user_id"`                      // Foreign key to User (the donor)
	Amount    float64 `gorm:"not null" json:"amount"`                             // Donation amount in major units
	Currency  string  `gorm:"not null" json:"currency"`                           // ISO currency code
	PaymentID string  `gorm:"not null;uniqueIndex:idx_order_payment" json:"payment_id"` // Gateway payment identifier
	OrderID   string  `gorm:"not null;uniqueIndex:idx_order_payment" json:"order_id"`   // Gateway order identifier
	Signature string  `gorm:"not null" json:"signature"`                          // Gateway signature as received, for audit
	DonatedTo string  `gorm:"not null" json:"donatedto"`                          // Cause/campaign label
	Status    string  `gorm:"not null;uniqueIndex:idx_order_payment" json:"status"`     // success or failed
	CreatedAt int64   `gorm:"autoCreateTime:milli" json:"created_at"`             // Timestamp of creation in milliseconds
}
