package domain

// Cause Model — a cause/campaign users can donate to
type Cause struct {
	ID          uint    `gorm:"primaryKey" json:"id"`            // Primary key
	Title       string  `gorm:"unique;not null" json:"title"`    // Cause title, referenced by Donation.DonatedTo
	Description string  `gorm:"not null" json:"description"`     // Short description
	Image       string  `json:"image"`                           // Illustration image URL
	Raised      float64 `gorm:"not null;default:0" json:"raised"` // Total raised so far in major units
	Goal        float64 `gorm:"not null" json:"goal"`            // Fundraising goal in major units
}
