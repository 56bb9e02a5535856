package domain

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	Fullname  string `gorm:"not null" json:"fullname"`               // Full name, set at registration
	Email     string `gorm:"unique;not null" json:"email"`           // Unique email, used for login
	Phone     string `gorm:"not null" json:"phone"`                  // Contact phone number
	Birthdate string `gorm:"not null" json:"birthdate"`              // Birthdate (YYYY-MM-DD)
	Password  string `gorm:"not null" json:"-"`                      // Hashed password, never serialized
	Role      string `gorm:"default:user" json:"role"`               // Role: user or admin
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
