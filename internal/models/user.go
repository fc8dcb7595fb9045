package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is keyed by OpenID, the stable external identity (an email address).
// Rows are created and refreshed by the login upsert and never deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OpenID       string    `gorm:"size:255;not null;uniqueIndex" json:"openId"`
	Name         *string   `gorm:"size:255" json:"name"`
	Email        *string   `gorm:"size:255" json:"email"`
	LoginMethod  *string   `gorm:"size:64" json:"loginMethod"`
	Role         string    `gorm:"size:20;not null;default:'user'" json:"role"`
	LastSignedIn time.Time `gorm:"not null" json:"lastSignedIn"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
