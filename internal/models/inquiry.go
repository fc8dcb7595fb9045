package models

import "time"

// InquiryStatus is the closed set of triage states an inquiry moves through.
type InquiryStatus string

const (
	StatusNew        InquiryStatus = "new"
	StatusContacted  InquiryStatus = "contacted"
	StatusInProgress InquiryStatus = "in-progress"
	StatusCompleted  InquiryStatus = "completed"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Inquiry is a contact-form submission. Created once via the public submit
// endpoint, mutated only through status updates, never deleted.
type Inquiry struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Email       string        `gorm:"size:255;not null" json:"email"`
	Phone       *string       `gorm:"size:64" json:"phone"`
	Company     *string       `gorm:"size:255" json:"company"`
	ServiceType string        `gorm:"size:100;not null" json:"serviceType"`
	Message     string        `gorm:"type:text;not null" json:"message"`
	Budget      *string       `gorm:"size:64" json:"budget"`
	Timeline    *string       `gorm:"size:64" json:"timeline"`
	Status      InquiryStatus `gorm:"size:20;not null;default:'new'" json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
