package dto

import (
	"errors"
	"net/mail"

	"github.com/cloudshift360/site-backend/internal/models"
)

type SubmitInquiryRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	ServiceType string  `json:"serviceType"`
	Message     string  `json:"message"`
	Budget      *string `json:"budget"`
	Timeline    *string `json:"timeline"`
}

// Validate reports the first violated rule, checked in field order.
func (r SubmitInquiryRequest) Validate() error {
	if len(r.Name) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	if !validEmail(r.Email) {
		return errors.New("Invalid email address")
	}
	if r.ServiceType == "" {
		return errors.New("Please select a service type")
	}
	if len(r.Message) < 10 {
		return errors.New("Message must be at least 10 characters")
	}
	return nil
}

type SubmitInquiryResponse struct {
	Success   bool `json:"success"`
	InquiryID uint `json:"inquiryId"`
}

type UpdateStatusRequest struct {
	Status models.InquiryStatus `json:"status"`
}

type UpdateStatusResponse struct {
	Success bool           `json:"success"`
	Inquiry models.Inquiry `json:"inquiry"`
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
