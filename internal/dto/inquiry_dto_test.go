package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSubmit() SubmitInquiryRequest {
	return SubmitInquiryRequest{
		Name:        "John Doe",
		Email:       "john@example.com",
		ServiceType: "cloud-devops",
		Message:     "We need help with our cloud infrastructure migration.",
	}
}

func TestSubmitValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validSubmit().Validate())
}

func TestSubmitValidate_OptionalFieldsMayBeOmitted(t *testing.T) {
	t.Parallel()
	req := validSubmit()
	req.Phone = nil
	req.Company = nil
	req.Budget = nil
	req.Timeline = nil
	require.NoError(t, req.Validate())
}

func TestSubmitValidate_FirstViolationWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*SubmitInquiryRequest)
		message string
	}{
		{"empty name", func(r *SubmitInquiryRequest) { r.Name = "" }, "Name must be at least 2 characters"},
		{"one-char name", func(r *SubmitInquiryRequest) { r.Name = "J" }, "Name must be at least 2 characters"},
		{"invalid email", func(r *SubmitInquiryRequest) { r.Email = "invalid-email" }, "Invalid email address"},
		{"empty service type", func(r *SubmitInquiryRequest) { r.ServiceType = "" }, "Please select a service type"},
		{"short message", func(r *SubmitInquiryRequest) { r.Message = "Short" }, "Message must be at least 10 characters"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := validSubmit()
			tc.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			require.Equal(t, tc.message, err.Error())
		})
	}
}
