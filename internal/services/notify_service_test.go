package services

import (
	"strings"
	"testing"

	"github.com/cloudshift360/site-backend/internal/config"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestServiceTypeLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Cloud & DevOps", ServiceTypeLabel("cloud-devops"))
	require.Equal(t, "IT Security & Infrastructure", ServiceTypeLabel("it-security"))
	require.Equal(t, "Cloud Cost Audit", ServiceTypeLabel("cloud-cost-audit"))
	// Unknown codes pass through unchanged.
	require.Equal(t, "kubernetes-rescue", ServiceTypeLabel("kubernetes-rescue"))
}

func TestNotificationBody_AllFields(t *testing.T) {
	t.Parallel()

	body := InquiryNotification{
		Name:        "John Doe",
		Email:       "john@example.com",
		Phone:       strp("+1 (555) 123-4567"),
		Company:     strp("Tech Corp"),
		ServiceType: "cloud-devops",
		Message:     "We need help with our cloud infrastructure migration.",
		Budget:      strp("25k-50k"),
		Timeline:    strp("asap"),
	}.Body()

	require.Contains(t, body, "Name: John Doe")
	require.Contains(t, body, "Email: john@example.com")
	require.Contains(t, body, "Phone: +1 (555) 123-4567")
	require.Contains(t, body, "Company: Tech Corp")
	require.Contains(t, body, "Service Type: Cloud & DevOps")
	require.Contains(t, body, "Budget: 25k-50k")
	require.Contains(t, body, "Timeline: asap")
	require.Contains(t, body, "Reply to: john@example.com")
}

func TestNotificationBody_OptionalLinesDropped(t *testing.T) {
	t.Parallel()

	body := InquiryNotification{
		Name:        "Jane Smith",
		Email:       "jane@example.com",
		ServiceType: "it-security",
		Message:     "We need to improve our network security infrastructure.",
	}.Body()

	require.NotContains(t, body, "Phone:")
	require.NotContains(t, body, "Company:")
	require.NotContains(t, body, "Budget:")
	require.NotContains(t, body, "Timeline:")
	require.True(t, strings.HasPrefix(body, "New Inquiry Received"))
}

func TestSMTPNotifier_Unconfigured(t *testing.T) {
	t.Parallel()

	n := NewSMTPNotifier(&config.Config{})
	ok := n.NotifyOwner(InquiryNotification{
		Name:        "John Doe",
		Email:       "john@example.com",
		ServiceType: "other",
		Message:     "A long enough message body.",
	})
	require.False(t, ok)
}
