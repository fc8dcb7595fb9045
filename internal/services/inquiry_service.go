package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cloudshift360/site-backend/internal/models"
	"gorm.io/gorm"
)

// InquiryStore is the persistence contract for contact-form submissions.
type InquiryStore interface {
	Create(in CreateInquiry) (*models.Inquiry, error)
	ListAll() []models.Inquiry
	UpdateStatus(id uint, status models.InquiryStatus) (*models.Inquiry, error)
}

type CreateInquiry struct {
	Name        string
	Email       string
	Phone       *string
	Company     *string
	ServiceType string
	Message     string
	Budget      *string
	Timeline    *string
}

type InquiryService struct {
	db *gorm.DB
}

func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{db: db}
}

// Create inserts a row with status "new" and returns it re-read by its
// generated id. A nil result with nil error means the store is unreachable;
// the caller decides degrade-vs-fail policy.
func (s *InquiryService) Create(in CreateInquiry) (*models.Inquiry, error) {
	if s.db == nil {
		slog.Warn("cannot create inquiry: database not available")
		return nil, nil
	}

	row := models.Inquiry{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		ServiceType: in.ServiceType,
		Message:     in.Message,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Status:      models.StatusNew,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	var created models.Inquiry
	if err := s.db.First(&created, row.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to read back inquiry: %w", err)
	}
	return &created, nil
}

// ListAll never fails: an unreachable store or a query error yields an empty
// slice so the caller can render an empty dashboard.
func (s *InquiryService) ListAll() []models.Inquiry {
	if s.db == nil {
		slog.Warn("cannot list inquiries: database not available")
		return []models.Inquiry{}
	}

	var rows []models.Inquiry
	if err := s.db.Find(&rows).Error; err != nil {
		slog.Error("failed to list inquiries", "error", err)
		return []models.Inquiry{}
	}
	if rows == nil {
		rows = []models.Inquiry{}
	}
	return rows
}

// UpdateStatus returns (nil, nil) when no row matches or the store is
// unreachable; an error only signals an unexpected storage failure.
func (s *InquiryService) UpdateStatus(id uint, status models.InquiryStatus) (*models.Inquiry, error) {
	if s.db == nil {
		slog.Warn("cannot update inquiry: database not available")
		return nil, nil
	}

	var row models.Inquiry
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load inquiry %d: %w", id, err)
	}

	if err := s.db.Model(&row).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update inquiry %d: %w", id, err)
	}
	row.Status = status
	return &row, nil
}
