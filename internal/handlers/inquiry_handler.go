package handlers

import (
	"log/slog"

	"github.com/cloudshift360/site-backend/internal/dto"
	"github.com/cloudshift360/site-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InquiryHandler struct {
	store    services.InquiryStore
	notifier services.Notifier
}

func NewInquiryHandler(store services.InquiryStore, notifier services.Notifier) *InquiryHandler {
	return &InquiryHandler{store: store, notifier: notifier}
}

// Submit is the public contact-form endpoint. Validation short-circuits
// before any storage call; the owner notification is fired without awaiting
// its outcome.
func (h *InquiryHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	inquiry, err := h.store.Create(services.CreateInquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ServiceType: req.ServiceType,
		Message:     req.Message,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
	})
	if err != nil {
		slog.Error("failed to submit inquiry", "error", err)
		return internalError(c, "Failed to submit inquiry. Please try again.")
	}
	if inquiry == nil {
		return internalError(c, "Failed to create inquiry")
	}

	go h.notifier.NotifyOwner(services.InquiryNotification{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ServiceType: req.ServiceType,
		Message:     req.Message,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
	})

	return c.JSON(dto.SubmitInquiryResponse{Success: true, InquiryID: inquiry.ID})
}

// List returns every inquiry for the admin dashboard, oldest first by
// natural storage order. An unreachable store reads as an empty dashboard.
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.ListAll())
}

// UpdateStatus sets the triage status on a single inquiry.
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid inquiry id")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !req.Status.Valid() {
		return badRequest(c, "Invalid status")
	}

	inquiry, err := h.store.UpdateStatus(uint(id), req.Status)
	if err != nil {
		slog.Error("failed to update inquiry", "id", id, "error", err)
		return internalError(c, "Failed to update inquiry")
	}
	if inquiry == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Code: "NOT_FOUND", Message: "Inquiry not found",
		})
	}

	return c.JSON(dto.UpdateStatusResponse{Success: true, Inquiry: *inquiry})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Code: "BAD_REQUEST", Message: message,
	})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Code: "INTERNAL_SERVER_ERROR", Message: message,
	})
}
