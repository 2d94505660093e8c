package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hall-complaints/internal/api/dto"
	"github.com/spec-kit/hall-complaints/internal/auth"
	"github.com/spec-kit/hall-complaints/internal/domain"
	"github.com/spec-kit/hall-complaints/internal/query"
	"github.com/spec-kit/hall-complaints/internal/service"
	apperrors "github.com/spec-kit/hall-complaints/pkg/util"
)

// AdminHandler manages the operator dashboard endpoints.
type AdminHandler struct {
	service *service.ComplaintService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(complaintService *service.ComplaintService) *AdminHandler {
	return &AdminHandler{service: complaintService}
}

// ListComplaints GET /admin/complaints.
func (h *AdminHandler) ListComplaints(c *fiber.Ctx) error {
	filter := query.Filter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	complaints, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /admin/complaints/:id/status.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	complaint, err := h.service.UpdateStatus(c.Context(), principal.Email, c.Params("id"), domain.ComplaintStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintResponse(complaint)})
}

// DeleteComplaint DELETE /admin/complaints/:id.
func (h *AdminHandler) DeleteComplaint(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Delete(c.Context(), principal.Email, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "Complaint deleted successfully"}})
}
