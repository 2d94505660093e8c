package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hall-complaints/internal/api/dto"
	"github.com/spec-kit/hall-complaints/internal/domain"
	"github.com/spec-kit/hall-complaints/internal/service"
	apperrors "github.com/spec-kit/hall-complaints/pkg/util"
)

// ComplaintsHandler manages the public resident endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Submit POST /complaints.
func (h *ComplaintsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	complaint, err := h.service.Submit(c.Context(), service.SubmitInput{
		RoomNumber:  req.RoomNumber,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SubmitComplaintResponse{
		ID:      complaint.ID,
		Message: "Your complaint has been submitted successfully.",
	}})
}

// Track GET /complaints/:id.
func (h *ComplaintsHandler) Track(c *fiber.Ctx) error {
	complaint, err := h.service.Track(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintResponse(complaint)})
}

func complaintResponse(complaint *domain.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		ID:          complaint.ID,
		RoomNumber:  complaint.RoomNumber,
		Category:    complaint.Category,
		Description: complaint.Description,
		Status:      complaint.Status,
		CreatedAt:   complaint.CreatedAt,
	}
}
