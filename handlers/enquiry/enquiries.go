package enquiry

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/model"
	"github.com/sahilchouksey/college-directory/utils"
	"github.com/sahilchouksey/college-directory/utils/response"
	"github.com/sahilchouksey/college-directory/utils/validation"
)

// EnquiryHandler handles the public intake and the back-office lead list
type EnquiryHandler struct {
	store     database.EnquiryStore
	validator *validation.Validator
	log       zerolog.Logger
	timeout   time.Duration
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(store database.EnquiryStore, log zerolog.Logger, timeout time.Duration) *EnquiryHandler {
	return &EnquiryHandler{
		store:     store,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "enquiry").Logger(),
		timeout:   timeout,
	}
}

// CreateEnquiryRequest is the intake form. Field order is the order
// missing fields are reported in.
type CreateEnquiryRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	Course  string  `json:"course" validate:"required"`
	State   string  `json:"state" validate:"required"`
	Message *string `json:"message"`
}

// CreateEnquiry handles POST /enquiries
func (h *EnquiryHandler) CreateEnquiry(c *fiber.Ctx) error {
	var req CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		if failure, ok := validation.FirstFailure(err); ok {
			return response.ValidationError(c, failure.Message(), failure.Field)
		}
		return response.BadRequest(c, "Invalid request body")
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	// stored exactly as submitted
	enquiry, err := h.store.CreateEnquiry(ctx, &model.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Course:  req.Course,
		State:   req.State,
		Message: req.Message,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("create enquiry failed")
		return response.InternalServerError(c, "Failed to submit enquiry")
	}

	h.log.Info().Uint("id", enquiry.ID).Str("course", enquiry.Course).Msg("enquiry received")

	return response.SuccessWithMessage(c, "Enquiry submitted successfully", enquiry)
}

// ListEnquiries handles GET /admin/enquiries, newest first
func (h *EnquiryHandler) ListEnquiries(c *fiber.Ctx) error {
	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	enquiries, err := h.store.ListEnquiries(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list enquiries failed")
		return response.InternalServerError(c, "Failed to fetch enquiries")
	}

	return response.Success(c, enquiries)
}

// GetEnquiry handles GET /admin/enquiries/:id
func (h *EnquiryHandler) GetEnquiry(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	enquiry, err := h.store.GetEnquiry(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Uint("id", id).Msg("get enquiry failed")
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}
	if enquiry == nil {
		return response.NotFound(c, "Enquiry not found")
	}

	return response.Success(c, enquiry)
}

// DeleteEnquiry handles DELETE /admin/enquiries/:id
func (h *EnquiryHandler) DeleteEnquiry(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	removed, err := h.store.DeleteEnquiry(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Uint("id", id).Msg("delete enquiry failed")
		return response.InternalServerError(c, "Failed to delete enquiry")
	}

	return response.SuccessWithMessage(c, "Enquiry deleted successfully", fiber.Map{
		"removed": len(removed),
	})
}
