package college

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/model"
	"github.com/sahilchouksey/college-directory/utils"
	"github.com/sahilchouksey/college-directory/utils/response"
	"github.com/sahilchouksey/college-directory/utils/validation"
	"gorm.io/datatypes"
)

// CollegeHandler handles college-related requests
type CollegeHandler struct {
	store     database.CollegeStore
	validator *validation.Validator
	log       zerolog.Logger
	timeout   time.Duration
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(store database.CollegeStore, log zerolog.Logger, timeout time.Duration) *CollegeHandler {
	return &CollegeHandler{
		store:     store,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "college").Logger(),
		timeout:   timeout,
	}
}

// CreateCollegeRequest represents the request body for creating a college
type CreateCollegeRequest struct {
	Name                string          `json:"name" validate:"required"`
	Description         string          `json:"description"`
	ApprovalType        string          `json:"approval_type"`
	RankingPosition     int             `json:"ranking_position"`
	LogoURL             *string         `json:"logo_url"`
	Website             *string         `json:"website"`
	DetailedDescription *string         `json:"detailed_description"`
	Rating              *float64        `json:"rating"`
	EstablishedYear     *int            `json:"established_year"`
	Location            *string         `json:"location"`
	Accreditations      *datatypes.JSON `json:"accreditations"`
	Highlights          *datatypes.JSON `json:"highlights"`
	CoursesOffered      *datatypes.JSON `json:"courses_offered"`
	WhyChoose           *datatypes.JSON `json:"why_choose"`
}

// UpdateCollegeRequest represents the request body for updating a college.
// Only keys present in the body are written; an explicit null clears the column.
type UpdateCollegeRequest struct {
	Name                utils.Nullable[string]         `json:"name"`
	Description         utils.Nullable[string]         `json:"description"`
	ApprovalType        utils.Nullable[string]         `json:"approval_type"`
	RankingPosition     utils.Nullable[int]            `json:"ranking_position"`
	LogoURL             utils.Nullable[string]         `json:"logo_url"`
	Website             utils.Nullable[string]         `json:"website"`
	DetailedDescription utils.Nullable[string]         `json:"detailed_description"`
	Rating              utils.Nullable[float64]        `json:"rating"`
	EstablishedYear     utils.Nullable[int]            `json:"established_year"`
	Location            utils.Nullable[string]         `json:"location"`
	Accreditations      utils.Nullable[datatypes.JSON] `json:"accreditations"`
	Highlights          utils.Nullable[datatypes.JSON] `json:"highlights"`
	CoursesOffered      utils.Nullable[datatypes.JSON] `json:"courses_offered"`
	WhyChoose           utils.Nullable[datatypes.JSON] `json:"why_choose"`
}

func derefJSON(j *datatypes.JSON) datatypes.JSON {
	if j == nil {
		return nil
	}
	return *j
}

func (r CreateCollegeRequest) toModel() *model.College {
	return &model.College{
		Name:                r.Name,
		Description:         r.Description,
		ApprovalType:        r.ApprovalType,
		RankingPosition:     r.RankingPosition,
		LogoURL:             r.LogoURL,
		Website:             r.Website,
		DetailedDescription: r.DetailedDescription,
		Rating:              r.Rating,
		EstablishedYear:     r.EstablishedYear,
		Location:            r.Location,
		Accreditations:      derefJSON(r.Accreditations),
		Highlights:          derefJSON(r.Highlights),
		CoursesOffered:      derefJSON(r.CoursesOffered),
		WhyChoose:           derefJSON(r.WhyChoose),
	}
}

// changes maps the present fields to their column names
func (r UpdateCollegeRequest) changes() map[string]interface{} {
	changes := make(map[string]interface{})
	r.Name.ApplyNotNull(changes, "name")
	r.Description.ApplyNotNull(changes, "description")
	r.ApprovalType.ApplyNotNull(changes, "approval_type")
	r.RankingPosition.ApplyNotNull(changes, "ranking_position")
	r.LogoURL.Apply(changes, "logo_url")
	r.Website.Apply(changes, "website")
	r.DetailedDescription.Apply(changes, "detailed_description")
	r.Rating.Apply(changes, "rating")
	r.EstablishedYear.Apply(changes, "established_year")
	r.Location.Apply(changes, "location")
	r.Accreditations.Apply(changes, "accreditations")
	r.Highlights.Apply(changes, "highlights")
	r.CoursesOffered.Apply(changes, "courses_offered")
	r.WhyChoose.Apply(changes, "why_choose")
	return changes
}

// nameFailure rejects a name that is present but null or empty
func (r UpdateCollegeRequest) nameFailure() (validation.FieldFailure, bool) {
	switch {
	case r.Name.IsNull():
		return validation.FieldFailure{Field: "name", Tag: "required"}, true
	case r.Name.Set && r.Name.Value == "":
		return validation.FieldFailure{Field: "name", Tag: "min"}, true
	}
	return validation.FieldFailure{}, false
}

// ListColleges handles GET /colleges
func (h *CollegeHandler) ListColleges(c *fiber.Ctx) error {
	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	colleges, err := h.store.ListColleges(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list colleges failed")
		return response.InternalServerError(c, "Failed to fetch colleges")
	}

	return response.Success(c, colleges)
}

// GetCollege handles GET /colleges/:id
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid college ID")
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	college, err := h.store.GetCollege(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Uint("id", id).Msg("get college failed")
		return response.InternalServerError(c, "Failed to fetch college")
	}
	if college == nil {
		return response.NotFound(c, "College not found")
	}

	return response.Success(c, college)
}

// CreateCollege handles POST /admin/colleges
func (h *CollegeHandler) CreateCollege(c *fiber.Ctx) error {
	var req CreateCollegeRequest
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

	college, err := h.store.CreateCollege(ctx, req.toModel())
	if err != nil {
		h.log.Error().Err(err).Msg("create college failed")
		return response.InternalServerError(c, "Failed to create college")
	}

	return response.Created(c, college)
}

// UpdateCollege handles PUT /admin/colleges/:id
func (h *CollegeHandler) UpdateCollege(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid college ID")
	}

	var req UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if failure, bad := req.nameFailure(); bad {
		return response.ValidationError(c, failure.Message(), failure.Field)
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	college, err := h.store.UpdateCollege(ctx, id, req.changes())
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "College not found")
		}
		h.log.Error().Err(err).Uint("id", id).Msg("update college failed")
		return response.InternalServerError(c, "Failed to update college")
	}

	return response.SuccessWithMessage(c, "College updated successfully", college)
}

// DeleteCollege handles DELETE /admin/colleges/:id
func (h *CollegeHandler) DeleteCollege(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid college ID")
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	removed, err := h.store.DeleteCollege(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Uint("id", id).Msg("delete college failed")
		return response.InternalServerError(c, "Failed to delete college")
	}

	return response.SuccessWithMessage(c, "College deleted successfully", fiber.Map{
		"removed": len(removed),
	})
}
