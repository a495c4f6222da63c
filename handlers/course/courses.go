package course

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

// CourseHandler handles course-related requests
type CourseHandler struct {
	store     database.CourseStore
	validator *validation.Validator
	log       zerolog.Logger
	timeout   time.Duration
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(store database.CourseStore, log zerolog.Logger, timeout time.Duration) *CourseHandler {
	return &CourseHandler{
		store:     store,
		validator: validation.NewValidator(),
		log:       log.With().Str("handler", "course").Logger(),
		timeout:   timeout,
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	Name                string          `json:"name" validate:"required"`
	Category            string          `json:"category"`
	Description         string          `json:"description"`
	Duration            string          `json:"duration"`
	Eligibility         string          `json:"eligibility"`
	DetailedDescription *string         `json:"detailed_description"`
	Fee                 *string         `json:"fee"`
	Specializations     *datatypes.JSON `json:"specializations"`
	Highlights          *datatypes.JSON `json:"highlights"`
	WhyChoose           *datatypes.JSON `json:"why_choose"`
}

// UpdateCourseRequest represents the request body for updating a course.
// An explicit null clears the column.
type UpdateCourseRequest struct {
	Name                utils.Nullable[string]         `json:"name"`
	Category            utils.Nullable[string]         `json:"category"`
	Description         utils.Nullable[string]         `json:"description"`
	Duration            utils.Nullable[string]         `json:"duration"`
	Eligibility         utils.Nullable[string]         `json:"eligibility"`
	DetailedDescription utils.Nullable[string]         `json:"detailed_description"`
	Fee                 utils.Nullable[string]         `json:"fee"`
	Specializations     utils.Nullable[datatypes.JSON] `json:"specializations"`
	Highlights          utils.Nullable[datatypes.JSON] `json:"highlights"`
	WhyChoose           utils.Nullable[datatypes.JSON] `json:"why_choose"`
}

func (r CreateCourseRequest) toModel() *model.Course {
	course := &model.Course{
		Name:                r.Name,
		Category:            r.Category,
		Description:         r.Description,
		Duration:            r.Duration,
		Eligibility:         r.Eligibility,
		DetailedDescription: r.DetailedDescription,
		Fee:                 r.Fee,
	}
	if r.Specializations != nil {
		course.Specializations = *r.Specializations
	}
	if r.Highlights != nil {
		course.Highlights = *r.Highlights
	}
	if r.WhyChoose != nil {
		course.WhyChoose = *r.WhyChoose
	}
	return course
}

func (r UpdateCourseRequest) changes() map[string]interface{} {
	changes := make(map[string]interface{})
	r.Name.ApplyNotNull(changes, "name")
	r.Category.ApplyNotNull(changes, "category")
	r.Description.ApplyNotNull(changes, "description")
	r.Duration.ApplyNotNull(changes, "duration")
	r.Eligibility.ApplyNotNull(changes, "eligibility")
	r.DetailedDescription.Apply(changes, "detailed_description")
	r.Fee.Apply(changes, "fee")
	r.Specializations.Apply(changes, "specializations")
	r.Highlights.Apply(changes, "highlights")
	r.WhyChoose.Apply(changes, "why_choose")
	return changes
}

func (r UpdateCourseRequest) nameFailure() (validation.FieldFailure, bool) {
	switch {
	case r.Name.IsNull():
		return validation.FieldFailure{Field: "name", Tag: "required"}, true
	case r.Name.Set && r.Name.Value == "":
		return validation.FieldFailure{Field: "name", Tag: "min"}, true
	}
	return validation.FieldFailure{}, false
}

// ListCourses handles GET /courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	courses, err := h.store.ListCourses(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list courses failed")
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Success(c, courses)
}

// GetCourse handles GET /courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	course, err := h.store.GetCourse(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Uint("id", id).Msg("get course failed")
		return response.InternalServerError(c, "Failed to fetch course")
	}
	if course == nil {
		return response.NotFound(c, "Course not found")
	}

	return response.Success(c, course)
}

// CreateCourse handles POST /admin/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
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

	course, err := h.store.CreateCourse(ctx, req.toModel())
	if err != nil {
		h.log.Error().Err(err).Msg("create course failed")
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

// UpdateCourse handles PUT /admin/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if failure, bad := req.nameFailure(); bad {
		return response.ValidationError(c, failure.Message(), failure.Field)
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	course, err := h.store.UpdateCourse(ctx, id, req.changes())
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return response.NotFound(c, "Course not found")
		}
		h.log.Error().Err(err).Uint("id", id).Msg("update course failed")
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.SuccessWithMessage(c, "Course updated successfully", course)
}

// DeleteCourse handles DELETE /admin/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid course ID")
	}

	ctx, cancel := utils.RequestContext(c, h.timeout)
	defer cancel()

	removed, err := h.store.DeleteCourse(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Uint("id", id).Msg("delete course failed")
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.SuccessWithMessage(c, "Course deleted successfully", fiber.Map{
		"removed": len(removed),
	})
}
