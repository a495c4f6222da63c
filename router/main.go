package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/database"
	"github.com/sahilchouksey/college-directory/handlers"
	auth_handlers "github.com/sahilchouksey/college-directory/handlers/auth"
	college_handlers "github.com/sahilchouksey/college-directory/handlers/college"
	course_handlers "github.com/sahilchouksey/college-directory/handlers/course"
	enquiry_handlers "github.com/sahilchouksey/college-directory/handlers/enquiry"
	"github.com/sahilchouksey/college-directory/utils"
	"github.com/sahilchouksey/college-directory/utils/auth"
	"github.com/sahilchouksey/college-directory/utils/middleware"
)

// Dependencies carries everything the routes need besides the store
type Dependencies struct {
	Log            zerolog.Logger
	RequestTimeout time.Duration
	Security       middleware.SecurityConfig
	Verifier       auth.CredentialVerifier

	// Login is nil when no admin credentials are configured
	Login *auth_handlers.AuthHandler
	// BruteForce is nil when Redis is not configured
	BruteForce *middleware.BruteForceProtection
}

func SetupRoutes(app *fiber.App, store database.Storage, deps Dependencies) {
	log := deps.Log

	authMiddleware := middleware.NewAuthMiddleware(deps.Verifier, log)
	requireAdmin := authMiddleware.RequireAdmin()

	collegeHandler := college_handlers.NewCollegeHandler(store, log, deps.RequestTimeout)
	courseHandler := course_handlers.NewCourseHandler(store, log, deps.RequestTimeout)
	enquiryHandler := enquiry_handlers.NewEnquiryHandler(store, log, deps.RequestTimeout)

	middleware.SetupSecurity(app, log, deps.Security)

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// Public listings
	colleges := app.Group("/colleges")
	colleges.Get("/", collegeHandler.ListColleges)
	colleges.Get("/:id", collegeHandler.GetCollege)

	courses := app.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)
	courses.Get("/:id", courseHandler.GetCourse)

	// Enquiry intake (public)
	app.Post("/enquiries", enquiryHandler.CreateEnquiry)

	admin := app.Group("/admin")

	// Login with brute force protection
	if deps.Login != nil {
		if deps.BruteForce != nil {
			admin.Post("/login", deps.BruteForce.CheckAndRecordAttempt(), deps.Login.Login)
		} else {
			admin.Post("/login", deps.Login.Login)
		}
	}

	adminColleges := admin.Group("/colleges", requireAdmin)
	adminColleges.Post("/", middleware.AdminAuditLog(log, "college_create", "colleges"), collegeHandler.CreateCollege)
	adminColleges.Put("/:id", middleware.AdminAuditLog(log, "college_update", "colleges"), collegeHandler.UpdateCollege)
	adminColleges.Delete("/:id", middleware.AdminAuditLog(log, "college_delete", "colleges"), collegeHandler.DeleteCollege)

	adminCourses := admin.Group("/courses", requireAdmin)
	adminCourses.Post("/", middleware.AdminAuditLog(log, "course_create", "courses"), courseHandler.CreateCourse)
	adminCourses.Put("/:id", middleware.AdminAuditLog(log, "course_update", "courses"), courseHandler.UpdateCourse)
	adminCourses.Delete("/:id", middleware.AdminAuditLog(log, "course_delete", "courses"), courseHandler.DeleteCourse)

	adminEnquiries := admin.Group("/enquiries", requireAdmin)
	adminEnquiries.Get("/", enquiryHandler.ListEnquiries)
	adminEnquiries.Get("/:id", enquiryHandler.GetEnquiry)
	adminEnquiries.Delete("/:id", middleware.AdminAuditLog(log, "enquiry_delete", "enquiries"), enquiryHandler.DeleteEnquiry)
}
