package database

import (
	"context"

	"github.com/sahilchouksey/college-directory/model"
	"gorm.io/gorm"
)

// CollegeStore is the gateway contract for colleges
type CollegeStore interface {
	ListColleges(ctx context.Context) ([]model.College, error)
	GetCollege(ctx context.Context, id uint) (*model.College, error)
	CreateCollege(ctx context.Context, college *model.College) (*model.College, error)
	UpdateCollege(ctx context.Context, id uint, changes map[string]interface{}) (*model.College, error)
	DeleteCollege(ctx context.Context, id uint) ([]model.College, error)
}

// CourseStore is the gateway contract for courses
type CourseStore interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id uint) (*model.Course, error)
	CreateCourse(ctx context.Context, course *model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, id uint, changes map[string]interface{}) (*model.Course, error)
	DeleteCourse(ctx context.Context, id uint) ([]model.Course, error)
}

// EnquiryStore is the gateway contract for enquiries. Enquiries are never updated.
type EnquiryStore interface {
	ListEnquiries(ctx context.Context) ([]model.Enquiry, error)
	GetEnquiry(ctx context.Context, id uint) (*model.Enquiry, error)
	CreateEnquiry(ctx context.Context, enquiry *model.Enquiry) (*model.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id uint) ([]model.Enquiry, error)
}

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck(ctx context.Context) error
	GetDB() *gorm.DB

	CollegeStore
	CourseStore
	EnquiryStore
}

var _ Storage = (*GORMStore)(nil)
