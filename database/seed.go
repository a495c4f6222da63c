package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sahilchouksey/college-directory/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, log zerolog.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// SeedAll runs all seed functions. Tables that already hold rows are skipped.
func (s *Seeder) SeedAll(ctx context.Context) error {
	s.log.Info().Msg("starting database seeding")

	if err := s.SeedColleges(ctx); err != nil {
		return fmt.Errorf("failed to seed colleges: %w", err)
	}

	if err := s.SeedCourses(ctx); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	s.log.Info().Msg("database seeding completed")
	return nil
}

// jsonDoc marshals static seed literals
func jsonDoc(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(b)
}

func ptr[T any](v T) *T { return &v }

// SeedColleges creates sample colleges
func (s *Seeder) SeedColleges(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.College{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		s.log.Info().Int64("existing", count).Msg("colleges already exist, skipping")
		return nil
	}

	colleges := []model.College{
		{
			Name:            "Amity University Online",
			Description:     "Online degrees from a NAAC A+ accredited private university.",
			ApprovalType:    "UGC-DEB Approved",
			RankingPosition: 1,
			Website:         ptr("https://amityonline.com"),
			Rating:          ptr(4.5),
			EstablishedYear: ptr(2005),
			Location:        ptr("Noida, Uttar Pradesh"),
			Accreditations: jsonDoc([]model.Accreditation{
				{Name: "UGC-DEB", Description: "Entitled to offer online programs"},
				{Name: "NAAC A+", Description: "Institutional accreditation"},
			}),
			Highlights: jsonDoc([]model.Highlight{
				{Label: "Programs", Value: "30+"},
				{Label: "Learners", Value: "1,00,000+"},
			}),
			CoursesOffered: jsonDoc([]model.OfferedCourse{
				{Name: "MBA", Degree: "Master of Business Administration", Duration: "2 Years", Fee: "₹1,79,000", EMI: true},
				{Name: "BCA", Degree: "Bachelor of Computer Applications", Duration: "3 Years", Fee: "₹1,50,000", EMI: true},
			}),
			WhyChoose: jsonDoc([]string{"Live and recorded lectures", "Placement assistance"}),
		},
		{
			Name:            "Manipal University Jaipur Online",
			Description:     "Industry-aligned online programs with flexible schedules.",
			ApprovalType:    "UGC-DEB Approved",
			RankingPosition: 2,
			Website:         ptr("https://www.onlinemanipal.com"),
			Rating:          ptr(4.4),
			EstablishedYear: ptr(2011),
			Location:        ptr("Jaipur, Rajasthan"),
			Accreditations: jsonDoc([]model.Accreditation{
				{Name: "NAAC A+", Description: "Institutional accreditation"},
			}),
			CoursesOffered: jsonDoc([]model.OfferedCourse{
				{Name: "MCA", Degree: "Master of Computer Applications", Duration: "2 Years", Fee: "₹1,58,000", EMI: true},
				{Name: "B.Com", Degree: "Bachelor of Commerce", Duration: "3 Years", Fee: "₹99,000", EMI: false},
			}),
			WhyChoose: jsonDoc([]string{"Free access to Coursera content", "Alumni network"}),
		},
		{
			Name:            "Indira Gandhi National Open University",
			Description:     "India's largest open university with nationwide study centres.",
			ApprovalType:    "UGC-DEB Approved",
			RankingPosition: 3,
			Website:         ptr("https://www.ignou.ac.in"),
			Rating:          ptr(4.2),
			EstablishedYear: ptr(1985),
			Location:        ptr("New Delhi"),
			WhyChoose:       jsonDoc([]string{"Affordable fees", "Regional study centres"}),
		},
	}

	if err := db.Create(&colleges).Error; err != nil {
		return err
	}

	s.log.Info().Int("created", len(colleges)).Msg("seeded colleges")
	return nil
}

// SeedCourses creates sample courses
func (s *Seeder) SeedCourses(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		s.log.Info().Int64("existing", count).Msg("courses already exist, skipping")
		return nil
	}

	courses := []model.Course{
		{
			Name:            "Online MBA",
			Category:        "MBA",
			Description:     "Two-year management program for working professionals.",
			Duration:        "2 Years",
			Eligibility:     "Graduation with 50% marks",
			Fee:             ptr("₹1,00,000 - ₹2,50,000"),
			Specializations: jsonDoc([]string{"Finance", "Marketing", "Human Resources", "Business Analytics"}),
			Highlights:      jsonDoc([]string{"Weekend live classes", "Capstone project"}),
			WhyChoose:       jsonDoc([]string{"Study while you work"}),
		},
		{
			Name:            "Online MCA",
			Category:        "MCA",
			Description:     "Postgraduate program in computer applications.",
			Duration:        "2 Years",
			Eligibility:     "BCA/B.Sc. or graduation with mathematics",
			Fee:             ptr("₹1,20,000 - ₹1,80,000"),
			Specializations: jsonDoc([]string{"Cloud Computing", "Data Science", "Cyber Security"}),
		},
		{
			Name:            "Online BCA",
			Category:        "BCA",
			Description:     "Undergraduate program in computer applications.",
			Duration:        "3 Years",
			Eligibility:     "10+2 from a recognised board",
			Fee:             ptr("₹75,000 - ₹1,50,000"),
		},
		{
			Name:        "Online B.Com",
			Category:    "B.Com",
			Description: "Undergraduate commerce program covering accounting and taxation.",
			Duration:    "3 Years",
			Eligibility: "10+2 from a recognised board",
			Fee:         ptr("₹60,000 - ₹1,00,000"),
		},
	}

	if err := db.Create(&courses).Error; err != nil {
		return err
	}

	s.log.Info().Int("created", len(courses)).Msg("seeded courses")
	return nil
}
