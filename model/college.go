package model

import (
	"time"

	"gorm.io/datatypes"
)

// College represents a distance-education institution listed in the directory
type College struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"not null" json:"name"`
	Description         string    `gorm:"type:text" json:"description"`
	ApprovalType        string    `gorm:"type:varchar(255)" json:"approval_type"` // e.g. "UGC-DEB Approved"
	RankingPosition     int       `gorm:"default:0;index" json:"ranking_position"`
	LogoURL             *string   `gorm:"type:varchar(512)" json:"logo_url,omitempty"`
	Website             *string   `gorm:"type:varchar(255)" json:"website,omitempty"`
	DetailedDescription *string   `gorm:"type:text" json:"detailed_description,omitempty"`
	Rating              *float64  `json:"rating,omitempty"`
	EstablishedYear     *int      `json:"established_year,omitempty"`
	Location            *string   `gorm:"type:varchar(255)" json:"location,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Presentation-only documents
	Accreditations datatypes.JSON `json:"accreditations,omitempty"`  // [{name, description, icon}]
	Highlights     datatypes.JSON `json:"highlights,omitempty"`      // [{label, value}]
	CoursesOffered datatypes.JSON `json:"courses_offered,omitempty"` // [{name, degree, duration, fee, emi}]
	WhyChoose      datatypes.JSON `json:"why_choose,omitempty"`      // [string]
}

// Accreditation is one entry of College.Accreditations
type Accreditation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Highlight is one entry of College.Highlights
type Highlight struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OfferedCourse is one entry of College.CoursesOffered
type OfferedCourse struct {
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	Duration string `json:"duration"`
	Fee      string `json:"fee"`
	EMI      bool   `json:"emi"`
}
