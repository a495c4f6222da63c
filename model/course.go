package model

import (
	"time"

	"gorm.io/datatypes"
)

// Course represents a distance-education program (e.g., MBA, MCA).
// Courses are not linked to colleges; the association only exists in listings.
type Course struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"not null" json:"name"`
	Category            string    `gorm:"type:varchar(100);index" json:"category"` // e.g., "MBA", "BCA"
	Description         string    `gorm:"type:text" json:"description"`
	Duration            string    `gorm:"type:varchar(100)" json:"duration"`
	Eligibility         string    `gorm:"type:text" json:"eligibility"`
	DetailedDescription *string   `gorm:"type:text" json:"detailed_description,omitempty"`
	Fee                 *string   `gorm:"type:varchar(100)" json:"fee,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Specializations datatypes.JSON `json:"specializations,omitempty"` // [string]
	Highlights      datatypes.JSON `json:"highlights,omitempty"`      // [string]
	WhyChoose       datatypes.JSON `json:"why_choose,omitempty"`      // [string]
}
