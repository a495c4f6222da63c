package model

import "time"

// Enquiry is a lead submitted from the public site.
// Course holds the free-text course name the visitor picked, not a Course ID.
type Enquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Course    string    `gorm:"not null" json:"course"`
	State     string    `gorm:"not null" json:"state"`
	Message   *string   `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for Enquiry
func (Enquiry) TableName() string {
	return "enquiries"
}
