package models

import "time"

// Contact is one contact-form submission. Name, email, subject and message
// are required at intake; no email-format validation or deduplication is
// performed.
type Contact struct {
	ID             int       `json:"id" db:"id" gorm:"primaryKey"`
	Name           string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email          string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject        string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message        string    `json:"message" db:"message" gorm:"type:text;not null"`
	ProjectDetails *string   `json:"project_details" db:"project_details" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

func (Contact) TableName() string {
	return "contacts"
}
