package models

import "time"

// Project type enum values
const (
	ProjectTypePhysical = 0
	ProjectTypeDigital  = 1
)

// Project represents a portfolio entry with its metadata. Tags are persisted
// as a single comma-delimited column but travel as an ordered string array on
// the wire (see TagList). IsPublished is stored and serialized as 0/1.
type Project struct {
	ID               int       `json:"id" db:"id" gorm:"primaryKey"`
	Title            string    `json:"title" db:"title" gorm:"type:text;not null"`
	ShortDescription *string   `json:"short_description" db:"short_description" gorm:"type:text"`
	LongDescription  *string   `json:"long_description" db:"long_description" gorm:"type:text"`
	GithubURL        *string   `json:"github_url" db:"github_url" gorm:"type:text"`
	LiveURL          *string   `json:"live_url" db:"live_url" gorm:"type:text"`
	Tags             TagList   `json:"tags" db:"tags" gorm:"type:text"`
	Type             int       `json:"type" db:"type" gorm:"not null;default:0"`
	IsPublished      int       `json:"is_published" db:"is_published" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

// ProjectWithImage is the listing projection: a project plus the path of its
// primary image, the one with the smallest (sort_order, id) among the
// project's gallery. ImagePath is empty when the project has no images.
type ProjectWithImage struct {
	Project   `gorm:"embedded"`
	ImagePath string `json:"image_path" db:"image_path"`
}
