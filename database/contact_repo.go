package database

import (
	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a contact submission; the assigned id is written back.
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Count reports how many submissions exist, used by intake tests to assert
// that rejected submissions leave no row behind.
func (r *ContactRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Count(&count).Error
	return count, err
}
