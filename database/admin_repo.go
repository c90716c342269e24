package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// FindByUsername looks up the admin account by exact, case-sensitive
// username. Returns gorm.ErrRecordNotFound when no account matches.
func (r *AdminRepo) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// EnsureAdmin creates the admin account with a bcrypt-hashed password when
// no account with that username exists yet. An existing account is left
// untouched; there is no self-service account creation.
func (r *AdminRepo) EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	err := r.db.Where("username = ?", username).First(&models.Admin{}).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.db.Create(&models.Admin{Username: username, PasswordHash: string(hashed)}).Error
}
