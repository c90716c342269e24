package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

// singletonRowID addresses the profile and interests rows, which exist
// exactly once.
const singletonRowID = 1

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// EnsureDefaults creates the singleton profile and interests rows when they
// are absent, so the narrow PUT updates always have a target.
func (r *ProfileRepo) EnsureDefaults() error {
	if err := r.db.FirstOrCreate(&models.Profile{}, models.Profile{ID: singletonRowID}).Error; err != nil {
		return err
	}
	return r.db.FirstOrCreate(&models.Interest{}, models.Interest{ID: singletonRowID}).Error
}

// GetProfile returns the singleton profile row, or nil when it has never
// been created.
func (r *ProfileRepo) GetProfile() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("id = ?", singletonRowID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile rewrites every profile column on the singleton row.
func (r *ProfileRepo) UpdateProfile(profile *models.Profile) error {
	return r.db.Model(&models.Profile{}).
		Where("id = ?", singletonRowID).
		Select("full_name", "bio", "philosophy", "photo_url").
		Updates(profile).Error
}

// FindAllSkills returns every skill ordered by category, then sort_order.
// Unrecognized categories are included here; filtering them is the
// aggregator's concern.
func (r *ProfileRepo) FindAllSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("category ASC, sort_order ASC").Find(&skills).Error
	return skills, err
}

func (r *ProfileRepo) AddSkill(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *ProfileRepo) DeleteSkill(id int) error {
	return r.db.Delete(&models.Skill{}, id).Error
}

// FindAllExperience returns work history in ascending sort_order.
func (r *ProfileRepo) FindAllExperience() ([]models.Experience, error) {
	var experience []models.Experience
	err := r.db.Order("sort_order ASC").Find(&experience).Error
	return experience, err
}

func (r *ProfileRepo) AddExperience(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// UpdateExperience rewrites every column of one entry. Returns
// gorm.ErrRecordNotFound when no row matched.
func (r *ProfileRepo) UpdateExperience(experience *models.Experience) error {
	res := r.db.Model(&models.Experience{}).
		Where("id = ?", experience.ID).
		Select("title", "company", "period", "description", "sort_order").
		Updates(experience)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepo) DeleteExperience(id int) error {
	return r.db.Delete(&models.Experience{}, id).Error
}

// FindAllEducation returns schooling entries in insertion order.
func (r *ProfileRepo) FindAllEducation() ([]models.Education, error) {
	var education []models.Education
	err := r.db.Order("id ASC").Find(&education).Error
	return education, err
}

// UpdateEducation rewrites every column of one entry. Returns
// gorm.ErrRecordNotFound when no row matched.
func (r *ProfileRepo) UpdateEducation(education *models.Education) error {
	res := r.db.Model(&models.Education{}).
		Where("id = ?", education.ID).
		Select("school", "degree", "period", "coursework").
		Updates(education)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetInterests returns the singleton interests row, or nil when absent.
func (r *ProfileRepo) GetInterests() (*models.Interest, error) {
	var interest models.Interest
	err := r.db.Where("id = ?", singletonRowID).First(&interest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

// UpdateInterests replaces the singleton interests content.
func (r *ProfileRepo) UpdateInterests(content string) error {
	return r.db.Model(&models.Interest{}).
		Where("id = ?", singletonRowID).
		Update("content", content).Error
}
