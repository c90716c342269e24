package database

import (
	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAllWithPrimaryImage returns every project ordered by creation time,
// most recent first. Each row carries the path of the project's primary
// image: the one with the smallest (sort_order, id), or empty string when
// the project has no images.
func (r *ProjectRepo) FindAllWithPrimaryImage() ([]models.ProjectWithImage, error) {
	primaryImage := r.db.Model(&models.ProjectImage{}).
		Select("image_path").
		Where("project_id = projects.id").
		Order("sort_order ASC, id ASC").
		Limit(1)

	var rows []models.ProjectWithImage
	err := r.db.Model(&models.Project{}).
		Select("projects.*, COALESCE((?), '') AS image_path", primaryImage).
		Order("projects.created_at DESC").
		Find(&rows).Error
	return rows, err
}

// FindByID returns a project by its id, or gorm.ErrRecordNotFound.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project. The id and created_at are assigned by the
// store; created_at is never written again afterwards.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// projectUpdateColumns are the columns rewritten by Update. Every one of
// them is written on each call, so omitted optional fields are nulled out
// rather than left alone. created_at is deliberately absent.
var projectUpdateColumns = []string{
	"title", "short_description", "long_description",
	"github_url", "live_url", "tags", "type", "is_published",
}

// Update performs a full-record replace of the project with the given id.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *ProjectRepo) Update(project *models.Project) error {
	res := r.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Select(projectUpdateColumns).
		Updates(project)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPublished flips only the is_published column.
func (r *ProjectRepo) SetPublished(id, isPublished int) error {
	res := r.db.Model(&models.Project{}).
		Where("id = ?", id).
		Update("is_published", isPublished)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade removes a project together with its gallery in one
// transaction: images first, then the project row. If the image delete
// fails the project row survives untouched, and a reader never observes
// the project gone while its images remain.
func (r *ProjectRepo) DeleteCascade(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
