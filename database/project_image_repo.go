package database

import (
	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByProjectID returns a project's gallery in ascending (sort_order, id)
// order. A project with no images yields an empty slice, not an error.
func (r *ProjectImageRepo) FindByProjectID(projectID int) ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).
		Order("sort_order ASC, id ASC").
		Find(&images).Error
	return images, err
}

// Add inserts a gallery image; the assigned id is written back into image.
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// DeleteByID removes an image unconditionally and reports how many rows
// actually went away. Zero means the image was already gone, which is not
// an error: the operation is idempotent.
func (r *ProjectImageRepo) DeleteByID(id int) (int64, error) {
	res := r.db.Delete(&models.ProjectImage{}, id)
	return res.RowsAffected, res.Error
}
