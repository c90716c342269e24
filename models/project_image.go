package models

// ProjectImage is one entry of a project's ordered gallery. Within a project
// images are always read in ascending (sort_order, id) order; sort_order is
// not unique and id breaks ties. ImagePath may be an absolute URL or a path
// relative to the upload root, resolved by the presentation layer.
type ProjectImage struct {
	ID        int     `json:"id" db:"id" gorm:"primaryKey"`
	ProjectID int     `json:"project_id" db:"project_id" gorm:"not null;index"`
	ImagePath string  `json:"image_path" db:"image_path" gorm:"type:text;not null"`
	Caption   *string `json:"caption" db:"caption" gorm:"type:text"`
	SortOrder int     `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}
