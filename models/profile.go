package models

// Recognized skill categories. Skills stored under any other category remain
// in the table but are excluded from the grouped profile projection.
const (
	SkillCategoryProgramming  = "programming"
	SkillCategoryTools        = "tools"
	SkillCategoryProfessional = "professional"
)

// Profile is the singleton about-page record, always addressed by id 1.
// Bio and philosophy are stored and returned verbatim; sanitizing any markup
// they contain is a presentation-layer concern.
type Profile struct {
	ID         int    `json:"id" db:"id" gorm:"primaryKey"`
	FullName   string `json:"full_name" db:"full_name" gorm:"type:text"`
	Bio        string `json:"bio" db:"bio" gorm:"type:text"`
	Philosophy string `json:"philosophy" db:"philosophy" gorm:"type:text"`
	PhotoURL   string `json:"photo_url" db:"photo_url" gorm:"type:text"`
}

func (Profile) TableName() string {
	return "profile"
}

// Skill is one named skill within a category, ordered by SortOrder inside
// its category bucket.
type Skill struct {
	ID        int    `json:"id" db:"id" gorm:"primaryKey"`
	Category  string `json:"category" db:"category" gorm:"type:text;not null"`
	SkillName string `json:"skill_name" db:"skill_name" gorm:"type:text;not null"`
	SortOrder int    `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}

// Experience is one work-history entry. Period is free-form text, never
// parsed as dates.
type Experience struct {
	ID          int    `json:"id" db:"id" gorm:"primaryKey"`
	Title       string `json:"title" db:"title" gorm:"type:text"`
	Company     string `json:"company" db:"company" gorm:"type:text"`
	Period      string `json:"period" db:"period" gorm:"type:text"`
	Description string `json:"description" db:"description" gorm:"type:text"`
	SortOrder   int    `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}

func (Experience) TableName() string {
	return "experience"
}

// Education is one schooling entry.
type Education struct {
	ID         int     `json:"id" db:"id" gorm:"primaryKey"`
	School     string  `json:"school" db:"school" gorm:"type:text"`
	Degree     string  `json:"degree" db:"degree" gorm:"type:text"`
	Period     string  `json:"period" db:"period" gorm:"type:text"`
	Coursework *string `json:"coursework" db:"coursework" gorm:"type:text"`
}

func (Education) TableName() string {
	return "education"
}

// Interest is the singleton free-text interests record, addressed by id 1.
type Interest struct {
	ID      int    `json:"id" db:"id" gorm:"primaryKey"`
	Content string `json:"content" db:"content" gorm:"type:text"`
}

func (Interest) TableName() string {
	return "interests"
}
