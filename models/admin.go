package models

// Admin is the single curator account. PasswordHash holds a bcrypt hash and
// is never serialized.
type Admin struct {
	ID           int    `json:"id" db:"id" gorm:"primaryKey"`
	Username     string `json:"username" db:"username" gorm:"type:text;not null;unique"`
	PasswordHash string `json:"-" db:"password_hash" gorm:"type:text;not null"`
}

// TableName keeps the reference schema's singular table name.
func (Admin) TableName() string {
	return "admin"
}
