package models

// Admin is a dashboard account. Admins are seeded at startup and never
// created through a public route.
type Admin struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
}
