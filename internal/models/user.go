package models

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer. IsActive is toggled by the
// dashboard block/unblock actions; no route enforces it.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `json:"-"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Role         string  `gorm:"default:user" json:"role"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`
	Orders       []Order `json:"orders,omitempty"`
}
