package models

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsAdmin reports whether the role grants admin access.
// Anything other than an explicit admin promotion is treated as a plain user.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser, "":
		return false
	default:
		return false
	}
}

type User struct {
	Base
	Name  string `json:"name"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`
	Photo string `json:"photo,omitempty"`
	Role  Role   `json:"role,omitempty" gorm:"size:16;default:user"`
}
