package models

// UserRole distinguishes the two schedulable user kinds.
type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleTeacher UserRole = "TEACHER"
)

// String returns the display label for the role.
func (r UserRole) String() string {
	switch r {
	case RoleTeacher:
		return "Teacher"
	default:
		return "Student"
	}
}

// User represents a schedulable person at the institution.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ClassName string   `json:"class_name"`
	Initials  string   `json:"initials"`
	Role      UserRole `json:"role"`
	ImageURL  string   `json:"image_url,omitempty"`
}
