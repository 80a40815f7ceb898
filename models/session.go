package models

// Role is the capability level of the signed-in identity.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is user or admin.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Session is the currently authenticated identity.
// Only one session exists at a time and it never expires.
type Session struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
