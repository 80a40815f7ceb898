// Package auth validates the demo credentials and gates operations by role.
package auth

import "civisafe/models"

type credential struct {
	password string
	role     models.Role
}

// credentials is the fixed identity table. There is no registration.
var credentials = map[string]credential{
	"user@example.com":  {password: "user123", role: models.RoleUser},
	"admin@example.com": {password: "admin123", role: models.RoleAdmin},
}

// ValidateCredentials returns the session for an exact email/password match.
// A mismatch reports ok=false; it is not an error.
func ValidateCredentials(email, password string) (*models.Session, bool) {
	c, found := credentials[email]
	if !found || c.password != password {
		return nil, false
	}
	return &models.Session{Email: email, Role: c.role}, true
}
