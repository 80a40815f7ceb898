package auth

import (
	"errors"
	"fmt"

	"civisafe/models"
)

var (
	ErrUnauthenticated = errors.New("auth: no active session")
	ErrForbidden       = errors.New("auth: role not permitted")
)

// Capability is the role an operation needs.
type Capability int

const (
	CapNone Capability = iota
	CapUser
	CapAdmin
)

func (c Capability) String() string {
	switch c {
	case CapNone:
		return "none"
	case CapUser:
		return "user"
	case CapAdmin:
		return "admin"
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// Require checks that sess may perform an operation needing c.
// CapNone always passes. Other capabilities need a session whose role matches exactly.
func Require(sess *models.Session, c Capability) error {
	if c == CapNone {
		return nil
	}
	if sess == nil || !sess.Role.Valid() {
		return ErrUnauthenticated
	}
	var want models.Role
	switch c {
	case CapUser:
		want = models.RoleUser
	case CapAdmin:
		want = models.RoleAdmin
	default:
		return fmt.Errorf("%w: unknown %s", ErrForbidden, c)
	}
	if sess.Role != want {
		return fmt.Errorf("%w: only %s can perform this action", ErrForbidden, want)
	}
	return nil
}

// RequireAny passes when sess satisfies at least one of caps.
func RequireAny(sess *models.Session, caps ...Capability) error {
	err := ErrForbidden
	for _, c := range caps {
		e := Require(sess, c)
		if e == nil {
			return nil
		}
		if errors.Is(e, ErrUnauthenticated) {
			return e
		}
		err = e
	}
	return err
}
