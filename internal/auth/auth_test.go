package auth

import (
	"errors"
	"testing"

	"civisafe/models"
)

func TestValidateCredentials(t *testing.T) {
	cases := []struct {
		email, password string
		ok              bool
		role            models.Role
	}{
		{"user@example.com", "user123", true, models.RoleUser},
		{"admin@example.com", "admin123", true, models.RoleAdmin},
		{"admin@example.com", "user123", false, ""},
		{"user@example.com", "", false, ""},
		{"USER@example.com", "user123", false, ""},
		{"nobody@example.com", "user123", false, ""},
		{"", "", false, ""},
	}
	for _, c := range cases {
		sess, ok := ValidateCredentials(c.email, c.password)
		if ok != c.ok {
			t.Fatalf("%s/%s: ok=%v want %v", c.email, c.password, ok, c.ok)
		}
		if !ok {
			if sess != nil {
				t.Fatalf("%s: expected nil session on mismatch", c.email)
			}
			continue
		}
		if sess.Email != c.email || sess.Role != c.role {
			t.Fatalf("unexpected session %+v", sess)
		}
	}
}

func TestRequire(t *testing.T) {
	user := &models.Session{Email: "user@example.com", Role: models.RoleUser}
	admin := &models.Session{Email: "admin@example.com", Role: models.RoleAdmin}

	if err := Require(nil, CapNone); err != nil {
		t.Fatalf("CapNone should always pass: %v", err)
	}
	if err := Require(nil, CapUser); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
	if err := Require(&models.Session{Email: "x", Role: "root"}, CapUser); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("invalid role must count as no session, got %v", err)
	}
	if err := Require(user, CapUser); err != nil {
		t.Fatalf("user/CapUser: %v", err)
	}
	if err := Require(user, CapAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
	if err := Require(admin, CapUser); !errors.Is(err, ErrForbidden) {
		t.Fatalf("admin is not a user, got %v", err)
	}
	if err := Require(admin, CapAdmin); err != nil {
		t.Fatalf("admin/CapAdmin: %v", err)
	}
}

func TestRequireAny(t *testing.T) {
	user := &models.Session{Email: "user@example.com", Role: models.RoleUser}
	admin := &models.Session{Email: "admin@example.com", Role: models.RoleAdmin}
	for _, s := range []*models.Session{user, admin} {
		if err := RequireAny(s, CapUser, CapAdmin); err != nil {
			t.Fatalf("%s: %v", s.Role, err)
		}
	}
	if err := RequireAny(nil, CapUser, CapAdmin); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
	if err := RequireAny(user, CapAdmin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}
