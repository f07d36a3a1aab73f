package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clockline/timetrack-api/internal/core/domain"
)

type stubVerifier struct {
	subject string
	err     error
}

func (v *stubVerifier) Verify(string) (string, error) {
	return v.subject, v.err
}

type stubUserStore struct {
	users map[string]*domain.User
}

func (r *stubUserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserStore) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserStore) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserStore) ListBelowRank(context.Context, domain.Role, int, int) ([]*domain.User, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *stubUserStore) Update(context.Context, *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (r *stubUserStore) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	users := &stubUserStore{users: map[string]*domain.User{
		"u1": {ID: "u1", Role: domain.RoleAdmin},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubVerifier{subject: "u1"}, users)
	handler := mw(func(c echo.Context) error {
		called = true
		actor, ok := c.Get(ActorKey).(domain.Actor)
		if !ok {
			t.Fatalf("actor not set")
		}
		if actor.ID != "u1" || actor.Role != domain.RoleAdmin {
			t.Fatalf("unexpected actor: %+v", actor)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{subject: "u1"}, &stubUserStore{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{subject: "u1"}, &stubUserStore{})
	handler := mw(func(c echo.Context) error { return nil })

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubVerifier{err: errors.New("boom")}, &stubUserStore{})
	handler := mw(func(c echo.Context) error { return nil })

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Token is valid but the subject no longer exists.
	mw := Auth(&stubVerifier{subject: "gone"}, &stubUserStore{users: map[string]*domain.User{}})
	handler := mw(func(c echo.Context) error { return nil })

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
