package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"TradeLite/internal/domain/models"

	"github.com/labstack/echo/v4"
)

type stubIdentity struct {
	user      models.User
	token     models.Token
	err       error
	loggedOut string
	resetFor  string
}

func (s *stubIdentity) Register(ctx context.Context, email, password string) (models.User, error) {
	return s.user, s.err
}

func (s *stubIdentity) Login(ctx context.Context, email, password string) (models.Token, error) {
	return s.token, s.err
}

func (s *stubIdentity) Logout(ctx context.Context, accessToken string) error {
	s.loggedOut = accessToken
	return s.err
}

func (s *stubIdentity) ResetPassword(ctx context.Context, email string) error {
	s.resetFor = email
	return s.err
}

func newAuthServer(t *testing.T, identity *stubIdentity) *echo.Echo {
	t.Helper()
	e := echo.New()
	NewAuthEchoHandler(testLogger(t), identity).RegisterRoutes(e)
	return e
}

func TestRegisterEndpoint(t *testing.T) {
	identity := &stubIdentity{user: models.User{ID: "u1", Email: "a@b.co"}}
	e := newAuthServer(t, identity)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.co","password":"secret123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	decodeEnvelope(t, rec, &user)
	if user.ID != "u1" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestRegisterValidation(t *testing.T) {
	e := newAuthServer(t, &stubIdentity{})

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"secret123"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.co","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	identity := &stubIdentity{token: models.Token{AccessToken: "tok", TokenType: "bearer"}}
	e := newAuthServer(t, identity)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.co","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var token models.Token
	decodeEnvelope(t, rec, &token)
	if token.AccessToken != "tok" {
		t.Fatalf("unexpected token %+v", token)
	}
}

func TestLoginRejected(t *testing.T) {
	e := newAuthServer(t, &stubIdentity{err: errors.New("bad credentials")})

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.co","password":"secret123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLogoutRequiresBearer(t *testing.T) {
	identity := &stubIdentity{}
	e := newAuthServer(t, identity)

	rec := doJSON(e, http.MethodPost, "/api/auth/logout", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req := doJSONWithAuth(e, "/api/auth/logout", "Bearer tok123")
	if req.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", req.Code)
	}
	if identity.loggedOut != "tok123" {
		t.Fatalf("expected token relayed, got %q", identity.loggedOut)
	}
}

func TestResetPasswordEndpoint(t *testing.T) {
	identity := &stubIdentity{}
	e := newAuthServer(t, identity)

	rec := doJSON(e, http.MethodPost, "/api/auth/reset-password", `{"email":"a@b.co"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if identity.resetFor != "a@b.co" {
		t.Fatalf("expected reset relayed, got %q", identity.resetFor)
	}
}
