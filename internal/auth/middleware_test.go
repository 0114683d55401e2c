package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

type fakeUserStore struct {
	users map[string]*domain.User
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error { return nil }
func (s *fakeUserStore) Update(ctx context.Context, user *domain.User) error { return nil }
func (s *fakeUserStore) Delete(ctx context.Context, id string) error         { return nil }

func (s *fakeUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newProtectedApp(tm *TokenManager, store *fakeUserStore) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"message": domainErr.Message,
				"error":   domainErr.Code,
			})
		},
	})
	middleware := NewMiddleware(tm, store)
	app.Get("/protected", middleware.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"userId": principal.User.ID})
	})
	return app
}

func TestMiddlewareAllowsValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	store := &fakeUserStore{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "jane@example.com", Role: domain.RoleUser, IsActive: true},
	}}
	app := newProtectedApp(tm, store)

	token, _, err := tm.GenerateToken("user-1", "jane@example.com", domain.RoleUser)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := newProtectedApp(tm, &fakeUserStore{users: map[string]*domain.User{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := newProtectedApp(tm, &fakeUserStore{users: map[string]*domain.User{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsUnknownUser(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := newProtectedApp(tm, &fakeUserStore{users: map[string]*domain.User{}})

	token, _, err := tm.GenerateToken("ghost", "ghost@example.com", domain.RoleUser)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsDeactivatedAccount(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	store := &fakeUserStore{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "jane@example.com", Role: domain.RoleUser, IsActive: false},
	}}
	app := newProtectedApp(tm, store)

	token, _, err := tm.GenerateToken("user-1", "jane@example.com", domain.RoleUser)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
