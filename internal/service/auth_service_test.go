package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/config"
	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/identity"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// MockIdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password string, emailVerified bool) (*identity.Account, error) {
	args := m.Called(ctx, email, password, emailVerified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockIdentityProvider) Authenticate(ctx context.Context, email, password string) (*identity.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockIdentityProvider) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Account), args.Error(1)
}

func (m *MockIdentityProvider) DeleteAccount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockSignupIntentRepository
type MockSignupIntentRepository struct {
	mock.Mock
}

func (m *MockSignupIntentRepository) Create(ctx context.Context, intent *domain.SignupIntent) error {
	args := m.Called(ctx, intent)
	if intent.ID == "" {
		intent.ID = "intent-1"
	}
	return args.Error(0)
}

func (m *MockSignupIntentRepository) SetIdentity(ctx context.Context, id, identityID string) error {
	args := m.Called(ctx, id, identityID)
	return args.Error(0)
}

func (m *MockSignupIntentRepository) SetStatus(ctx context.Context, id string, status domain.IntentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockSignupIntentRepository) ListStalePending(ctx context.Context, olderThan time.Time) ([]domain.SignupIntent, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SignupIntent), args.Error(1)
}

func newTestAuthService(provider *MockIdentityProvider, users *MockUserRepository, intents *MockSignupIntentRepository) *AuthService {
	return NewAuthService(config.AuthConfig{JWTSecret: "test-secret", TokenTTLHrs: 1}, AuthDependencies{
		Identity:   provider,
		UserRepo:   users,
		IntentRepo: intents,
		Logger:     zap.NewNop(),
	})
}

func registerInput() RegisterInput {
	return RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		Company:   "Acme",
	}
}

func TestRegisterSuccess(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	account := &identity.Account{ID: "acct-1", Email: "jane@example.com", EmailVerified: true}
	provider.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, identity.ErrAccountNotFound)
	provider.On("CreateAccount", mock.Anything, "jane@example.com", "secret123", true).Return(account, nil)
	intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	intents.On("SetIdentity", mock.Anything, "intent-1", "acct-1").Return(nil)
	intents.On("SetStatus", mock.Anything, "intent-1", domain.IntentCompleted).Return(nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, token, err := svc.Register(context.Background(), registerInput())
	assert.NoError(t, err)
	assert.Equal(t, "acct-1", user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	claims, err := svc.TokenManager().ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "acct-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)

	intents.AssertCalled(t, "SetStatus", mock.Anything, "intent-1", domain.IntentCompleted)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	existing := &identity.Account{ID: "acct-1", Email: "jane@example.com"}
	provider.On("FindByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

	_, _, err := svc.Register(context.Background(), registerInput())
	var domainErr *apperrors.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 409, domainErr.HTTPStatus)
	assert.Equal(t, "Email already registered", domainErr.Message)

	provider.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterIdentityFailureMarksIntentFailed(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	provider.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, identity.ErrAccountNotFound)
	provider.On("CreateAccount", mock.Anything, "jane@example.com", "secret123", true).
		Return(nil, errors.New("upstream down"))
	intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	intents.On("SetStatus", mock.Anything, "intent-1", domain.IntentFailed).Return(nil)

	_, _, err := svc.Register(context.Background(), registerInput())
	var domainErr *apperrors.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Failed to create user account", domainErr.Message)

	intents.AssertCalled(t, "SetStatus", mock.Anything, "intent-1", domain.IntentFailed)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterProfileFailureCompensates(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	account := &identity.Account{ID: "acct-1", Email: "jane@example.com"}
	provider.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, identity.ErrAccountNotFound)
	provider.On("CreateAccount", mock.Anything, "jane@example.com", "secret123", true).Return(account, nil)
	provider.On("DeleteAccount", mock.Anything, "acct-1").Return(nil)
	intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	intents.On("SetIdentity", mock.Anything, "intent-1", "acct-1").Return(nil)
	intents.On("SetStatus", mock.Anything, "intent-1", domain.IntentFailed).Return(nil)
	users.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, _, err := svc.Register(context.Background(), registerInput())
	var domainErr *apperrors.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 500, domainErr.HTTPStatus)
	assert.Equal(t, "Failed to create user profile", domainErr.Message)

	provider.AssertCalled(t, "DeleteAccount", mock.Anything, "acct-1")
	intents.AssertCalled(t, "SetStatus", mock.Anything, "intent-1", domain.IntentFailed)
}

func TestRegisterCompensationDeleteFailureLeavesIntentPending(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	account := &identity.Account{ID: "acct-1", Email: "jane@example.com"}
	provider.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, identity.ErrAccountNotFound)
	provider.On("CreateAccount", mock.Anything, "jane@example.com", "secret123", true).Return(account, nil)
	provider.On("DeleteAccount", mock.Anything, "acct-1").Return(errors.New("delete failed"))
	intents.On("Create", mock.Anything, mock.Anything).Return(nil)
	intents.On("SetIdentity", mock.Anything, "intent-1", "acct-1").Return(nil)
	users.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, _, err := svc.Register(context.Background(), registerInput())
	var domainErr *apperrors.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 500, domainErr.HTTPStatus)

	// Intent must stay pending so the reconciler retries the delete.
	intents.AssertNotCalled(t, "SetStatus", mock.Anything, "intent-1", domain.IntentFailed)
}

func TestLoginSuccess(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	account := &identity.Account{ID: "acct-1", Email: "jane@example.com"}
	profile := &domain.User{ID: "acct-1", Email: "jane@example.com", Role: domain.RoleUser, IsActive: true}
	provider.On("Authenticate", mock.Anything, "jane@example.com", "secret123").Return(account, nil)
	users.On("GetByID", mock.Anything, "acct-1").Return(profile, nil)

	user, token, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "acct-1", user.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "acct-1", claims.UserID)
}

func TestLoginInvalidCredentialsSameMessage(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	provider.On("Authenticate", mock.Anything, "unknown@example.com", "whatever").
		Return(nil, identity.ErrInvalidCredentials)
	provider.On("Authenticate", mock.Anything, "jane@example.com", "wrongpass").
		Return(nil, identity.ErrInvalidCredentials)

	_, _, errUnknown := svc.Login(context.Background(), "unknown@example.com", "whatever")
	_, _, errWrongPass := svc.Login(context.Background(), "jane@example.com", "wrongpass")

	var unknownErr, wrongPassErr *apperrors.DomainError
	assert.ErrorAs(t, errUnknown, &unknownErr)
	assert.ErrorAs(t, errWrongPass, &wrongPassErr)
	assert.Equal(t, 401, unknownErr.HTTPStatus)
	assert.Equal(t, unknownErr.Message, wrongPassErr.Message)
}

func TestLoginMissingProfile(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	account := &identity.Account{ID: "acct-1", Email: "jane@example.com"}
	provider.On("Authenticate", mock.Anything, "jane@example.com", "secret123").Return(account, nil)
	users.On("GetByID", mock.Anything, "acct-1").Return(nil, pgx.ErrNoRows)

	_, _, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	var domainErr *apperrors.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 500, domainErr.HTTPStatus)
}

func TestReconcileSignupIntents(t *testing.T) {
	provider := new(MockIdentityProvider)
	users := new(MockUserRepository)
	intents := new(MockSignupIntentRepository)
	svc := newTestAuthService(provider, users, intents)

	orphanID := "acct-orphan"
	completedID := "acct-done"
	stale := []domain.SignupIntent{
		{ID: "intent-a", Email: "a@example.com", Status: domain.IntentPending},
		{ID: "intent-b", Email: "b@example.com", IdentityID: &completedID, Status: domain.IntentPending},
		{ID: "intent-c", Email: "c@example.com", IdentityID: &orphanID, Status: domain.IntentPending},
	}
	intents.On("ListStalePending", mock.Anything, mock.Anything).Return(stale, nil)
	intents.On("SetStatus", mock.Anything, "intent-a", domain.IntentFailed).Return(nil)
	intents.On("SetStatus", mock.Anything, "intent-b", domain.IntentCompleted).Return(nil)
	intents.On("SetStatus", mock.Anything, "intent-c", domain.IntentFailed).Return(nil)
	users.On("GetByID", mock.Anything, completedID).Return(&domain.User{ID: completedID}, nil)
	users.On("GetByID", mock.Anything, orphanID).Return(nil, pgx.ErrNoRows)
	provider.On("DeleteAccount", mock.Anything, orphanID).Return(nil)

	removed, err := svc.ReconcileSignupIntents(context.Background(), 10*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)

	intents.AssertCalled(t, "SetStatus", mock.Anything, "intent-b", domain.IntentCompleted)
	provider.AssertCalled(t, "DeleteAccount", mock.Anything, orphanID)
	provider.AssertNumberOfCalls(t, "DeleteAccount", 1)
}
