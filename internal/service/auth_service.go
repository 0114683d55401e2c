package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/auth"
	"github.com/leadsfynder/leadsfynder-api/internal/config"
	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/identity"
	"github.com/leadsfynder/leadsfynder-api/internal/observability"
	"github.com/leadsfynder/leadsfynder-api/internal/repository"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// AuthService coordinates registration and login flows. Registration is a
// two-step create (identity, then profile) protected by a best-effort
// compensating delete and a persisted intent the reconciler can sweep.
type AuthService struct {
	identity identity.Provider
	users    repository.UserRepository
	intents  repository.SignupIntentRepository
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// AuthDependencies bundles requirements for the auth service.
type AuthDependencies struct {
	Identity   identity.Provider
	UserRepo   repository.UserRepository
	IntentRepo repository.SignupIntentRepository
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		identity: deps.Identity,
		users:    deps.UserRepo,
		intents:  deps.IntentRepo,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		logger:   deps.Logger,
	}
}

// RegisterInput carries registration fields. Company and phone are optional.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Company   string
	Phone     string
}

// Register creates an identity account and its profile, returning the
// profile and a signed access token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if _, err := s.identity.FindByEmail(ctx, input.Email); err == nil {
		return nil, "", apperrors.NewConflict("Email already registered")
	} else if !errors.Is(err, identity.ErrAccountNotFound) {
		return nil, "", apperrors.NewInternalError("", err)
	}

	intent := &domain.SignupIntent{Email: input.Email, Status: domain.IntentPending}
	if err := s.intents.Create(ctx, intent); err != nil {
		return nil, "", apperrors.NewInternalError("", err)
	}

	account, err := s.identity.CreateAccount(ctx, input.Email, input.Password, true)
	if err != nil {
		s.markIntent(ctx, intent.ID, domain.IntentFailed)
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, "", apperrors.NewConflict("Email already registered")
		}
		return nil, "", apperrors.NewBadUpstream("Failed to create user account", err)
	}
	if err := s.intents.SetIdentity(ctx, intent.ID, account.ID); err != nil {
		s.logger.Warn("failed to record identity on signup intent",
			zap.String("intent_id", intent.ID), zap.Error(err))
	}

	user := &domain.User{
		ID:              account.ID,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Company:         input.Company,
		Phone:           input.Phone,
		Role:            domain.RoleUser,
		IsActive:        true,
		IsEmailVerified: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.compensate(ctx, intent.ID, account.ID, err)
		return nil, "", apperrors.NewInternalError("Failed to create user profile", err)
	}

	s.markIntent(ctx, intent.ID, domain.IntentCompleted)

	token, _, err := s.tokenMgr.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperrors.NewInternalError("", err)
	}
	return user, token, nil
}

// Login authenticates credentials against the identity provider and loads
// the profile. Unknown email and wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	account, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, "", apperrors.NewUnauthorized("Invalid email or password")
		}
		return nil, "", apperrors.NewInternalError("", err)
	}

	user, err := s.users.GetByID(ctx, account.ID)
	if err != nil {
		// An identity without a profile is a consistency bug, not a
		// caller mistake.
		return nil, "", apperrors.NewInternalError("Failed to retrieve user profile", err)
	}

	token, _, err := s.tokenMgr.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperrors.NewInternalError("", err)
	}
	return user, token, nil
}

// ReconcileSignupIntents sweeps stale pending intents: identities whose
// profile never appeared are deleted, intents with a profile are marked
// completed. Returns the number of identities removed.
func (s *AuthService) ReconcileSignupIntents(ctx context.Context, olderThan time.Duration) (int, error) {
	stale, err := s.intents.ListStalePending(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, intent := range stale {
		if intent.IdentityID == nil {
			s.markIntent(ctx, intent.ID, domain.IntentFailed)
			continue
		}

		if _, err := s.users.GetByID(ctx, *intent.IdentityID); err == nil {
			s.markIntent(ctx, intent.ID, domain.IntentCompleted)
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("reconciler profile lookup failed",
				zap.String("intent_id", intent.ID), zap.Error(err))
			continue
		}

		if err := s.identity.DeleteAccount(ctx, *intent.IdentityID); err != nil &&
			!errors.Is(err, identity.ErrAccountNotFound) {
			s.logger.Warn("reconciler identity delete failed",
				zap.String("identity_id", *intent.IdentityID), zap.Error(err))
			continue
		}
		removed++
		s.markIntent(ctx, intent.ID, domain.IntentFailed)
	}
	return removed, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// compensate deletes the identity created before a failed profile insert.
// Deletion failure is logged only; the intent stays pending so the
// reconciler retries later.
func (s *AuthService) compensate(ctx context.Context, intentID, identityID string, cause error) {
	s.logger.Error("profile creation failed; removing identity",
		zap.String("identity_id", identityID), zap.Error(cause))
	observability.RecordSignupCompensation()

	if err := s.identity.DeleteAccount(ctx, identityID); err != nil {
		s.logger.Error("compensating identity delete failed; intent left for reconciler",
			zap.String("identity_id", identityID), zap.Error(err))
		return
	}
	s.markIntent(ctx, intentID, domain.IntentFailed)
}

func (s *AuthService) markIntent(ctx context.Context, id string, status domain.IntentStatus) {
	if err := s.intents.SetStatus(ctx, id, status); err != nil {
		s.logger.Warn("failed to update signup intent",
			zap.String("intent_id", id), zap.String("status", string(status)), zap.Error(err))
	}
}
