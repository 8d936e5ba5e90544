package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sample-app/internal/model"
	"sample-app/internal/store"

	"go.uber.org/zap"
)

// SignupInput is the only way to create a user from untrusted input; it has
// no admin field on purpose.
type SignupInput struct {
	Name                 string `json:"name" validate:"notblank,max=50"`
	Email                string `json:"email" validate:"notblank,max=255,user_email"`
	Password             string `json:"password" validate:"notblank,min=6,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

// Identity holds user records and their constraints.
type Identity struct {
	users    UserRepository
	verifier CredentialVerifier
	log      *zap.Logger
}

func NewIdentity(users UserRepository, verifier CredentialVerifier, log *zap.Logger) *Identity {
	if verifier == nil {
		verifier = BcryptVerifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Identity{users: users, verifier: verifier, log: log.Named("identity")}
}

// NormalizeEmail 去除空白並轉小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Identity) Create(ctx context.Context, in SignupInput) (*model.User, error) {
	return s.create(ctx, in, false)
}

// CreateAdmin is for trusted callers such as the sample data loader.
func (s *Identity) CreateAdmin(ctx context.Context, in SignupInput) (*model.User, error) {
	return s.create(ctx, in, true)
}

func (s *Identity) create(ctx context.Context, in SignupInput, admin bool) (*model.User, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := checkStruct(in); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, validationFailed("email", "taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("Identity.Create: %w", err)
	}

	digest, err := s.verifier.Digest(in.Password)
	if err != nil {
		return nil, fmt.Errorf("Identity.Create: digest: %w", err)
	}

	u, err := s.users.CreateUser(ctx, &model.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordDigest: digest,
		IsAdmin:        admin,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, validationFailed("email", "taken")
		}
		return nil, fmt.Errorf("Identity.Create: %w", err)
	}
	s.log.Info("user created", zap.Int("user_id", u.ID), zap.Bool("admin", u.IsAdmin))
	return u, nil
}

// Authenticate returns (nil, nil) for an unknown email or a wrong secret.
func (s *Identity) Authenticate(ctx context.Context, email, secret string) (*model.User, error) {
	u, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("Identity.Authenticate: %w", err)
	}
	if !s.verifier.Verify(u.PasswordDigest, secret) {
		s.log.Debug("authentication rejected", zap.Int("user_id", u.ID))
		return nil, nil
	}
	return u, nil
}

func (s *Identity) Get(ctx context.Context, userID int) (*model.User, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("Identity.Get: %w", err)
	}
	return u, nil
}

func (s *Identity) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("Identity.GetByEmail: %w", err)
	}
	return u, nil
}

func (s *Identity) List(ctx context.Context, page model.Page) ([]model.User, error) {
	users, err := s.users.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("Identity.List: %w", err)
	}
	return users, nil
}

// Lookup resolves ids to users in the given order, skipping unknown ids.
func (s *Identity) Lookup(ctx context.Context, ids []int) ([]model.User, error) {
	users, err := s.users.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("Identity.Lookup: %w", err)
	}
	return users, nil
}

// Destroy removes the user together with its microposts and edges.
func (s *Identity) Destroy(ctx context.Context, userID int) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("Identity.Destroy: %w", err)
	}
	s.log.Info("user destroyed", zap.Int("user_id", userID))
	return nil
}
