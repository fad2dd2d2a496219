package service

import (
	"context"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	apperrors "github.com/trektrust/trektrust-backend/internal/errors"
	"github.com/trektrust/trektrust-backend/internal/store"
	"github.com/trektrust/trektrust-backend/pkg/logger"
)

// SessionService implements the simulated role-switch login: picking a role
// installs the matching seeded identity as the current user. There are no
// credentials in this system's scope.
type SessionService struct {
	store store.Store
}

func NewSessionService(st store.Store) *SessionService {
	return &SessionService{store: st}
}

// Login sets the current user to the seeded identity for the role.
func (s *SessionService) Login(ctx context.Context, role model.Role) (*model.User, error) {
	var user model.User
	switch role {
	case model.RoleAdmin:
		user = store.SeedAdmin()
	case model.RoleUser:
		user = store.SeedHiker()
	default:
		return nil, apperrors.ErrInvalidRole.WithMessage("unknown role %q", role)
	}

	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	next := snapshot.Clone()
	next.CurrentUser = &user
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}

	logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &user, nil
}

// Logout clears the current user.
func (s *SessionService) Logout(ctx context.Context) error {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next := snapshot.Clone()
	next.CurrentUser = nil
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	logger.Info().Msg("User logged out")
	return nil
}

// CurrentUser returns the acting user, or nil when nobody is logged in.
func (s *SessionService) CurrentUser(ctx context.Context) (*model.User, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.CurrentUser, nil
}
