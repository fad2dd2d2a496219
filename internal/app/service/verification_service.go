package service

import (
	"context"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	"github.com/trektrust/trektrust-backend/internal/app/query"
	"github.com/trektrust/trektrust-backend/internal/app/workflow"
	"github.com/trektrust/trektrust-backend/internal/store"
	"github.com/trektrust/trektrust-backend/pkg/logger"
)

// VerificationService runs the verification lifecycle over the persisted
// snapshot: load, apply a workflow command, save the result.
type VerificationService struct {
	store  store.Store
	engine *workflow.Engine
}

func NewVerificationService(st store.Store, engine *workflow.Engine) *VerificationService {
	return &VerificationService{store: st, engine: engine}
}

// Submit records a new completion claim in pending state.
func (s *VerificationService) Submit(ctx context.Context, in workflow.SubmitVerificationInput) (*model.Verification, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, v, err := s.engine.SubmitVerification(snapshot, in)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	logger.Info().
		Str("verification_id", v.ID).
		Str("user_id", v.UserID).
		Str("trek_id", v.TrekID).
		Str("company_id", v.CompanyID).
		Msg("Verification submitted")
	return v, nil
}

// Approve resolves a pending verification to approved.
func (s *VerificationService) Approve(ctx context.Context, id string) error {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next, err := s.engine.ApproveVerification(snapshot, id)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	logger.Info().Str("verification_id", id).Msg("Verification approved")
	return nil
}

// Reject resolves a pending verification to rejected with a reason.
func (s *VerificationService) Reject(ctx context.Context, id, reason string) error {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next, err := s.engine.RejectVerification(snapshot, id, reason)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	logger.Info().Str("verification_id", id).Str("reason", reason).Msg("Verification rejected")
	return nil
}

// Pending returns the moderation queue.
func (s *VerificationService) Pending(ctx context.Context) ([]model.Verification, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.PendingVerifications(snapshot), nil
}

// ForUser returns a user's submissions.
func (s *VerificationService) ForUser(ctx context.Context, userID string) ([]model.Verification, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.VerificationsForUser(snapshot, userID), nil
}

// ApprovalRate returns the platform-wide approval percentage.
func (s *VerificationService) ApprovalRate(ctx context.Context) (int, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	return query.ApprovalRate(snapshot), nil
}
