package service

import (
	"context"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	"github.com/trektrust/trektrust-backend/internal/app/query"
	"github.com/trektrust/trektrust-backend/internal/app/workflow"
	"github.com/trektrust/trektrust-backend/internal/store"
	"github.com/trektrust/trektrust-backend/pkg/logger"
)

// ReviewService runs the review lifecycle and the moderation reads.
type ReviewService struct {
	store  store.Store
	engine *workflow.Engine
}

func NewReviewService(st store.Store, engine *workflow.Engine) *ReviewService {
	return &ReviewService{store: st, engine: engine}
}

// SubmitOrUpdate publishes a review against an approved verification, or
// edits an existing one in place. The snapshot's current user supplies the
// denormalized display name on creation.
func (s *ReviewService) SubmitOrUpdate(ctx context.Context, in workflow.ReviewInput) (*model.Review, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, review, err := s.engine.SubmitOrUpdateReview(snapshot, in, snapshot.CurrentUser)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return nil, err
	}
	logger.Info().
		Str("review_id", review.ID).
		Str("verification_id", review.VerificationID).
		Int("rating", review.Rating).
		Msg("Review saved")
	return review, nil
}

// Delete removes a review. The request is assumed pre-confirmed; prompting
// belongs to the caller.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next := s.engine.DeleteReview(snapshot, id)
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	logger.Info().Str("review_id", id).Msg("Review deleted")
	return nil
}

// ForUser returns a user's reviews.
func (s *ReviewService) ForUser(ctx context.Context, userID string) ([]model.Review, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.ReviewsForUser(snapshot, userID), nil
}

// Search filters reviews for the moderation table.
func (s *ReviewService) Search(ctx context.Context, f query.ReviewFilter) ([]model.Review, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.ReviewsMatching(snapshot, f), nil
}

// CompanyStats aggregates ratings for one company.
func (s *ReviewService) CompanyStats(ctx context.Context, companyID string) (query.RatingStats, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return query.RatingStats{}, err
	}
	return query.CompanyRatingStats(snapshot, companyID), nil
}

// TrekRanking ranks companies by average rating on one trek.
func (s *ReviewService) TrekRanking(ctx context.Context, trekID string) ([]query.CompanyRanking, error) {
	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.TrekCompanyRanking(snapshot, trekID), nil
}
