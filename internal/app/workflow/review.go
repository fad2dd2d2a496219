package workflow

import (
	"strings"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	apperrors "github.com/trektrust/trektrust-backend/internal/errors"
)

// ReviewInput drives SubmitOrUpdateReview. When ID matches an existing
// review the mutable fields are replaced in place; otherwise a new review is
// created against VerificationID.
type ReviewInput struct {
	ID             string
	UserID         string
	VerificationID string
	Rating         int
	Text           string
	Photos         []string
}

// SubmitOrUpdateReview creates or edits a review.
//
// Creation requires that the verification exists, is approved, and has no
// review yet; trek and company ids are copied from the verification and the
// display name from actor (or "Anonymous"). These invariants are enforced
// here rather than trusted to caller-side gating.
//
// Updates replace rating, text and photos, preserving identity, timestamps
// and the denormalized display name; only the owner may edit.
func (e *Engine) SubmitOrUpdateReview(s *model.Snapshot, in ReviewInput, actor *model.User) (*model.Snapshot, *model.Review, error) {
	if in.Rating < model.RatingMin || in.Rating > model.RatingMax {
		return s, nil, apperrors.ErrInvalidRating
	}
	if strings.TrimSpace(in.Text) == "" {
		return s, nil, apperrors.ErrReviewTextRequired
	}

	if in.ID != "" {
		if idx := findReview(s, in.ID); idx >= 0 {
			if s.Reviews[idx].UserID != in.UserID {
				return s, nil, apperrors.ErrNotReviewOwner
			}
			next := s.Clone()
			r := &next.Reviews[idx]
			r.Rating = in.Rating
			r.Text = in.Text
			r.Photos = append([]string(nil), in.Photos...)
			out := *r
			return next, &out, nil
		}
		// Unknown id falls through to creation, mirroring the original's
		// upsert behavior.
	}

	v := lookupVerification(s, in.VerificationID)
	if v == nil {
		return s, nil, apperrors.ErrVerificationNotFound
	}
	if v.Status != model.VerificationStatusApproved {
		return s, nil, apperrors.ErrVerificationNotApproved
	}
	for i := range s.Reviews {
		if s.Reviews[i].VerificationID == in.VerificationID {
			return s, nil, apperrors.ErrDuplicateReview
		}
	}

	userName := "Anonymous"
	if actor != nil && actor.Name != "" {
		userName = actor.Name
	}

	next := s.Clone()
	r := model.Review{
		ID:             e.newID("r"),
		UserID:         in.UserID,
		UserName:       userName,
		TrekID:         v.TrekID,
		CompanyID:      v.CompanyID,
		Rating:         in.Rating,
		Text:           in.Text,
		Photos:         append([]string(nil), in.Photos...),
		VerificationID: in.VerificationID,
		CreatedAt:      e.now().UTC(),
	}
	next.Reviews = append(next.Reviews, r)
	return next, &r, nil
}

// DeleteReview removes the review with the given id. Absent ids are a silent
// no-op; confirmation is the caller's concern, the command assumes a
// pre-confirmed request.
func (e *Engine) DeleteReview(s *model.Snapshot, id string) *model.Snapshot {
	idx := findReview(s, id)
	if idx < 0 {
		return s
	}
	next := s.Clone()
	next.Reviews = append(next.Reviews[:idx], next.Reviews[idx+1:]...)
	return next
}

func findReview(s *model.Snapshot, id string) int {
	for i := range s.Reviews {
		if s.Reviews[i].ID == id {
			return i
		}
	}
	return -1
}

func lookupVerification(s *model.Snapshot, id string) *model.Verification {
	if idx := findVerification(s, id); idx >= 0 {
		return &s.Verifications[idx]
	}
	return nil
}
