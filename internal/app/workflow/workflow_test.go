package workflow

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	apperrors "github.com/trektrust/trektrust-backend/internal/errors"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	seq := 0
	return NewEngine(
		WithClock(func() time.Time { return testNow }),
		WithIDSource(func(prefix string) string {
			seq++
			return fmt.Sprintf("%s-%d", prefix, seq)
		}),
	)
}

func newTestSnapshot() *model.Snapshot {
	return &model.Snapshot{
		SchemaVersion: model.SchemaVersion,
		Treks:         []model.Trek{{ID: "t1", Name: "Roopkund Trek"}},
		Companies:     []model.Company{{ID: "c1", Name: "IndiaHikes"}},
		Verifications: []model.Verification{},
		Reviews:       []model.Review{},
	}
}

func submitTestVerification(t *testing.T, e *Engine, s *model.Snapshot) (*model.Snapshot, *model.Verification) {
	t.Helper()
	next, v, err := e.SubmitVerification(s, SubmitVerificationInput{
		UserID:         "user1",
		TrekID:         "t1",
		CompanyID:      "c1",
		CertificateURL: "https://example.com/cert.jpg",
	})
	require.NoError(t, err)
	return next, v
}

func TestEngine_SubmitVerification(t *testing.T) {
	e := newTestEngine()
	s := newTestSnapshot()

	next, v, err := e.SubmitVerification(s, SubmitVerificationInput{
		UserID:         "user1",
		TrekID:         "t1",
		CompanyID:      "c1",
		CertificateURL: "https://example.com/cert.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "v-1", v.ID)
	assert.Equal(t, model.VerificationStatusPending, v.Status)
	assert.Equal(t, testNow, v.SubmittedAt)
	assert.Nil(t, v.ReviewedAt)
	assert.Len(t, next.Verifications, 1)

	// The argument snapshot is untouched.
	assert.Len(t, s.Verifications, 0)
}

func TestEngine_SubmitVerification_CertificateRequired(t *testing.T) {
	e := newTestEngine()
	s := newTestSnapshot()

	_, _, err := e.SubmitVerification(s, SubmitVerificationInput{
		UserID:    "user1",
		TrekID:    "t1",
		CompanyID: "c1",
	})
	assert.ErrorIs(t, err, apperrors.ErrCertificateRequired)
}

func TestEngine_SubmitVerification_DanglingReferencesAllowed(t *testing.T) {
	e := newTestEngine()
	s := newTestSnapshot()

	_, v, err := e.SubmitVerification(s, SubmitVerificationInput{
		UserID:         "user1",
		TrekID:         "no-such-trek",
		CompanyID:      "no-such-company",
		CertificateURL: "https://example.com/cert.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "no-such-trek", v.TrekID)
}

func TestEngine_ApproveVerification(t *testing.T) {
	e := newTestEngine()
	s, v := submitTestVerification(t, e, newTestSnapshot())

	next, err := e.ApproveVerification(s, v.ID)
	require.NoError(t, err)

	got := next.Verifications[0]
	assert.Equal(t, model.VerificationStatusApproved, got.Status)
	require.NotNil(t, got.ReviewedAt)
	assert.Equal(t, testNow, *got.ReviewedAt)

	// Prior snapshot still pending.
	assert.Equal(t, model.VerificationStatusPending, s.Verifications[0].Status)
}

func TestEngine_ApproveVerification_UnknownIDIsNoOp(t *testing.T) {
	e := newTestEngine()
	s, _ := submitTestVerification(t, e, newTestSnapshot())

	next, err := e.ApproveVerification(s, "v-missing")
	assert.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestEngine_RejectVerification(t *testing.T) {
	e := newTestEngine()
	s, v := submitTestVerification(t, e, newTestSnapshot())

	next, err := e.RejectVerification(s, v.ID, "blurry certificate")
	require.NoError(t, err)

	got := next.Verifications[0]
	assert.Equal(t, model.VerificationStatusRejected, got.Status)
	assert.Equal(t, "blurry certificate", got.RejectionReason)
	require.NotNil(t, got.ReviewedAt)
}

func TestEngine_RejectVerification_ReasonRequired(t *testing.T) {
	e := newTestEngine()
	s, v := submitTestVerification(t, e, newTestSnapshot())

	_, err := e.RejectVerification(s, v.ID, "  ")
	assert.ErrorIs(t, err, apperrors.ErrReasonRequired)
}

func TestEngine_ResolutionIsTerminal(t *testing.T) {
	e := newTestEngine()
	s, v := submitTestVerification(t, e, newTestSnapshot())

	approved, err := e.ApproveVerification(s, v.ID)
	require.NoError(t, err)

	// Reject after approve is refused and the record keeps its first state.
	next, err := e.RejectVerification(approved, v.ID, "changed my mind")
	assert.ErrorIs(t, err, apperrors.ErrVerificationResolved)
	assert.Equal(t, model.VerificationStatusApproved, next.Verifications[0].Status)

	// Re-approve is refused too: terminal means terminal.
	_, err = e.ApproveVerification(approved, v.ID)
	assert.ErrorIs(t, err, apperrors.ErrVerificationResolved)

	rejected, err := e.RejectVerification(s, v.ID, "blurry certificate")
	require.NoError(t, err)
	_, err = e.ApproveVerification(rejected, v.ID)
	assert.ErrorIs(t, err, apperrors.ErrVerificationResolved)
	assert.Equal(t, model.VerificationStatusRejected, rejected.Verifications[0].Status)
}

func approvedFixture(t *testing.T, e *Engine) (*model.Snapshot, *model.Verification) {
	t.Helper()
	s, v := submitTestVerification(t, e, newTestSnapshot())
	s, err := e.ApproveVerification(s, v.ID)
	require.NoError(t, err)
	return s, &s.Verifications[0]
}

func TestEngine_SubmitReview(t *testing.T) {
	e := newTestEngine()
	s, v := approvedFixture(t, e)
	actor := &model.User{ID: "user1", Name: "Rahul Sharma"}

	next, r, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         5,
		Text:           "Great trek",
		Photos:         []string{"https://example.com/p1.jpg"},
	}, actor)
	require.NoError(t, err)

	assert.Equal(t, "t1", r.TrekID)
	assert.Equal(t, "c1", r.CompanyID)
	assert.Equal(t, v.ID, r.VerificationID)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "Rahul Sharma", r.UserName)
	assert.Equal(t, testNow, r.CreatedAt)
	assert.Len(t, next.Reviews, 1)
	assert.Len(t, s.Reviews, 0)
}

func TestEngine_SubmitReview_AnonymousWithoutActor(t *testing.T) {
	e := newTestEngine()
	s, v := approvedFixture(t, e)

	_, r, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         4,
		Text:           "Solid organization",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", r.UserName)
}

func TestEngine_SubmitReview_RequiresApprovedVerification(t *testing.T) {
	e := newTestEngine()
	s, v := submitTestVerification(t, e, newTestSnapshot())

	_, _, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         5,
		Text:           "too early",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrVerificationNotApproved)

	rejected, err := e.RejectVerification(s, v.ID, "blurry certificate")
	require.NoError(t, err)
	_, _, err = e.SubmitOrUpdateReview(rejected, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         5,
		Text:           "still trying",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrVerificationNotApproved)
}

func TestEngine_SubmitReview_UnknownVerification(t *testing.T) {
	e := newTestEngine()

	_, _, err := e.SubmitOrUpdateReview(newTestSnapshot(), ReviewInput{
		UserID:         "user1",
		VerificationID: "v-missing",
		Rating:         5,
		Text:           "who knows",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrVerificationNotFound)
}

func TestEngine_SubmitReview_DuplicateRefused(t *testing.T) {
	e := newTestEngine()
	s, v := approvedFixture(t, e)

	s, _, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         5,
		Text:           "first",
	}, nil)
	require.NoError(t, err)

	_, _, err = e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         3,
		Text:           "second",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateReview)
}

func TestEngine_SubmitReview_Validation(t *testing.T) {
	e := newTestEngine()
	s, v := approvedFixture(t, e)

	_, _, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID: "user1", VerificationID: v.ID, Rating: 0, Text: "x",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRating)

	_, _, err = e.SubmitOrUpdateReview(s, ReviewInput{
		UserID: "user1", VerificationID: v.ID, Rating: 6, Text: "x",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRating)

	_, _, err = e.SubmitOrUpdateReview(s, ReviewInput{
		UserID: "user1", VerificationID: v.ID, Rating: 3, Text: "   ",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrReviewTextRequired)
}

func TestEngine_UpdateReview(t *testing.T) {
	e := newTestEngine()
	s, v := approvedFixture(t, e)
	actor := &model.User{ID: "user1", Name: "Rahul Sharma"}

	s, created, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         5,
		Text:           "Great trek",
	}, actor)
	require.NoError(t, err)

	edit := ReviewInput{
		ID:     created.ID,
		UserID: "user1",
		Rating: 3,
		Text:   "Downgrading after reflection",
		Photos: []string{"https://example.com/new.jpg"},
	}
	next, updated, err := e.SubmitOrUpdateReview(s, edit, actor)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.UserName, updated.UserName)
	assert.Equal(t, 3, updated.Rating)
	assert.Len(t, next.Reviews, 1)

	// Repeating the identical edit changes nothing and adds nothing.
	again, _, err := e.SubmitOrUpdateReview(next, edit, actor)
	require.NoError(t, err)
	assert.Equal(t, next.Reviews, again.Reviews)
}

func TestEngine_UpdateReview_OwnerOnly(t *testing.T) {
	e := newTestEngine()
	s, v := approvedFixture(t, e)

	s, created, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         5,
		Text:           "Great trek",
	}, nil)
	require.NoError(t, err)

	_, _, err = e.SubmitOrUpdateReview(s, ReviewInput{
		ID:     created.ID,
		UserID: "someone-else",
		Rating: 1,
		Text:   "sabotage",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotReviewOwner)
}

func TestEngine_DeleteReview(t *testing.T) {
	e := newTestEngine()
	s, v := approvedFixture(t, e)

	s, created, err := e.SubmitOrUpdateReview(s, ReviewInput{
		UserID:         "user1",
		VerificationID: v.ID,
		Rating:         5,
		Text:           "Great trek",
	}, nil)
	require.NoError(t, err)

	next := e.DeleteReview(s, created.ID)
	assert.Len(t, next.Reviews, 0)
	assert.Len(t, s.Reviews, 1)

	// Pending queue untouched by review deletion; absent id is a no-op.
	assert.Equal(t, s.Verifications, next.Verifications)
	assert.Equal(t, next, e.DeleteReview(next, "r-missing"))
}
