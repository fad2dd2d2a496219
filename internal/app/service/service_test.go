package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	"github.com/trektrust/trektrust-backend/internal/app/query"
	"github.com/trektrust/trektrust-backend/internal/app/workflow"
	apperrors "github.com/trektrust/trektrust-backend/internal/errors"
	"github.com/trektrust/trektrust-backend/internal/store"
)

func setupServiceTest(t *testing.T) (*SessionService, *VerificationService, *ReviewService, store.Store) {
	t.Helper()
	st := store.NewResilient(store.NewMemoryStore())
	t.Cleanup(func() { st.Close() })

	seq := 0
	engine := workflow.NewEngine(
		workflow.WithClock(func() time.Time {
			return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		}),
		workflow.WithIDSource(func(prefix string) string {
			seq++
			return fmt.Sprintf("%s-%d", prefix, seq)
		}),
	)

	return NewSessionService(st), NewVerificationService(st, engine), NewReviewService(st, engine), st
}

func TestSessionService_LoginSwitchesRoles(t *testing.T) {
	sessions, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	user, err := sessions.Login(ctx, model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", user.Name)
	assert.False(t, user.IsAdmin())

	admin, err := sessions.Login(ctx, model.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	current, err := sessions.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, current.ID)

	require.NoError(t, sessions.Logout(ctx))
	current, err = sessions.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSessionService_LoginUnknownRole(t *testing.T) {
	sessions, _, _, _ := setupServiceTest(t)

	_, err := sessions.Login(context.Background(), model.Role("MODERATOR"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

// Full lifecycle: submit -> approve -> review -> moderate.
func TestServices_VerificationToReviewFlow(t *testing.T) {
	sessions, verifications, reviews, _ := setupServiceTest(t)
	ctx := context.Background()

	user, err := sessions.Login(ctx, model.RoleUser)
	require.NoError(t, err)

	v, err := verifications.Submit(ctx, workflow.SubmitVerificationInput{
		UserID:         user.ID,
		TrekID:         "t1",
		CompanyID:      "c1",
		CertificateURL: "https://example.com/cert.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, model.VerificationStatusPending, v.Status)

	pending, err := verifications.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, verifications.Approve(ctx, v.ID))

	mine, err := verifications.ForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, model.VerificationStatusApproved, mine[0].Status)
	assert.NotNil(t, mine[0].ReviewedAt)

	r, err := reviews.SubmitOrUpdate(ctx, workflow.ReviewInput{
		UserID:         user.ID,
		VerificationID: v.ID,
		Rating:         5,
		Text:           "Great trek",
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", r.TrekID)
	assert.Equal(t, "c1", r.CompanyID)
	assert.Equal(t, v.ID, r.VerificationID)
	assert.Equal(t, "Rahul Sharma", r.UserName)

	rate, err := verifications.ApprovalRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, rate)

	stats, err := reviews.CompanyStats(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, query.RatingStats{Average: 5, Count: 1}, stats)

	ranking, err := reviews.TrekRanking(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "IndiaHikes", ranking[0].Company.Name)
}

func TestServices_RejectedVerificationRefusesReview(t *testing.T) {
	sessions, verifications, reviews, _ := setupServiceTest(t)
	ctx := context.Background()

	user, err := sessions.Login(ctx, model.RoleUser)
	require.NoError(t, err)

	v, err := verifications.Submit(ctx, workflow.SubmitVerificationInput{
		UserID:         user.ID,
		TrekID:         "t2",
		CompanyID:      "c2",
		CertificateURL: "https://example.com/cert.jpg",
	})
	require.NoError(t, err)

	require.NoError(t, verifications.Reject(ctx, v.ID, "blurry certificate"))

	mine, err := verifications.ForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, model.VerificationStatusRejected, mine[0].Status)
	assert.Equal(t, "blurry certificate", mine[0].RejectionReason)
	assert.NotNil(t, mine[0].ReviewedAt)

	_, err = reviews.SubmitOrUpdate(ctx, workflow.ReviewInput{
		UserID:         user.ID,
		VerificationID: v.ID,
		Rating:         5,
		Text:           "should not pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrVerificationNotApproved)

	// Terminal: the admin cannot flip a resolved verification.
	assert.ErrorIs(t, verifications.Approve(ctx, v.ID), apperrors.ErrVerificationResolved)
}

func TestReviewService_DeleteAndSearch(t *testing.T) {
	sessions, verifications, reviews, _ := setupServiceTest(t)
	ctx := context.Background()

	user, err := sessions.Login(ctx, model.RoleUser)
	require.NoError(t, err)

	v, err := verifications.Submit(ctx, workflow.SubmitVerificationInput{
		UserID:         user.ID,
		TrekID:         "t1",
		CompanyID:      "c1",
		CertificateURL: "https://example.com/cert.jpg",
	})
	require.NoError(t, err)
	require.NoError(t, verifications.Approve(ctx, v.ID))

	r, err := reviews.SubmitOrUpdate(ctx, workflow.ReviewInput{
		UserID:         user.ID,
		VerificationID: v.ID,
		Rating:         4,
		Text:           "Lovely meadows, tough climb",
	})
	require.NoError(t, err)

	found, err := reviews.Search(ctx, query.ReviewFilter{Text: "meadows"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, r.ID, found[0].ID)

	require.NoError(t, reviews.Delete(ctx, r.ID))

	mine, err := reviews.ForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	// Deleting a review leaves verifications alone.
	pending, err := verifications.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	mineV, err := verifications.ForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mineV, 1)
}
