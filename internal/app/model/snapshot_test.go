package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Clone(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	reviewed := now.Add(time.Hour)
	original := &Snapshot{
		SchemaVersion: SchemaVersion,
		CurrentUser:   &User{ID: "user1", Name: "Rahul Sharma", Role: RoleUser},
		Treks:         []Trek{{ID: "t1", Name: "Roopkund Trek"}},
		Companies:     []Company{{ID: "c1", Name: "IndiaHikes"}},
		Verifications: []Verification{
			{ID: "v1", UserID: "user1", Status: VerificationStatusApproved, SubmittedAt: now, ReviewedAt: &reviewed},
		},
		Reviews: []Review{
			{ID: "r1", UserID: "user1", Rating: 5, Photos: []string{"p1"}, VerificationID: "v1"},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutations on the clone never reach the original.
	clone.CurrentUser.Name = "Someone Else"
	clone.Verifications[0].Status = VerificationStatusRejected
	*clone.Verifications[0].ReviewedAt = now.Add(48 * time.Hour)
	clone.Reviews[0].Photos[0] = "swapped"
	clone.Reviews = append(clone.Reviews, Review{ID: "r2"})

	assert.Equal(t, "Rahul Sharma", original.CurrentUser.Name)
	assert.Equal(t, VerificationStatusApproved, original.Verifications[0].Status)
	assert.Equal(t, reviewed, *original.Verifications[0].ReviewedAt)
	assert.Equal(t, "p1", original.Reviews[0].Photos[0])
	assert.Len(t, original.Reviews, 1)
}

func TestSnapshot_CloneNil(t *testing.T) {
	var s *Snapshot
	assert.Nil(t, s.Clone())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	var u *User
	assert.False(t, u.IsAdmin())
}

func TestVerification_Resolved(t *testing.T) {
	assert.False(t, (&Verification{Status: VerificationStatusPending}).Resolved())
	assert.True(t, (&Verification{Status: VerificationStatusApproved}).Resolved())
	assert.True(t, (&Verification{Status: VerificationStatusRejected}).Resolved())
}
