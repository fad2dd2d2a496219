package model

import "time"

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"  // awaiting admin review
	VerificationStatusApproved VerificationStatus = "approved" // certificate accepted
	VerificationStatusRejected VerificationStatus = "rejected" // certificate refused
)

// Verification is a user's claim to have completed a trek with a company,
// evidenced by a certificate reference. It is created pending and resolves
// exactly once to approved or rejected; resolution is terminal.
//
// Invariants: RejectionReason is set iff status is rejected; ReviewedAt is
// set iff the verification is resolved.
type Verification struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	TrekID          string             `json:"trekId"`
	CompanyID       string             `json:"companyId"`
	CertificateURL  string             `json:"certificateUrl"`
	Status          VerificationStatus `json:"status"`
	RejectionReason string             `json:"rejectionReason,omitempty"`
	SubmittedAt     time.Time          `json:"submittedAt"`
	ReviewedAt      *time.Time         `json:"reviewedAt,omitempty"`
}

// Resolved reports whether the verification has left the pending state.
func (v *Verification) Resolved() bool {
	return v.Status != VerificationStatusPending
}
