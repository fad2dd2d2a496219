package workflow

import (
	"strings"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	apperrors "github.com/trektrust/trektrust-backend/internal/errors"
)

// SubmitVerificationInput carries a new completion claim. TrekID and
// CompanyID are not checked against the catalogs; the reference lists
// constrain the caller's choice and downstream lookups tolerate dangling ids.
type SubmitVerificationInput struct {
	UserID         string
	TrekID         string
	CompanyID      string
	CertificateURL string
}

// SubmitVerification appends a pending verification with a fresh id.
func (e *Engine) SubmitVerification(s *model.Snapshot, in SubmitVerificationInput) (*model.Snapshot, *model.Verification, error) {
	if strings.TrimSpace(in.CertificateURL) == "" {
		return s, nil, apperrors.ErrCertificateRequired
	}

	next := s.Clone()
	v := model.Verification{
		ID:             e.newID("v"),
		UserID:         in.UserID,
		TrekID:         in.TrekID,
		CompanyID:      in.CompanyID,
		CertificateURL: in.CertificateURL,
		Status:         model.VerificationStatusPending,
		SubmittedAt:    e.now().UTC(),
	}
	next.Verifications = append(next.Verifications, v)
	return next, &v, nil
}

// ApproveVerification resolves a pending verification to approved. Unknown
// ids are a silent no-op; a verification that already left pending fails with
// ErrVerificationResolved (resolution is terminal, first decision wins).
func (e *Engine) ApproveVerification(s *model.Snapshot, id string) (*model.Snapshot, error) {
	idx := findVerification(s, id)
	if idx < 0 {
		return s, nil
	}
	if s.Verifications[idx].Resolved() {
		return s, apperrors.ErrVerificationResolved
	}

	next := s.Clone()
	now := e.now().UTC()
	next.Verifications[idx].Status = model.VerificationStatusApproved
	next.Verifications[idx].ReviewedAt = &now
	return next, nil
}

// RejectVerification resolves a pending verification to rejected with a
// reason. The reason is mandatory; the same no-op and terminality policy as
// ApproveVerification applies.
func (e *Engine) RejectVerification(s *model.Snapshot, id, reason string) (*model.Snapshot, error) {
	if strings.TrimSpace(reason) == "" {
		return s, apperrors.ErrReasonRequired
	}
	idx := findVerification(s, id)
	if idx < 0 {
		return s, nil
	}
	if s.Verifications[idx].Resolved() {
		return s, apperrors.ErrVerificationResolved
	}

	next := s.Clone()
	now := e.now().UTC()
	next.Verifications[idx].Status = model.VerificationStatusRejected
	next.Verifications[idx].RejectionReason = reason
	next.Verifications[idx].ReviewedAt = &now
	return next, nil
}

func findVerification(s *model.Snapshot, id string) int {
	for i := range s.Verifications {
		if s.Verifications[i].ID == id {
			return i
		}
	}
	return -1
}
