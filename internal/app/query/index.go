// Package query provides the derived read operations over a snapshot:
// filters, rating aggregates and rankings. Everything here is pure and
// side-effect free.
package query

import "github.com/trektrust/trektrust-backend/internal/app/model"

// Index holds id -> record lookups built once per snapshot version,
// replacing the original's repeated linear scans.
type Index struct {
	Treks                  map[string]*model.Trek
	Companies              map[string]*model.Company
	Verifications          map[string]*model.Verification
	ReviewByVerificationID map[string]*model.Review
}

func NewIndex(s *model.Snapshot) *Index {
	idx := &Index{
		Treks:                  make(map[string]*model.Trek, len(s.Treks)),
		Companies:              make(map[string]*model.Company, len(s.Companies)),
		Verifications:          make(map[string]*model.Verification, len(s.Verifications)),
		ReviewByVerificationID: make(map[string]*model.Review, len(s.Reviews)),
	}
	for i := range s.Treks {
		idx.Treks[s.Treks[i].ID] = &s.Treks[i]
	}
	for i := range s.Companies {
		idx.Companies[s.Companies[i].ID] = &s.Companies[i]
	}
	for i := range s.Verifications {
		idx.Verifications[s.Verifications[i].ID] = &s.Verifications[i]
	}
	for i := range s.Reviews {
		idx.ReviewByVerificationID[s.Reviews[i].VerificationID] = &s.Reviews[i]
	}
	return idx
}

// Trek resolves a trek id; nil when the reference dangles.
func (idx *Index) Trek(id string) *model.Trek { return idx.Treks[id] }

// Company resolves a company id; nil when the reference dangles.
func (idx *Index) Company(id string) *model.Company { return idx.Companies[id] }

// HasReview reports whether a verification already carries a review.
func (idx *Index) HasReview(verificationID string) bool {
	_, ok := idx.ReviewByVerificationID[verificationID]
	return ok
}
