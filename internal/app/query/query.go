package query

import (
	"math"
	"sort"
	"strings"

	"github.com/trektrust/trektrust-backend/internal/app/model"
)

// VerificationsForUser returns the user's verifications in submission order.
func VerificationsForUser(s *model.Snapshot, userID string) []model.Verification {
	var out []model.Verification
	for _, v := range s.Verifications {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out
}

// ReviewsForUser returns the user's reviews in creation order.
func ReviewsForUser(s *model.Snapshot, userID string) []model.Review {
	var out []model.Review
	for _, r := range s.Reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// PendingVerifications returns the moderation queue in submission order.
func PendingVerifications(s *model.Snapshot) []model.Verification {
	var out []model.Verification
	for _, v := range s.Verifications {
		if v.Status == model.VerificationStatusPending {
			out = append(out, v)
		}
	}
	return out
}

// ReviewFilter narrows ReviewsMatching. Zero-valued fields match everything;
// set fields combine with logical AND. Text matches case-insensitively
// against the review body or the display name.
type ReviewFilter struct {
	Text      string
	TrekID    string
	CompanyID string
	UserID    string
}

// ReviewsMatching returns reviews satisfying the filter, preserving order.
func ReviewsMatching(s *model.Snapshot, f ReviewFilter) []model.Review {
	needle := strings.ToLower(f.Text)
	var out []model.Review
	for _, r := range s.Reviews {
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Text), needle) &&
			!strings.Contains(strings.ToLower(r.UserName), needle) {
			continue
		}
		if f.TrekID != "" && r.TrekID != f.TrekID {
			continue
		}
		if f.CompanyID != "" && r.CompanyID != f.CompanyID {
			continue
		}
		if f.UserID != "" && r.UserID != f.UserID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// RatingStats aggregates reviews for one company.
type RatingStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// CompanyRatingStats averages all review ratings for the company across every
// trek. Zero reviews yield {0, 0}.
func CompanyRatingStats(s *model.Snapshot, companyID string) RatingStats {
	sum, count := 0, 0
	for _, r := range s.Reviews {
		if r.CompanyID == companyID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return RatingStats{}
	}
	return RatingStats{Average: float64(sum) / float64(count), Count: count}
}

// CompanyRanking is one row of a per-trek company leaderboard.
type CompanyRanking struct {
	Company model.Company `json:"company"`
	Average float64       `json:"average"`
	Count   int           `json:"count"`
}

// TrekCompanyRanking ranks companies by average review rating on one trek,
// descending. Companies without a review on the trek are excluded entirely.
// Equal averages order by company name ascending.
func TrekCompanyRanking(s *model.Snapshot, trekID string) []CompanyRanking {
	var out []CompanyRanking
	for _, c := range s.Companies {
		sum, count := 0, 0
		for _, r := range s.Reviews {
			if r.TrekID == trekID && r.CompanyID == c.ID {
				sum += r.Rating
				count++
			}
		}
		if count == 0 {
			continue
		}
		out = append(out, CompanyRanking{
			Company: c,
			Average: float64(sum) / float64(count),
			Count:   count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].Company.Name < out[j].Company.Name
	})
	return out
}

// ApprovalRate returns the percentage of submitted verifications that were
// approved, rounded to the nearest integer. No submissions yield 0.
func ApprovalRate(s *model.Snapshot) int {
	total := len(s.Verifications)
	if total == 0 {
		return 0
	}
	approved := 0
	for _, v := range s.Verifications {
		if v.Status == model.VerificationStatusApproved {
			approved++
		}
	}
	return int(math.Round(float64(approved) / float64(total) * 100))
}
