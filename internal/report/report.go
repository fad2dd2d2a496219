// Package report renders a snapshot into an XLSX moderation report: the
// numbers the admin dashboard shows, in a form that can leave the tool.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/trektrust/trektrust-backend/internal/app/model"
	"github.com/trektrust/trektrust-backend/internal/app/query"
)

const (
	sheetSummary       = "Summary"
	sheetVerifications = "Verifications"
	sheetReviews       = "Reviews"
)

// Build renders the workbook. The caller owns closing the file.
func Build(s *model.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	idx := query.NewIndex(s)

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	if err := writeSummary(f, s); err != nil {
		return nil, err
	}
	if err := writeVerifications(f, s, idx); err != nil {
		return nil, err
	}
	if err := writeReviews(f, s, idx); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteFile builds the workbook and saves it at path.
func WriteFile(s *model.Snapshot, path string) error {
	f, err := Build(s)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, s *model.Snapshot) error {
	pending, approved, rejected := 0, 0, 0
	for _, v := range s.Verifications {
		switch v.Status {
		case model.VerificationStatusPending:
			pending++
		case model.VerificationStatusApproved:
			approved++
		case model.VerificationStatusRejected:
			rejected++
		}
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total verifications", len(s.Verifications)},
		{"Pending", pending},
		{"Approved", approved},
		{"Rejected", rejected},
		{"Approval rate (%)", query.ApprovalRate(s)},
		{"Total reviews", len(s.Reviews)},
		{},
		{"Company", "Average rating", "Review count"},
	}
	for _, c := range s.Companies {
		stats := query.CompanyRatingStats(s, c.ID)
		rows = append(rows, []interface{}{c.Name, stats.Average, stats.Count})
	}

	return writeRows(f, sheetSummary, rows)
}

func writeVerifications(f *excelize.File, s *model.Snapshot, idx *query.Index) error {
	if _, err := f.NewSheet(sheetVerifications); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"ID", "User ID", "Trek", "Company", "Status", "Rejection reason", "Submitted at", "Reviewed at"},
	}
	for _, v := range s.Verifications {
		rows = append(rows, []interface{}{
			v.ID,
			v.UserID,
			refName(idx.Trek(v.TrekID)),
			companyName(idx.Company(v.CompanyID)),
			string(v.Status),
			v.RejectionReason,
			v.SubmittedAt.Format(time.RFC3339),
			formatOptionalTime(v.ReviewedAt),
		})
	}
	return writeRows(f, sheetVerifications, rows)
}

func writeReviews(f *excelize.File, s *model.Snapshot, idx *query.Index) error {
	if _, err := f.NewSheet(sheetReviews); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"ID", "User", "Trek", "Company", "Rating", "Text", "Photos", "Verification ID", "Created at"},
	}
	for _, r := range s.Reviews {
		rows = append(rows, []interface{}{
			r.ID,
			r.UserName,
			refName(idx.Trek(r.TrekID)),
			companyName(idx.Company(r.CompanyID)),
			r.Rating,
			r.Text,
			len(r.Photos),
			r.VerificationID,
			r.CreatedAt.Format(time.RFC3339),
		})
	}
	return writeRows(f, sheetReviews, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// Dangling references render as "(unknown)" rather than failing the export.

func refName(t *model.Trek) string {
	if t == nil {
		return "(unknown)"
	}
	return t.Name
}

func companyName(c *model.Company) string {
	if c == nil {
		return "(unknown)"
	}
	return c.Name
}
