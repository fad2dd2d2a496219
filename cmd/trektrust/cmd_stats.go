// Analytics commands: the dashboard numbers and the XLSX export.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trektrust/trektrust-backend/internal/report"
)

var exportPath string

var statsCmd = &cobra.Command{
	Use:   "stats <company-id>",
	Short: "Show a company's average rating and review count",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var rankingCmd = &cobra.Command{
	Use:   "ranking <trek-id>",
	Short: "Rank companies by average rating on a trek",
	Args:  cobra.ExactArgs(1),
	RunE:  runRanking,
}

var approvalRateCmd = &cobra.Command{
	Use:   "approval-rate",
	Short: "Show the platform-wide verification approval rate",
	Args:  cobra.NoArgs,
	RunE:  runApprovalRate,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the moderation report as an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportPath, "out", "trektrust-report.xlsx", "output file path")
	rootCmd.AddCommand(statsCmd, rankingCmd, approvalRateCmd, exportCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	stats, err := a.reviews.CompanyStats(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Company %s: average %.2f over %d review(s)\n", args[0], stats.Average, stats.Count)
	return nil
}

func runRanking(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	rankings, err := a.reviews.TrekRanking(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(rankings) == 0 {
		fmt.Println("No verified reviews for this trek yet.")
		return nil
	}
	for i, r := range rankings {
		fmt.Printf("%d. %s  %.2f (%d review(s))\n", i+1, r.Company.Name, r.Average, r.Count)
	}
	return nil
}

func runApprovalRate(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	rate, err := a.verifications.ApprovalRate(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Approval rate: %d%%\n", rate)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	snapshot, err := a.store.Load(cmd.Context())
	if err != nil {
		return err
	}
	if err := report.WriteFile(snapshot, exportPath); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", exportPath)
	return nil
}
