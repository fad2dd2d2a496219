// Verification commands: submitting certificates and working the admin
// moderation queue.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trektrust/trektrust-backend/internal/app/workflow"
	apperrors "github.com/trektrust/trektrust-backend/internal/errors"
)

var (
	submitTrekID      string
	submitCompanyID   string
	submitCertificate string
	rejectReason      string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a completion certificate for verification",
	Args:  cobra.NoArgs,
	RunE:  runSubmit,
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List verifications awaiting review",
	Args:  cobra.NoArgs,
	RunE:  runPending,
}

var verificationsCmd = &cobra.Command{
	Use:   "verifications",
	Short: "List your submitted certificates",
	Args:  cobra.NoArgs,
	RunE:  runVerifications,
}

var approveCmd = &cobra.Command{
	Use:   "approve <verification-id>",
	Short: "Approve a pending verification",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprove,
}

var rejectCmd = &cobra.Command{
	Use:   "reject <verification-id>",
	Short: "Reject a pending verification with a reason",
	Args:  cobra.ExactArgs(1),
	RunE:  runReject,
}

func init() {
	submitCmd.Flags().StringVar(&submitTrekID, "trek", "", "trek id (e.g. t1)")
	submitCmd.Flags().StringVar(&submitCompanyID, "company", "", "company id (e.g. c1)")
	submitCmd.Flags().StringVar(&submitCertificate, "certificate", "", "certificate reference URL")
	submitCmd.MarkFlagRequired("trek")
	submitCmd.MarkFlagRequired("company")
	submitCmd.MarkFlagRequired("certificate")

	rejectCmd.Flags().StringVar(&rejectReason, "reason", "", "rejection reason shown to the hiker")
	rejectCmd.MarkFlagRequired("reason")

	rootCmd.AddCommand(submitCmd, pendingCmd, verificationsCmd, approveCmd, rejectCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.sessions.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrNotLoggedIn
	}

	v, err := a.verifications.Submit(cmd.Context(), workflow.SubmitVerificationInput{
		UserID:         user.ID,
		TrekID:         submitTrekID,
		CompanyID:      submitCompanyID,
		CertificateURL: submitCertificate,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Submitted %s (status: %s)\n", v.ID, v.Status)
	return nil
}

func runPending(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	pending, err := a.verifications.Pending(cmd.Context())
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Println("All verifications are cleared.")
		return nil
	}
	for _, v := range pending {
		fmt.Printf("%s  user=%s  trek=%s  company=%s  submitted=%s\n",
			v.ID, v.UserID, v.TrekID, v.CompanyID, v.SubmittedAt.Format("2006-01-02"))
	}
	return nil
}

func runVerifications(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	user, err := a.sessions.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrNotLoggedIn
	}

	mine, err := a.verifications.ForUser(cmd.Context(), user.ID)
	if err != nil {
		return err
	}
	if len(mine) == 0 {
		fmt.Println("No certificates submitted yet.")
		return nil
	}
	for _, v := range mine {
		line := fmt.Sprintf("%s  trek=%s  company=%s  status=%s", v.ID, v.TrekID, v.CompanyID, v.Status)
		if v.RejectionReason != "" {
			line += fmt.Sprintf("  reason=%q", v.RejectionReason)
		}
		fmt.Println(line)
	}
	return nil
}

func runApprove(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.verifications.Approve(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Approved %s\n", args[0])
	return nil
}

func runReject(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.verifications.Reject(cmd.Context(), args[0], rejectReason); err != nil {
		return err
	}
	fmt.Printf("Rejected %s\n", args[0])
	return nil
}
