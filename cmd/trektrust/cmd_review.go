// Review commands: publishing, editing, searching and moderating reviews.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trektrust/trektrust-backend/internal/app/query"
	"github.com/trektrust/trektrust-backend/internal/app/workflow"
	apperrors "github.com/trektrust/trektrust-backend/internal/errors"
)

var (
	reviewID             string
	reviewVerificationID string
	reviewRating         int
	reviewText           string
	reviewPhotos         []string

	searchText    string
	searchTrek    string
	searchCompany string
	searchUser    string

	deleteYes bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Publish or edit a review for an approved verification",
	Args:  cobra.NoArgs,
	RunE:  runReview,
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Search reviews (moderation view)",
	Args:  cobra.NoArgs,
	RunE:  runReviews,
}

var deleteReviewCmd = &cobra.Command{
	Use:   "delete-review <review-id>",
	Short: "Delete a review (admin moderation)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewID, "id", "", "review id to edit (omit to create)")
	reviewCmd.Flags().StringVar(&reviewVerificationID, "verification", "", "approved verification id")
	reviewCmd.Flags().IntVar(&reviewRating, "rating", 5, "rating 1-5")
	reviewCmd.Flags().StringVar(&reviewText, "text", "", "review text")
	reviewCmd.Flags().StringSliceVar(&reviewPhotos, "photo", nil, "photo reference (repeatable)")
	reviewCmd.MarkFlagRequired("text")

	reviewsCmd.Flags().StringVar(&searchText, "text", "", "substring of review text or author name")
	reviewsCmd.Flags().StringVar(&searchTrek, "trek", "", "filter by trek id")
	reviewsCmd.Flags().StringVar(&searchCompany, "company", "", "filter by company id")
	reviewsCmd.Flags().StringVar(&searchUser, "user", "", "filter by author id")

	deleteReviewCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")

	rootCmd.AddCommand(reviewCmd, reviewsCmd, deleteReviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
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

	review, err := a.reviews.SubmitOrUpdate(cmd.Context(), workflow.ReviewInput{
		ID:             reviewID,
		UserID:         user.ID,
		VerificationID: reviewVerificationID,
		Rating:         reviewRating,
		Text:           reviewText,
		Photos:         reviewPhotos,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Review %s saved (rating %d)\n", review.ID, review.Rating)
	return nil
}

func runReviews(cmd *cobra.Command, args []string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	matches, err := a.reviews.Search(cmd.Context(), query.ReviewFilter{
		Text:      searchText,
		TrekID:    searchTrek,
		CompanyID: searchCompany,
		UserID:    searchUser,
	})
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("No reviews matching your criteria.")
		return nil
	}
	for _, r := range matches {
		fmt.Printf("%s  %s  trek=%s  company=%s  %d/5  %q\n",
			r.ID, r.UserName, r.TrekID, r.CompanyID, r.Rating, r.Text)
	}
	fmt.Printf("Total: %d\n", len(matches))
	return nil
}

func runDeleteReview(cmd *cobra.Command, args []string) error {
	if !deleteYes && !confirm(fmt.Sprintf("Delete review %s?", args[0])) {
		fmt.Println("Cancelled.")
		return nil
	}

	a, err := boot()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.reviews.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
