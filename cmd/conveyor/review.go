// Review command records stage 7, code review.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	reviewBy       string
	reviewQuality  string
	reviewSecurity string
	reviewPerf     string
	reviewRemarks  string
)

var reviewCmd = &cobra.Command{
	Use:   "review <serial>",
	Short: "Record the code review (stage 7)",
	Long: `Review records the code review outcome and moves the item to user
training. Quality is one of: Excellent, Good, Average, Poor. Security
is one of: Pass, Fail.

Example:
  conveyor review SN-007 --quality Good --security Pass --remarks "Clean"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := reviewBy
			if by == "" {
				by = actorName(repo)
			}
			return types.ReviewPayload{
				ReviewedBy:        by,
				CodeQualityRating: reviewQuality,
				SecurityCheck:     reviewSecurity,
				PerformanceNotes:  reviewPerf,
				ReviewRemarks:     reviewRemarks,
			}
		})
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewBy, "by", "", "reviewed by (default: acting user)")
	reviewCmd.Flags().StringVar(&reviewQuality, "quality", types.QualityRatings[0], "code quality rating")
	reviewCmd.Flags().StringVar(&reviewSecurity, "security", types.SecurityResults[0], "security check result")
	reviewCmd.Flags().StringVar(&reviewPerf, "performance", "", "performance notes")
	reviewCmd.Flags().StringVar(&reviewRemarks, "remarks", "", "review remarks")
}
