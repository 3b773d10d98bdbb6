// Testing command records stage 6.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	testingBy     string
	testingResult string
	testingBugs   int
	testingNotes  string
	testingDate   string
)

var testingCmd = &cobra.Command{
	Use:   "testing <serial>",
	Short: "Record the testing round (stage 6)",
	Long: `Testing records the QA outcome and moves the item to code review.
Result is one of: Pass, Fail.

Example:
  conveyor testing SN-008 --result Pass --bugs 2 --notes "UI glitches fixed"
  conveyor testing SN-008 --by "QA Team" --result Fail --bugs 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := testingBy
			if by == "" {
				by = actorName(repo)
			}
			date := testingDate
			if date == "" {
				date = types.FormatDate(time.Now())
			}
			return types.TestingPayload{
				TestedBy:      by,
				TestingResult: testingResult,
				BugCount:      testingBugs,
				BugNotes:      testingNotes,
				TestingDate:   date,
			}
		})
	},
}

func init() {
	testingCmd.Flags().StringVar(&testingBy, "by", "", "tested by (default: acting user)")
	testingCmd.Flags().StringVar(&testingResult, "result", types.TestingResults[0], "testing result")
	testingCmd.Flags().IntVar(&testingBugs, "bugs", 0, "bug count")
	testingCmd.Flags().StringVar(&testingNotes, "notes", "", "bug notes")
	testingCmd.Flags().StringVar(&testingDate, "date", "", "testing date DD/MM/YYYY (default: today)")
}
