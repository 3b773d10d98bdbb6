// Approval command records stage 5, final design approval.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	approvalBy      string
	approvalStatus  string
	approvalRemarks string
)

var approvalCmd = &cobra.Command{
	Use:   "approve <serial>",
	Short: "Record final design approval (stage 5)",
	Long: `Approve records the final design decision and moves the item to
testing. Status is one of: Approved, Changes Required.

Example:
  conveyor approve SN-009 --status Approved --remarks "Proceed to build"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := approvalBy
			if by == "" {
				by = actorName(repo)
			}
			return types.ApprovalPayload{
				FinalApprovalBy: by,
				ApprovalStatus:  approvalStatus,
				FinalRemarks:    approvalRemarks,
			}
		})
	},
}

func init() {
	approvalCmd.Flags().StringVar(&approvalBy, "by", "", "approved by (default: acting user)")
	approvalCmd.Flags().StringVar(&approvalStatus, "status", types.ApprovalStatuses[0], "approval status")
	approvalCmd.Flags().StringVar(&approvalRemarks, "remarks", "", "final remarks")
}
