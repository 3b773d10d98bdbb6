// Design-update command records stage 4.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	designUpdateFrom  string
	designUpdateNotes string
)

var designUpdateCmd = &cobra.Command{
	Use:   "design-update <serial>",
	Short: "Record a design update round (stage 4)",
	Long: `Design-update records whose feedback was folded into the design, and
moves the item to final design approval.

Example:
  conveyor design-update SN-010 --from "HR Head" --remarks "Added search filters"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			from := designUpdateFrom
			if from == "" {
				from = actorName(repo)
			}
			return types.DesignUpdatePayload{
				TakeUpdateFrom: from,
				Remarks:        designUpdateNotes,
			}
		})
	},
}

func init() {
	designUpdateCmd.Flags().StringVar(&designUpdateFrom, "from", "", "update taken from (default: acting user)")
	designUpdateCmd.Flags().StringVar(&designUpdateNotes, "remarks", "", "remarks")
}
