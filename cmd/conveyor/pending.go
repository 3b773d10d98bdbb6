// Pending command lists items awaiting action at a stage.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending <stage>",
	Short: "List items awaiting action at a stage",
	Long: `Pending lists the items whose current stage equals the given stage id
(1-11). Each row carries the delay in days since intake and a summary
of the previous stage's recorded action.

Example:
  conveyor pending 6
  conveyor pending 2 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, err := parseStageArg(args[0])
		if err != nil {
			return err
		}

		store, repo, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Detach()

		items := repo.PendingAt(stage)
		if flagJSON {
			return printItemsJSON(os.Stdout, items)
		}

		fmt.Printf("Pending at %s: %d item(s)\n", stageLabel(stage), len(items))
		if len(items) == 0 {
			return nil
		}
		printItemsTable(os.Stdout, items, stage-1)
		return nil
	},
}
