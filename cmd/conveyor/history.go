// History command lists items that have passed a stage.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <stage>",
	Short: "List items that have completed a stage",
	Long: `History lists the items whose current stage is past the given stage id
(1-11). Stage 1 lists the entire collection: every tracked item has, by
construction, completed intake.

Example:
  conveyor history 1
  conveyor history 6 --json`,
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

		items := repo.CompletedPast(stage)
		if flagJSON {
			return printItemsJSON(os.Stdout, items)
		}

		fmt.Printf("History for %s: %d item(s)\n", stageLabel(stage), len(items))
		if len(items) == 0 {
			return nil
		}
		printItemsTable(os.Stdout, items, stage)
		return nil
	},
}
