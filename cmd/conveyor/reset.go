// Reset command clears the tracked collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all tracked items",
	Long: `Reset removes every tracked item and the persisted collection. The
seed dataset is reinstalled on the next run. Irreversible; requires
--force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("reset is irreversible; re-run with --force")
		}

		store, repo, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Detach()

		repo.Reset()
		fmt.Println("Collection cleared")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm the reset")
}
