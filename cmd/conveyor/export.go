// Export command dumps the full collection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the full collection as a JSON document",
	Long: `Export writes every tracked item, including the complete per-stage
history, as indented JSON.

Example:
  conveyor export
  conveyor export --out systems.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, repo, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Detach()

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		if err := repo.Export(out); err != nil {
			return err
		}
		if exportOut != "" {
			fmt.Printf("Exported %d item(s) to %s\n", len(repo.All()), exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to file instead of stdout")
}
