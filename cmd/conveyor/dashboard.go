// Dashboard command prints the summary view.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/types"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show totals, per-stage counts, and recent items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, repo, err := openTracker()
		if err != nil {
			return err
		}
		defer store.Detach()

		s := repo.Summary()

		if flagJSON {
			output, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal summary: %w", err)
			}
			fmt.Println(string(output))
			return nil
		}

		fmt.Printf("Total systems: %d   In progress: %s   Completed: %s\n\n",
			s.Total,
			color.YellowString("%d", s.Active),
			color.GreenString("%d", s.Completed))

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "STAGE\tCOUNT\t")
		for _, id := range types.Stages() {
			count := s.PerStage[id]
			bar := strings.Repeat("#", count)
			fmt.Fprintf(tw, "%2d %s\t%d\t%s\n", id, types.StageName(id), count, bar)
		}
		tw.Flush()

		fmt.Println("\nRecent:")
		limit := len(s.Recent)
		if limit > 5 {
			limit = 5
		}
		for _, item := range s.Recent[:limit] {
			fmt.Printf("  %s  %-24s %s\n", item.SerialNo, item.SystemName(), stageLabel(item.CurrentStage))
		}
		return nil
	},
}
