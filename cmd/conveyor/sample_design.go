// Sample-design command records stage 3.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	sampleDesignBy        string
	sampleDesignExplainTo string
	sampleDesignURL       string
)

var sampleDesignCmd = &cobra.Command{
	Use:   "sample-design <serial>",
	Short: "Record the sample design (stage 3)",
	Long: `Sample-design records the first design draft and who it was explained
to, and moves the item to the design-update stage.

Example:
  conveyor sample-design SN-011 --url https://figma.com/perf --explain-to "HR"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := sampleDesignBy
			if by == "" {
				by = actorName(repo)
			}
			return types.SampleDesignPayload{
				DesignCreateBy:  by,
				DesignExplainTo: sampleDesignExplainTo,
				URLOfDesign:     sampleDesignURL,
			}
		})
	},
}

func init() {
	sampleDesignCmd.Flags().StringVar(&sampleDesignBy, "by", "", "design created by (default: acting user)")
	sampleDesignCmd.Flags().StringVar(&sampleDesignExplainTo, "explain-to", "", "design explained to")
	sampleDesignCmd.Flags().StringVar(&sampleDesignURL, "url", "", "design URL (required)")
	_ = sampleDesignCmd.MarkFlagRequired("url")
}
