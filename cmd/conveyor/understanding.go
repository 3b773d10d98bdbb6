// Understanding command records stage 2, requirement understanding.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	understandingBy    string
	understandingImage string
	understandingNotes string
)

var understandingCmd = &cobra.Command{
	Use:   "understanding <serial>",
	Short: "Record requirement understanding (stage 2)",
	Long: `Understanding records that the request's requirements have been worked
through, and moves the item to the sample-design stage.

Example:
  conveyor understanding SN-012 --remarks "Standard booking flow"
  conveyor understanding SN-012 --by "BA" --image https://example.com/sketch.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := understandingBy
			if by == "" {
				by = actorName(repo)
			}
			return types.UnderstandingPayload{
				RequirementUnderstandingBy: by,
				UploadImage:                understandingImage,
				Remarks:                    understandingNotes,
			}
		})
	},
}

func init() {
	understandingCmd.Flags().StringVar(&understandingBy, "by", "", "understood by (default: acting user)")
	understandingCmd.Flags().StringVar(&understandingImage, "image", "", "uploaded image link")
	understandingCmd.Flags().StringVar(&understandingNotes, "remarks", "", "remarks")
}
