// Training command records stage 8, user training.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	trainingBy        string
	trainingMode      string
	trainingDuration  string
	trainingFeedback  string
	trainingReadiness string
)

var trainingCmd = &cobra.Command{
	Use:   "training <serial>",
	Short: "Record user training (stage 8)",
	Long: `Training records the user-training session and moves the item to go
live. Mode is one of: Online, Offline, Hybrid. Readiness is one of:
Ready, Needs Support.

Example:
  conveyor training SN-006 --mode Online --duration 4 --readiness Ready`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := trainingBy
			if by == "" {
				by = actorName(repo)
			}
			return types.TrainingPayload{
				TrainingGivenBy:  by,
				TrainingMode:     trainingMode,
				TrainingDuration: trainingDuration,
				TrainingFeedback: trainingFeedback,
				UserReadiness:    trainingReadiness,
			}
		})
	},
}

func init() {
	trainingCmd.Flags().StringVar(&trainingBy, "by", "", "training given by (default: acting user)")
	trainingCmd.Flags().StringVar(&trainingMode, "mode", types.TrainingModes[0], "training mode")
	trainingCmd.Flags().StringVar(&trainingDuration, "duration", "", "duration in hours")
	trainingCmd.Flags().StringVar(&trainingFeedback, "feedback", "", "training feedback")
	trainingCmd.Flags().StringVar(&trainingReadiness, "readiness", types.ReadinessLevels[0], "user readiness")
}
