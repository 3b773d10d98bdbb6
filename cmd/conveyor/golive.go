// Go-live command records stage 9.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	goLiveBy     string
	goLiveType   string
	goLiveDate   string
	goLiveStatus string
	goLiveNotes  string
)

var goLiveCmd = &cobra.Command{
	Use:   "go-live <serial>",
	Short: "Record the go-live (stage 9)",
	Long: `Go-live records the deployment and moves the item to system indexing.
Type is one of: Production, Pilot, Beta. Status is one of: Smooth,
Issues Found.

Example:
  conveyor go-live SN-005 --type Production --status Smooth`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := goLiveBy
			if by == "" {
				by = actorName(repo)
			}
			date := goLiveDate
			if date == "" {
				date = types.FormatDate(time.Now())
			}
			return types.GoLivePayload{
				GoLiveDoneBy:        by,
				DeploymentType:      goLiveType,
				GoLiveDate:          date,
				PostGoLiveStatus:    goLiveStatus,
				InitialSupportNotes: goLiveNotes,
			}
		})
	},
}

func init() {
	goLiveCmd.Flags().StringVar(&goLiveBy, "by", "", "go-live done by (default: acting user)")
	goLiveCmd.Flags().StringVar(&goLiveType, "type", types.DeploymentTypes[0], "deployment type")
	goLiveCmd.Flags().StringVar(&goLiveDate, "date", "", "go-live date DD/MM/YYYY (default: today)")
	goLiveCmd.Flags().StringVar(&goLiveStatus, "status", types.PostGoLiveStates[0], "post-go-live status")
	goLiveCmd.Flags().StringVar(&goLiveNotes, "notes", "", "initial support notes")
}
