// Integration command records stage 11, MIS integration.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	integrationBy        string
	integrationModule    string
	integrationStatus    string
	integrationRef       string
	integrationReporting string
	integrationRemarks   string
)

var integrationCmd = &cobra.Command{
	Use:   "integration <serial>",
	Short: "Record MIS integration (stage 11)",
	Long: `Integration records the MIS hookup and completes the item. Status is
one of: Completed, Partial, Failed. Reporting is Yes or No.

Example:
  conveyor integration SN-003 --module Finance --status Completed --reporting Yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := integrationBy
			if by == "" {
				by = actorName(repo)
			}
			return types.IntegrationPayload{
				MISIntegratedBy:    by,
				MISModuleName:      integrationModule,
				IntegrationStatus:  integrationStatus,
				MISReferenceID:     integrationRef,
				ReportingEnabled:   integrationReporting,
				IntegrationRemarks: integrationRemarks,
			}
		})
	},
}

func init() {
	integrationCmd.Flags().StringVar(&integrationBy, "by", "", "integrated by (default: acting user)")
	integrationCmd.Flags().StringVar(&integrationModule, "module", "", "MIS module name (required)")
	integrationCmd.Flags().StringVar(&integrationStatus, "status", types.IntegrationStates[0], "integration status")
	integrationCmd.Flags().StringVar(&integrationRef, "ref", "", "MIS reference id")
	integrationCmd.Flags().StringVar(&integrationReporting, "reporting", types.YesNo[0], "reporting enabled (Yes/No)")
	integrationCmd.Flags().StringVar(&integrationRemarks, "remarks", "", "integration remarks")
	_ = integrationCmd.MarkFlagRequired("module")
}
