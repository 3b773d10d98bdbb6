// Create command posts a new system request (stage 1 intake).
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/types"
)

var (
	createSystem  string
	createProcess string
	createReason  string
	createLink    string
	createPoster  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new system request",
	Long: `Create posts a new system-development request. Creation records the
intake fields as stage 1 and leaves the item pending at stage 2.

Example:
  conveyor create --system "Asset Tracker" --process "Web App" --reason "Laptop tracking"
  conveyor create --system "Event Planner" --process Tool --link https://example.com --json`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createSystem, "system", "", "system name (required)")
	createCmd.Flags().StringVar(&createProcess, "process", "", "process/system category (required)")
	createCmd.Flags().StringVar(&createReason, "reason", "", "reason for the request")
	createCmd.Flags().StringVar(&createLink, "link", "", "reference link")
	createCmd.Flags().StringVar(&createPoster, "posted-by", "", "poster name (default: acting user)")
	_ = createCmd.MarkFlagRequired("system")
	_ = createCmd.MarkFlagRequired("process")
}

func runCreate(cmd *cobra.Command, args []string) error {
	store, repo, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Detach()

	postedBy := createPoster
	if postedBy == "" {
		postedBy = actorName(repo)
	}

	item, err := repo.Create(types.RequirementPayload{
		PostedBy:      postedBy,
		SystemName:    createSystem,
		ProcessSystem: createProcess,
		Reason:        createReason,
		AnyLink:       createLink,
	})
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if flagJSON {
		output, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Created %s (%s), pending at stage %s\n",
		item.SerialNo, item.SystemName(), stageLabel(item.CurrentStage))
	return nil
}
