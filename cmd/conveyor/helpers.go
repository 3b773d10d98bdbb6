// Shared helpers for conveyor CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/opsforge/conveyor/internal/blobstore"
	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

// doneByField maps each stage to the wire name of its done-by field,
// used when summarizing a stage record in one line.
var doneByField = map[int]string{
	types.StageRequirementUpdate:        "postedBy",
	types.StageRequirementUnderstanding: "requirementUnderstandingBy",
	types.StageSampleDesign:             "designCreateBy",
	types.StageDesignUpdate:             "takeUpdateFrom",
	types.StageFinalDesignApproval:      "finalApprovalBy",
	types.StageTesting:                  "testedBy",
	types.StageCodeReview:               "reviewedBy",
	types.StageUserTraining:             "trainingGivenBy",
	types.StageGoLive:                   "goLiveDoneBy",
	types.StageSystemIndexing:           "indexedBy",
	types.StageMISIntegration:           "misIntegratedBy",
}

// openTracker resolves the data directory, attaches the blob store, and
// opens the repository over it. The caller must defer store.Detach().
func openTracker() (*blobstore.Store, *tracker.Repository, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := blobstore.New()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := store.Attach(cfg); err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}

	return store, tracker.Open(store), nil
}

// runAdvance opens the tracker, builds the stage payload (the builder
// may consult the repository for defaults such as the acting user), and
// records the stage action for the given serial. The payload's own
// stage id drives the advance.
func runAdvance(serialNo string, build func(repo *tracker.Repository) types.StagePayload) error {
	store, repo, err := openTracker()
	if err != nil {
		return err
	}
	defer store.Detach()

	if _, ok := repo.Find(serialNo); !ok {
		return fmt.Errorf("unknown serial %q", serialNo)
	}

	p := build(repo)
	if err := repo.Advance(serialNo, p.StageID(), p); err != nil {
		return fmt.Errorf("record %s: %w", types.StageName(p.StageID()), err)
	}

	item, _ := repo.Find(serialNo)
	fmt.Printf("%s advanced to %s\n", serialNo, stageLabel(item.CurrentStage))
	return nil
}

// actorName resolves the acting user's display name for done-by
// defaults: --actor flag > config.yaml actor > persisted current actor.
func actorName(repo *tracker.Repository) string {
	if flagActor != "" {
		return flagActor
	}
	if configActor != "" {
		return configActor
	}
	return repo.CurrentActor()
}

// parseStageArg parses a stage argument given as an id (1-11).
func parseStageArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || !types.ValidStage(id) {
		return 0, fmt.Errorf("invalid stage %q (expected 1-%d)", arg, types.LastStage)
	}
	return id, nil
}

// stageLabel renders "N: Name" for a stage id, with the done sentinel
// shown as Completed.
func stageLabel(id int) string {
	if id >= types.StageDone {
		return color.GreenString("Completed")
	}
	return fmt.Sprintf("%d: %s", id, types.StageName(id))
}

// printItemsJSON writes items as indented JSON.
func printItemsJSON(w io.Writer, items []*types.TrackedItem) error {
	output, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}

// printItemsTable writes items as an aligned table with a delay column
// computed from each item's requirement date. When prevStage names a
// defined stage, a LAST ACTION column summarizes that stage's record.
func printItemsTable(w io.Writer, items []*types.TrackedItem, prevStage int) {
	now := time.Now()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := "SERIAL\tSYSTEM\tPROCESS\tDATE\tDELAY\tSTAGE"
	if types.ValidStage(prevStage) {
		header += "\tLAST ACTION"
	}
	fmt.Fprintln(tw, header)

	for _, item := range items {
		delay := types.DelayDays(item.RequirementDate, now)
		row := fmt.Sprintf("%s\t%s\t%s\t%s\t%dd\t%s",
			item.SerialNo, item.SystemName(), item.ProcessSystem(),
			item.RequirementDate, delay, stageLabel(item.CurrentStage))
		if types.ValidStage(prevStage) {
			row += "\t" + lastAction(item, prevStage)
		}
		fmt.Fprintln(tw, row)
	}
	tw.Flush()
}

// lastAction summarizes a stage record as "Name (by actor)".
func lastAction(item *types.TrackedItem, stage int) string {
	rec := item.StageRecord(stage)
	if rec == nil {
		return "-"
	}
	by, _ := rec[doneByField[stage]].(string)
	if by == "" {
		return types.StageName(stage)
	}
	return fmt.Sprintf("%s (by %s)", types.StageName(stage), by)
}
