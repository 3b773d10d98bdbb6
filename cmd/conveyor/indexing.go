// Indexing command records stage 10, system indexing.
package main

import (
	"github.com/spf13/cobra"

	"github.com/opsforge/conveyor/pkg/tracker"
	"github.com/opsforge/conveyor/pkg/types"
)

var (
	indexingBy       string
	indexingCategory string
	indexingCode     string
	indexingDocs     string
)

var indexingCmd = &cobra.Command{
	Use:   "indexing <serial>",
	Short: "Record system indexing (stage 10)",
	Long: `Indexing files the system in the internal index and moves the item to
MIS integration. Category is one of: Internal Tool, Client System,
Automation.

Example:
  conveyor indexing SN-004 --category "Internal Tool" --code INV-2025-04`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdvance(args[0], func(repo *tracker.Repository) types.StagePayload {
			by := indexingBy
			if by == "" {
				by = actorName(repo)
			}
			return types.IndexingPayload{
				IndexedBy:          by,
				SystemCategory:     indexingCategory,
				IndexReferenceCode: indexingCode,
				DocumentationLink:  indexingDocs,
			}
		})
	},
}

func init() {
	indexingCmd.Flags().StringVar(&indexingBy, "by", "", "indexed by (default: acting user)")
	indexingCmd.Flags().StringVar(&indexingCategory, "category", types.SystemCategories[0], "system category")
	indexingCmd.Flags().StringVar(&indexingCode, "code", "", "index reference code (required)")
	indexingCmd.Flags().StringVar(&indexingDocs, "docs", "", "documentation link")
	_ = indexingCmd.MarkFlagRequired("code")
}
