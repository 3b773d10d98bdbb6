package tracker

import (
	"sort"

	"github.com/opsforge/conveyor/pkg/types"
)

// Summary is the dashboard aggregate derived from the collection on
// every read.
type Summary struct {
	// Total is the collection size.
	Total int

	// PerStage is the histogram over CurrentStage, one bucket per
	// defined stage id.
	PerStage map[int]int

	// Active counts items still inside the pipeline (CurrentStage at or
	// below the last defined stage).
	Active int

	// Completed counts items at the done sentinel.
	Completed int

	// Recent holds the collection ordered most-recently-created first.
	// Serials are zero-padded and monotonic, so descending serial order
	// is creation order reversed.
	Recent []*types.TrackedItem
}

// Summary derives the dashboard aggregate. Calling it twice without an
// intervening mutation yields identical results.
func (r *Repository) Summary() Summary {
	s := Summary{
		Total:    len(r.items),
		PerStage: make(map[int]int, types.LastStage),
	}
	for _, id := range types.Stages() {
		s.PerStage[id] = 0
	}

	for _, item := range r.items {
		if types.ValidStage(item.CurrentStage) {
			s.PerStage[item.CurrentStage]++
		}
		if item.Completed() {
			s.Completed++
		} else {
			s.Active++
		}
	}

	s.Recent = r.All()
	sort.Slice(s.Recent, func(i, j int) bool {
		return s.Recent[i].SerialNo > s.Recent[j].SerialNo
	})
	return s
}
