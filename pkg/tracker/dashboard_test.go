package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsforge/conveyor/pkg/types"
)

func TestSummary(t *testing.T) {
	r := setupRepository(t)

	s := r.Summary()
	assert.Equal(t, 12, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 10, s.Active)
	assert.Equal(t, s.Total, s.Active+s.Completed)

	// Every defined stage has a bucket, zero or not.
	require.Len(t, s.PerStage, types.LastStage)
	assert.Equal(t, 0, s.PerStage[types.StageRequirementUpdate])
	assert.Equal(t, 1, s.PerStage[types.StageTesting])
	assert.Equal(t, 1, s.PerStage[types.StageMISIntegration])

	require.Len(t, s.Recent, 12)
	assert.Equal(t, "SN-012", s.Recent[0].SerialNo)
	assert.Equal(t, "SN-001", s.Recent[11].SerialNo)
}

func TestSummaryTracksMutations(t *testing.T) {
	r := setupRepository(t)

	_, err := r.Create(types.RequirementPayload{
		PostedBy:      "Admin",
		SystemName:    "Ticket Desk",
		ProcessSystem: "Web App",
	})
	require.NoError(t, err)

	s := r.Summary()
	assert.Equal(t, 13, s.Total)
	assert.Equal(t, 2, s.PerStage[types.StageRequirementUnderstanding])
	assert.Equal(t, "SN-013", s.Recent[0].SerialNo)
}

func TestSummaryIsReadOnly(t *testing.T) {
	r := setupRepository(t)

	first := r.Summary()
	second := r.Summary()

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.PerStage, second.PerStage)
	assert.Equal(t, first.Active, second.Active)
	assert.Equal(t, first.Completed, second.Completed)
	assert.Len(t, r.All(), 12)
}
