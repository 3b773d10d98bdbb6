package tracker

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsforge/conveyor/internal/blobstore"
	"github.com/opsforge/conveyor/pkg/types"
)

// setupStore creates an attached blob store over a temp data directory.
func setupStore(t *testing.T) *blobstore.Store {
	t.Helper()
	s := blobstore.New()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, s.Attach(config))
	t.Cleanup(func() { s.Detach() })
	return s
}

// setupRepository opens a repository over a fresh store with a fixed
// clock, so creation dates are deterministic.
func setupRepository(t *testing.T) *Repository {
	t.Helper()
	r := Open(setupStore(t))
	r.now = func() time.Time {
		return time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC)
	}
	return r
}

func TestOpenSeedsEmptyStore(t *testing.T) {
	r := setupRepository(t)

	items := r.All()
	require.Len(t, items, 12)
	assert.Equal(t, "SN-001", items[0].SerialNo)
	assert.Equal(t, "SN-012", items[11].SerialNo)

	// The seed spans the full pipeline, one item pending at every stage
	// past intake plus two fully completed systems.
	assert.Equal(t, types.StageDone, items[0].CurrentStage)
	assert.Equal(t, types.StageDone, items[1].CurrentStage)
	assert.Equal(t, types.StageRequirementUnderstanding, items[11].CurrentStage)

	for _, item := range items {
		assert.NotEmpty(t, item.ItemID)
		assert.NotEmpty(t, item.SystemName())
		assert.Contains(t, item.History, types.StageRequirementUpdate)
	}

	users := r.Users()
	require.Len(t, users, 2)
	assert.Equal(t, types.RoleAdmin, users[0].Role)
	assert.Equal(t, types.RoleClient, users[1].Role)
}

func TestSeedHistoryMatchesStage(t *testing.T) {
	r := setupRepository(t)

	// History[s] is present exactly for the stages the item has passed.
	for _, item := range r.All() {
		for _, s := range types.Stages() {
			if s < item.CurrentStage {
				assert.Contains(t, item.History, s, "%s stage %d", item.SerialNo, s)
			} else {
				assert.NotContains(t, item.History, s, "%s stage %d", item.SerialNo, s)
			}
		}
	}
}

func TestOpenSeedPersists(t *testing.T) {
	store := setupStore(t)

	Open(store)

	raw, ok := store.Get(types.KeyItems)
	require.True(t, ok)
	var persisted []*types.TrackedItem
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Len(t, persisted, 12)
}

func TestCreate(t *testing.T) {
	r := setupRepository(t)

	item, err := r.Create(types.RequirementPayload{
		PostedBy:      "Admin User",
		SystemName:    "Leave Tracker",
		ProcessSystem: "Web App",
		Reason:        "Track annual leave.",
	})
	require.NoError(t, err)

	assert.Equal(t, "SN-013", item.SerialNo)
	assert.Regexp(t, regexp.MustCompile(`^SN-\d{3}$`), item.SerialNo)
	assert.Equal(t, "01/02/2025", item.RequirementDate)
	assert.Equal(t, types.StageRequirementUnderstanding, item.CurrentStage)

	rec := item.StageRecord(types.StageRequirementUpdate)
	require.NotNil(t, rec)
	assert.Equal(t, "Leave Tracker", rec["systemName"])
	assert.Equal(t, "01/02/2025", rec["requirementDate"])
	assert.Equal(t, "Admin User", item.PostedBy())

	found, ok := r.Find("SN-013")
	require.True(t, ok)
	assert.Same(t, item, found)
}

func TestCreateRejectsInvalidIntake(t *testing.T) {
	r := setupRepository(t)

	_, err := r.Create(types.RequirementPayload{ProcessSystem: "Web App"})
	assert.ErrorIs(t, err, types.ErrFieldRequired)
	assert.Len(t, r.All(), 12)
}

func TestCreateSerialsIncrease(t *testing.T) {
	r := setupRepository(t)

	for i, want := range []string{"SN-013", "SN-014", "SN-015"} {
		item, err := r.Create(types.RequirementPayload{
			SystemName:    "System",
			ProcessSystem: "Tool",
			PostedBy:      "Admin",
		})
		require.NoError(t, err, "create %d", i)
		assert.Equal(t, want, item.SerialNo)
	}
}

func TestAdvance(t *testing.T) {
	r := setupRepository(t)

	// SN-008 is seeded pending at testing.
	err := r.Advance("SN-008", types.StageTesting, types.TestingPayload{
		TestedBy:      "QA",
		TestingResult: "Fail",
		BugCount:      3,
		BugNotes:      "Login broken on mobile.",
		TestingDate:   "01/02/2025",
	})
	require.NoError(t, err)

	item, ok := r.Find("SN-008")
	require.True(t, ok)
	assert.Equal(t, types.StageCodeReview, item.CurrentStage)

	rec := item.StageRecord(types.StageTesting)
	require.NotNil(t, rec)
	assert.Equal(t, "Fail", rec["testingResult"])
	assert.Equal(t, float64(3), rec["bugCount"])
}

func TestAdvanceRejectsInvalidPayload(t *testing.T) {
	r := setupRepository(t)

	err := r.Advance("SN-008", types.StageTesting, types.TestingPayload{
		TestedBy:      "QA",
		TestingResult: "Flaky",
		TestingDate:   "01/02/2025",
	})
	assert.ErrorIs(t, err, types.ErrInvalidChoice)

	item, ok := r.Find("SN-008")
	require.True(t, ok)
	assert.Equal(t, types.StageTesting, item.CurrentStage)
	assert.Nil(t, item.StageRecord(types.StageTesting))
}

func TestAdvanceUnknownSerialIsNoOp(t *testing.T) {
	r := setupRepository(t)

	err := r.Advance("SN-999", types.StageTesting, types.TestingPayload{
		TestedBy:      "QA",
		TestingResult: "Pass",
		TestingDate:   "01/02/2025",
	})
	assert.NoError(t, err)
	assert.Len(t, r.All(), 12)
}

func TestAdvanceMergesRepeatedSubmissions(t *testing.T) {
	r := setupRepository(t)

	require.NoError(t, r.Advance("SN-008", types.StageTesting, types.TestingPayload{
		TestedBy:      "QA",
		TestingResult: "Fail",
		BugCount:      3,
		TestingDate:   "01/02/2025",
	}))
	require.NoError(t, r.Advance("SN-008", types.StageTesting, types.TestingPayload{
		TestedBy:      "QA",
		TestingResult: "Pass",
		TestingDate:   "02/02/2025",
		BugNotes:      "Retest after fixes.",
	}))

	item, ok := r.Find("SN-008")
	require.True(t, ok)
	assert.Equal(t, types.StageCodeReview, item.CurrentStage)

	rec := item.StageRecord(types.StageTesting)
	assert.Equal(t, "Pass", rec["testingResult"])
	assert.Equal(t, "02/02/2025", rec["testingDate"])
	assert.Equal(t, "Retest after fixes.", rec["bugNotes"])
}

func TestAdvanceTrustsCallerStage(t *testing.T) {
	r := setupRepository(t)

	// SN-012 is pending at stage 2; a caller holding a stale view of the
	// item advances from the stage it passed, not the live one.
	require.NoError(t, r.Advance("SN-012", types.StageFinalDesignApproval, types.ApprovalPayload{
		FinalApprovalBy: "Client",
		ApprovalStatus:  "Approved",
	}))

	item, ok := r.Find("SN-012")
	require.True(t, ok)
	assert.Equal(t, types.StageTesting, item.CurrentStage)
	assert.NotNil(t, item.StageRecord(types.StageFinalDesignApproval))
}

func TestAdvanceLastStageCompletes(t *testing.T) {
	r := setupRepository(t)

	// SN-003 is seeded pending at MIS integration.
	require.NoError(t, r.Advance("SN-003", types.StageMISIntegration, types.IntegrationPayload{
		MISIntegratedBy:   "Data Team",
		MISModuleName:     "Finance",
		IntegrationStatus: "Completed",
		ReportingEnabled:  "Yes",
	}))

	item, ok := r.Find("SN-003")
	require.True(t, ok)
	assert.True(t, item.Completed())
	assert.Equal(t, types.StageDone, item.CurrentStage)
}

func TestPendingAt(t *testing.T) {
	r := setupRepository(t)

	pending := r.PendingAt(types.StageTesting)
	require.Len(t, pending, 1)
	assert.Equal(t, "SN-008", pending[0].SerialNo)

	assert.Empty(t, r.PendingAt(types.StageRequirementUpdate))
}

func TestCompletedPast(t *testing.T) {
	r := setupRepository(t)

	past := r.CompletedPast(types.StageTesting)
	require.Len(t, past, 7)
	for _, item := range past {
		assert.Greater(t, item.CurrentStage, types.StageTesting)
	}

	// Intake is satisfied by creation, so stage 1 covers everything.
	assert.Len(t, r.CompletedPast(types.FirstStage), 12)
}

func TestPendingAndPastAreDisjoint(t *testing.T) {
	r := setupRepository(t)

	for _, stage := range types.Stages() {
		past := make(map[string]bool)
		for _, item := range r.CompletedPast(stage) {
			past[item.SerialNo] = true
		}
		if stage == types.FirstStage {
			continue
		}
		for _, item := range r.PendingAt(stage) {
			assert.False(t, past[item.SerialNo],
				"%s both pending at and past stage %d", item.SerialNo, stage)
		}
	}
}

func TestPersistRoundTrip(t *testing.T) {
	store := setupStore(t)
	r := Open(store)

	require.NoError(t, r.Advance("SN-008", types.StageTesting, types.TestingPayload{
		TestedBy:      "QA",
		TestingResult: "Pass",
		BugCount:      2,
		TestingDate:   "01/02/2025",
	}))

	r2 := Open(store)

	want, err := json.Marshal(r.All())
	require.NoError(t, err)
	got, err := json.Marshal(r2.All())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))

	item, ok := r2.Find("SN-008")
	require.True(t, ok)
	assert.Equal(t, types.StageCodeReview, item.CurrentStage)
}

func TestReset(t *testing.T) {
	store := setupStore(t)
	r := Open(store)

	r.Reset()
	assert.Empty(t, r.All())
	_, ok := store.Get(types.KeyItems)
	assert.False(t, ok)

	// The next open reseeds from scratch.
	r2 := Open(store)
	assert.Len(t, r2.All(), 12)
}

func TestExport(t *testing.T) {
	r := setupRepository(t)

	var buf bytes.Buffer
	require.NoError(t, r.Export(&buf))

	var exported []*types.TrackedItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &exported))
	assert.Len(t, exported, 12)
	assert.Equal(t, "SN-001", exported[0].SerialNo)
}

func TestSetActor(t *testing.T) {
	store := setupStore(t)
	r := Open(store)

	assert.Empty(t, r.CurrentActor())

	r.SetActor("Admin User")
	assert.Equal(t, "Admin User", r.CurrentActor())

	// The actor survives a reopen.
	r2 := Open(store)
	assert.Equal(t, "Admin User", r2.CurrentActor())
}

func TestSetActorUnknownName(t *testing.T) {
	r := setupRepository(t)

	r.SetActor("Visiting Consultant")
	assert.Equal(t, "Visiting Consultant", r.CurrentActor())
}
