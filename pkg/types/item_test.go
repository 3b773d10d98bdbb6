package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testItem() *TrackedItem {
	return &TrackedItem{
		ItemID:          "0192f0c1-0000-7000-8000-000000000001",
		SerialNo:        "SN-001",
		RequirementDate: "01/01/2025",
		CurrentStage:    StageTesting,
		History: map[int]Record{
			StageRequirementUpdate: {
				"postedBy":      "Admin",
				"systemName":    "HR Portal",
				"processSystem": "Web App",
				"reason":        "Automate payroll.",
				"anyLink":       "https://example.com/hrms",
			},
			StageFinalDesignApproval: {
				"finalApprovalBy": "Client",
				"approvalStatus":  "Approved",
			},
		},
	}
}

func TestItemDerivedFields(t *testing.T) {
	item := testItem()

	assert.Equal(t, "HR Portal", item.SystemName())
	assert.Equal(t, "Web App", item.ProcessSystem())
	assert.Equal(t, "Automate payroll.", item.Reason())
	assert.Equal(t, "https://example.com/hrms", item.AnyLink())
	assert.Equal(t, "Admin", item.PostedBy())
}

func TestItemDerivedFieldsDegradeToEmpty(t *testing.T) {
	item := &TrackedItem{SerialNo: "SN-002"}
	assert.Empty(t, item.SystemName())
	assert.Empty(t, item.PostedBy())

	item.History = map[int]Record{
		StageRequirementUpdate: {"systemName": 42},
	}
	assert.Empty(t, item.SystemName())
}

func TestItemStageRecord(t *testing.T) {
	item := testItem()

	rec := item.StageRecord(StageFinalDesignApproval)
	assert.Equal(t, "Approved", rec["approvalStatus"])
	assert.Nil(t, item.StageRecord(StageGoLive))
}

func TestItemStagePredicates(t *testing.T) {
	item := testItem()

	assert.True(t, item.PendingAt(StageTesting))
	assert.False(t, item.PendingAt(StageCodeReview))
	assert.True(t, item.PastStage(StageFinalDesignApproval))
	assert.False(t, item.PastStage(StageTesting))
	assert.False(t, item.Completed())

	item.CurrentStage = StageDone
	assert.True(t, item.Completed())
	assert.True(t, item.PastStage(StageMISIntegration))
}
