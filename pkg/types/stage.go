package types

// Stage identifiers. A tracked item moves through these in order, one
// step per completed action. StageDone marks an item that has cleared
// the final stage.
const (
	StageRequirementUpdate        = 1
	StageRequirementUnderstanding = 2
	StageSampleDesign             = 3
	StageDesignUpdate             = 4
	StageFinalDesignApproval      = 5
	StageTesting                  = 6
	StageCodeReview               = 7
	StageUserTraining             = 8
	StageGoLive                   = 9
	StageSystemIndexing           = 10
	StageMISIntegration           = 11

	// StageDone is the sentinel one past the last defined stage. An item
	// whose CurrentStage reaches StageDone is fully complete.
	StageDone = 12
)

// FirstStage and LastStage bound the defined stage identifiers.
const (
	FirstStage = StageRequirementUpdate
	LastStage  = StageMISIntegration
)

// stageNames maps stage identifiers to their display names.
var stageNames = map[int]string{
	StageRequirementUpdate:        "Requirement Update",
	StageRequirementUnderstanding: "Requirement Understanding",
	StageSampleDesign:             "Sample Design",
	StageDesignUpdate:             "Design Update",
	StageFinalDesignApproval:      "Final Design Approval",
	StageTesting:                  "Testing",
	StageCodeReview:               "Code Review",
	StageUserTraining:             "User Training",
	StageGoLive:                   "Go Live",
	StageSystemIndexing:           "System Indexing",
	StageMISIntegration:           "MIS Integration",
}

// StageName returns the display name for a stage identifier, or the
// empty string when the identifier names no defined stage.
func StageName(id int) string {
	return stageNames[id]
}

// ValidStage reports whether id names one of the defined stages.
func ValidStage(id int) bool {
	return id >= FirstStage && id <= LastStage
}

// Stages returns the defined stage identifiers in order.
func Stages() []int {
	ids := make([]int, 0, LastStage)
	for id := FirstStage; id <= LastStage; id++ {
		ids = append(ids, id)
	}
	return ids
}
