package types

import "errors"

// Record holds the field values submitted when a stage was completed.
// Keys are the wire field names of that stage's payload.
type Record map[string]any

// TrackedItem is one submitted system-development request. SerialNo is
// the user-facing identifier assigned at creation and never reassigned.
// History is the authoritative per-stage record: History[s] is present
// for every stage s the item has completed.
type TrackedItem struct {
	ItemID          string         `json:"itemId"`
	SerialNo        string         `json:"serialNo"`
	RequirementDate string         `json:"requirementDate"` // DD/MM/YYYY
	CurrentStage    int            `json:"currentStage"`
	History         map[int]Record `json:"history"`
}

// Item errors.
var (
	ErrItemNotFound = errors.New("tracked item not found")
)

// StageRecord returns the recorded field values for a stage, or nil when
// the item has not completed that stage.
func (t *TrackedItem) StageRecord(stage int) Record {
	return t.History[stage]
}

// stringField reads a string-valued field from a stage record. Missing
// stages, missing keys, and non-string values yield "".
func (t *TrackedItem) stringField(stage int, key string) string {
	rec, ok := t.History[stage]
	if !ok {
		return ""
	}
	s, _ := rec[key].(string)
	return s
}

// Display fields derive from the intake record; History stays the sole
// source of truth.

// SystemName returns the system name recorded at intake.
func (t *TrackedItem) SystemName() string {
	return t.stringField(StageRequirementUpdate, "systemName")
}

// ProcessSystem returns the process/system category recorded at intake.
func (t *TrackedItem) ProcessSystem() string {
	return t.stringField(StageRequirementUpdate, "processSystem")
}

// Reason returns the intake reason.
func (t *TrackedItem) Reason() string {
	return t.stringField(StageRequirementUpdate, "reason")
}

// AnyLink returns the optional reference link recorded at intake.
func (t *TrackedItem) AnyLink() string {
	return t.stringField(StageRequirementUpdate, "anyLink")
}

// PostedBy returns the name of the actor who posted the request.
func (t *TrackedItem) PostedBy() string {
	return t.stringField(StageRequirementUpdate, "postedBy")
}

// Completed reports whether the item has cleared the last defined stage.
func (t *TrackedItem) Completed() bool {
	return t.CurrentStage >= StageDone
}

// PendingAt reports whether the item is awaiting action at the given stage.
func (t *TrackedItem) PendingAt(stage int) bool {
	return t.CurrentStage == stage
}

// PastStage reports whether the item has completed the given stage.
func (t *TrackedItem) PastStage(stage int) bool {
	return t.CurrentStage > stage
}
