package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Payload validation errors.
var (
	ErrFieldRequired = errors.New("required field is empty")
	ErrInvalidChoice = errors.New("value is not an allowed choice")
)

// StagePayload is the tagged-variant interface over the eleven per-stage
// field sets. Each variant knows its stage and validates its own
// required fields before any repository mutation.
type StagePayload interface {
	// StageID returns the stage this payload completes.
	StageID() int

	// Validate checks required fields and choice-field membership.
	// It returns a wrapped ErrFieldRequired or ErrInvalidChoice naming
	// the offending field, or nil.
	Validate() error
}

// Choice sets for the enumerated stage fields. The first entry of each
// set is the form default.
var (
	ApprovalStatuses  = []string{"Approved", "Changes Required"}
	TestingResults    = []string{"Pass", "Fail"}
	QualityRatings    = []string{"Excellent", "Good", "Average", "Poor"}
	SecurityResults   = []string{"Pass", "Fail"}
	TrainingModes     = []string{"Online", "Offline", "Hybrid"}
	ReadinessLevels   = []string{"Ready", "Needs Support"}
	DeploymentTypes   = []string{"Production", "Pilot", "Beta"}
	PostGoLiveStates  = []string{"Smooth", "Issues Found"}
	SystemCategories  = []string{"Internal Tool", "Client System", "Automation"}
	IntegrationStates = []string{"Completed", "Partial", "Failed"}
	YesNo             = []string{"Yes", "No"}
)

// required returns a wrapped ErrFieldRequired when value is empty.
func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrFieldRequired, field)
	}
	return nil
}

// oneOf returns a wrapped ErrInvalidChoice when value is not a member of
// choices. Empty values are reported as missing rather than invalid.
func oneOf(field, value string, choices []string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrFieldRequired, field)
	}
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return fmt.Errorf("%w: %s=%q", ErrInvalidChoice, field, value)
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// PayloadRecord converts a payload variant into the Record stored under
// the item's history for that stage.
func PayloadRecord(p StagePayload) (Record, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding stage %d payload: %w", p.StageID(), err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding stage %d payload: %w", p.StageID(), err)
	}
	return rec, nil
}

// RequirementPayload is the stage-1 intake form.
type RequirementPayload struct {
	PostedBy      string `json:"postedBy"`
	SystemName    string `json:"systemName"`
	ProcessSystem string `json:"processSystem"`
	Reason        string `json:"reason"`
	AnyLink       string `json:"anyLink,omitempty"`
}

func (p RequirementPayload) StageID() int { return StageRequirementUpdate }

func (p RequirementPayload) Validate() error {
	return firstError(
		required("systemName", p.SystemName),
		required("processSystem", p.ProcessSystem),
	)
}

// UnderstandingPayload records stage 2, requirement understanding.
type UnderstandingPayload struct {
	RequirementUnderstandingBy string `json:"requirementUnderstandingBy"`
	UploadImage                string `json:"uploadImage,omitempty"`
	Remarks                    string `json:"remarks,omitempty"`
}

func (p UnderstandingPayload) StageID() int { return StageRequirementUnderstanding }

func (p UnderstandingPayload) Validate() error {
	return required("requirementUnderstandingBy", p.RequirementUnderstandingBy)
}

// SampleDesignPayload records stage 3, sample design.
type SampleDesignPayload struct {
	DesignCreateBy  string `json:"designCreateBy"`
	DesignExplainTo string `json:"designExplainTo,omitempty"`
	URLOfDesign     string `json:"urlOfDesign"`
}

func (p SampleDesignPayload) StageID() int { return StageSampleDesign }

func (p SampleDesignPayload) Validate() error {
	return firstError(
		required("designCreateBy", p.DesignCreateBy),
		required("urlOfDesign", p.URLOfDesign),
	)
}

// DesignUpdatePayload records stage 4, design update.
type DesignUpdatePayload struct {
	TakeUpdateFrom string `json:"takeUpdateFrom"`
	Remarks        string `json:"remarks,omitempty"`
}

func (p DesignUpdatePayload) StageID() int { return StageDesignUpdate }

func (p DesignUpdatePayload) Validate() error {
	return required("takeUpdateFrom", p.TakeUpdateFrom)
}

// ApprovalPayload records stage 5, final design approval.
type ApprovalPayload struct {
	FinalApprovalBy string `json:"finalApprovalBy"`
	ApprovalStatus  string `json:"approvalStatus"`
	FinalRemarks    string `json:"finalRemarks,omitempty"`
}

func (p ApprovalPayload) StageID() int { return StageFinalDesignApproval }

func (p ApprovalPayload) Validate() error {
	return firstError(
		required("finalApprovalBy", p.FinalApprovalBy),
		oneOf("approvalStatus", p.ApprovalStatus, ApprovalStatuses),
	)
}

// TestingPayload records stage 6, testing.
type TestingPayload struct {
	TestedBy      string `json:"testedBy"`
	TestingResult string `json:"testingResult"`
	BugCount      int    `json:"bugCount"`
	BugNotes      string `json:"bugNotes,omitempty"`
	TestingDate   string `json:"testingDate"` // DD/MM/YYYY
}

func (p TestingPayload) StageID() int { return StageTesting }

func (p TestingPayload) Validate() error {
	return firstError(
		required("testedBy", p.TestedBy),
		oneOf("testingResult", p.TestingResult, TestingResults),
		required("testingDate", p.TestingDate),
	)
}

// ReviewPayload records stage 7, code review.
type ReviewPayload struct {
	ReviewedBy        string `json:"reviewedBy"`
	CodeQualityRating string `json:"codeQualityRating"`
	SecurityCheck     string `json:"securityCheck"`
	PerformanceNotes  string `json:"performanceNotes,omitempty"`
	ReviewRemarks     string `json:"reviewRemarks,omitempty"`
}

func (p ReviewPayload) StageID() int { return StageCodeReview }

func (p ReviewPayload) Validate() error {
	return firstError(
		required("reviewedBy", p.ReviewedBy),
		oneOf("codeQualityRating", p.CodeQualityRating, QualityRatings),
		oneOf("securityCheck", p.SecurityCheck, SecurityResults),
	)
}

// TrainingPayload records stage 8, user training.
type TrainingPayload struct {
	TrainingGivenBy  string `json:"trainingGivenBy"`
	TrainingMode     string `json:"trainingMode"`
	TrainingDuration string `json:"trainingDuration,omitempty"` // hours
	TrainingFeedback string `json:"trainingFeedback,omitempty"`
	UserReadiness    string `json:"userReadiness"`
}

func (p TrainingPayload) StageID() int { return StageUserTraining }

func (p TrainingPayload) Validate() error {
	return firstError(
		required("trainingGivenBy", p.TrainingGivenBy),
		oneOf("trainingMode", p.TrainingMode, TrainingModes),
		oneOf("userReadiness", p.UserReadiness, ReadinessLevels),
	)
}

// GoLivePayload records stage 9, go live.
type GoLivePayload struct {
	GoLiveDoneBy        string `json:"goLiveDoneBy"`
	DeploymentType      string `json:"deploymentType"`
	GoLiveDate          string `json:"goLiveDate"` // DD/MM/YYYY
	PostGoLiveStatus    string `json:"postGoLiveStatus"`
	InitialSupportNotes string `json:"initialSupportNotes,omitempty"`
}

func (p GoLivePayload) StageID() int { return StageGoLive }

func (p GoLivePayload) Validate() error {
	return firstError(
		required("goLiveDoneBy", p.GoLiveDoneBy),
		oneOf("deploymentType", p.DeploymentType, DeploymentTypes),
		required("goLiveDate", p.GoLiveDate),
		oneOf("postGoLiveStatus", p.PostGoLiveStatus, PostGoLiveStates),
	)
}

// IndexingPayload records stage 10, system indexing.
type IndexingPayload struct {
	IndexedBy          string `json:"indexedBy"`
	SystemCategory     string `json:"systemCategory"`
	IndexReferenceCode string `json:"indexReferenceCode"`
	DocumentationLink  string `json:"documentationLink,omitempty"`
}

func (p IndexingPayload) StageID() int { return StageSystemIndexing }

func (p IndexingPayload) Validate() error {
	return firstError(
		required("indexedBy", p.IndexedBy),
		oneOf("systemCategory", p.SystemCategory, SystemCategories),
		required("indexReferenceCode", p.IndexReferenceCode),
	)
}

// IntegrationPayload records stage 11, MIS integration.
type IntegrationPayload struct {
	MISIntegratedBy    string `json:"misIntegratedBy"`
	MISModuleName      string `json:"misModuleName"`
	IntegrationStatus  string `json:"integrationStatus"`
	MISReferenceID     string `json:"misReferenceId,omitempty"`
	ReportingEnabled   string `json:"reportingEnabled"`
	IntegrationRemarks string `json:"integrationRemarks,omitempty"`
}

func (p IntegrationPayload) StageID() int { return StageMISIntegration }

func (p IntegrationPayload) Validate() error {
	return firstError(
		required("misIntegratedBy", p.MISIntegratedBy),
		required("misModuleName", p.MISModuleName),
		oneOf("integrationStatus", p.IntegrationStatus, IntegrationStates),
		oneOf("reportingEnabled", p.ReportingEnabled, YesNo),
	)
}
