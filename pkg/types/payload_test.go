package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload StagePayload
		wantErr error
	}{
		{
			name:    "requirement intake valid",
			payload: RequirementPayload{PostedBy: "Admin", SystemName: "HR Portal", ProcessSystem: "Web App"},
		},
		{
			name:    "requirement intake missing system name",
			payload: RequirementPayload{ProcessSystem: "Web App"},
			wantErr: ErrFieldRequired,
		},
		{
			name:    "requirement intake missing process system",
			payload: RequirementPayload{SystemName: "HR Portal"},
			wantErr: ErrFieldRequired,
		},
		{
			name:    "understanding valid",
			payload: UnderstandingPayload{RequirementUnderstandingBy: "BA"},
		},
		{
			name:    "understanding missing who",
			payload: UnderstandingPayload{Remarks: "clear"},
			wantErr: ErrFieldRequired,
		},
		{
			name:    "sample design missing url",
			payload: SampleDesignPayload{DesignCreateBy: "UX"},
			wantErr: ErrFieldRequired,
		},
		{
			name:    "design update valid",
			payload: DesignUpdatePayload{TakeUpdateFrom: "Client"},
		},
		{
			name:    "approval valid",
			payload: ApprovalPayload{FinalApprovalBy: "Client", ApprovalStatus: "Approved"},
		},
		{
			name:    "approval bad status",
			payload: ApprovalPayload{FinalApprovalBy: "Client", ApprovalStatus: "Maybe"},
			wantErr: ErrInvalidChoice,
		},
		{
			name:    "approval empty status reads as missing",
			payload: ApprovalPayload{FinalApprovalBy: "Client"},
			wantErr: ErrFieldRequired,
		},
		{
			name:    "testing valid",
			payload: TestingPayload{TestedBy: "QA", TestingResult: "Fail", BugCount: 3, TestingDate: "20/01/2025"},
		},
		{
			name:    "testing bad result",
			payload: TestingPayload{TestedBy: "QA", TestingResult: "Flaky", TestingDate: "20/01/2025"},
			wantErr: ErrInvalidChoice,
		},
		{
			name:    "testing missing date",
			payload: TestingPayload{TestedBy: "QA", TestingResult: "Pass"},
			wantErr: ErrFieldRequired,
		},
		{
			name:    "review valid",
			payload: ReviewPayload{ReviewedBy: "Lead", CodeQualityRating: "Good", SecurityCheck: "Pass"},
		},
		{
			name:    "review bad rating",
			payload: ReviewPayload{ReviewedBy: "Lead", CodeQualityRating: "Stellar", SecurityCheck: "Pass"},
			wantErr: ErrInvalidChoice,
		},
		{
			name:    "training valid",
			payload: TrainingPayload{TrainingGivenBy: "Trainer", TrainingMode: "Hybrid", UserReadiness: "Ready"},
		},
		{
			name:    "training bad mode",
			payload: TrainingPayload{TrainingGivenBy: "Trainer", TrainingMode: "Telepathic", UserReadiness: "Ready"},
			wantErr: ErrInvalidChoice,
		},
		{
			name: "go live valid",
			payload: GoLivePayload{
				GoLiveDoneBy: "DevOps", DeploymentType: "Pilot",
				GoLiveDate: "28/01/2025", PostGoLiveStatus: "Smooth",
			},
		},
		{
			name: "go live missing date",
			payload: GoLivePayload{
				GoLiveDoneBy: "DevOps", DeploymentType: "Pilot", PostGoLiveStatus: "Smooth",
			},
			wantErr: ErrFieldRequired,
		},
		{
			name:    "indexing valid",
			payload: IndexingPayload{IndexedBy: "Admin", SystemCategory: "Automation", IndexReferenceCode: "AI-01"},
		},
		{
			name:    "indexing missing reference code",
			payload: IndexingPayload{IndexedBy: "Admin", SystemCategory: "Automation"},
			wantErr: ErrFieldRequired,
		},
		{
			name: "integration valid",
			payload: IntegrationPayload{
				MISIntegratedBy: "Data Team", MISModuleName: "Payroll",
				IntegrationStatus: "Partial", ReportingEnabled: "No",
			},
		},
		{
			name: "integration bad reporting flag",
			payload: IntegrationPayload{
				MISIntegratedBy: "Data Team", MISModuleName: "Payroll",
				IntegrationStatus: "Partial", ReportingEnabled: "Perhaps",
			},
			wantErr: ErrInvalidChoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPayloadStageIDs(t *testing.T) {
	payloads := []StagePayload{
		RequirementPayload{},
		UnderstandingPayload{},
		SampleDesignPayload{},
		DesignUpdatePayload{},
		ApprovalPayload{},
		TestingPayload{},
		ReviewPayload{},
		TrainingPayload{},
		GoLivePayload{},
		IndexingPayload{},
		IntegrationPayload{},
	}

	require.Len(t, payloads, LastStage)
	for i, p := range payloads {
		assert.Equal(t, i+1, p.StageID())
	}
}

func TestPayloadRecordFieldNames(t *testing.T) {
	rec, err := PayloadRecord(TestingPayload{
		TestedBy:      "QA",
		TestingResult: "Fail",
		BugCount:      3,
		TestingDate:   "20/01/2025",
	})
	require.NoError(t, err)

	assert.Equal(t, "QA", rec["testedBy"])
	assert.Equal(t, "Fail", rec["testingResult"])
	assert.Equal(t, float64(3), rec["bugCount"])
	assert.Equal(t, "20/01/2025", rec["testingDate"])
	assert.NotContains(t, rec, "bugNotes")
}

func TestChoiceSetDefaults(t *testing.T) {
	// The first entry of each choice set is the form default.
	sets := [][]string{
		ApprovalStatuses, TestingResults, QualityRatings, SecurityResults,
		TrainingModes, ReadinessLevels, DeploymentTypes, PostGoLiveStates,
		SystemCategories, IntegrationStates, YesNo,
	}
	for _, set := range sets {
		require.NotEmpty(t, set)
	}
}
