package tracker

import "github.com/opsforge/conveyor/pkg/types"

// seedUsers returns the starter user list installed when no persisted
// list exists.
func seedUsers() []types.User {
	return []types.User{
		{ID: "U-001", Name: "Admin User", Role: types.RoleAdmin, Password: "admin123"},
		{ID: "U-002", Name: "Client User", Role: types.RoleClient, Password: "client123"},
	}
}

// seedItems returns the starter dataset installed when the persisted
// collection is absent or empty: twelve requests spanning every stage,
// from two fully completed systems down to one fresh intake.
func seedItems() []*types.TrackedItem {
	items := []*types.TrackedItem{
		{
			SerialNo: "SN-001", RequirementDate: "01/01/2025", CurrentStage: types.StageDone,
			History: map[int]types.Record{
				1:  {"postedBy": "Admin", "systemName": "HR Management Portal", "processSystem": "Web App", "reason": "Automate payroll and attendance.", "anyLink": "https://example.com/hrms", "requirementDate": "01/01/2025"},
				2:  {"requirementUnderstandingBy": "Admin", "remarks": "Clear requirements gathered from HR layer.", "uploadImage": "https://via.placeholder.com/150"},
				3:  {"designCreateBy": "Admin", "designExplainTo": "HR Manager", "urlOfDesign": "https://figma.com/sample1"},
				4:  {"takeUpdateFrom": "Client", "remarks": "Design approved with minor tweaks regarding color scheme."},
				5:  {"finalApprovalBy": "Client", "approvalStatus": "Approved", "finalRemarks": "Proceed to development immediately."},
				6:  {"testedBy": "QA Team", "testingResult": "Pass", "bugCount": 0, "bugNotes": "No critical bugs found.", "testingDate": "15/01/2025"},
				7:  {"reviewedBy": "Lead Dev", "codeQualityRating": "Excellent", "securityCheck": "Pass", "performanceNotes": "Optimized for 10k users.", "reviewRemarks": "Code is clean and modular."},
				8:  {"trainingGivenBy": "Admin", "trainingMode": "Online", "trainingDuration": "4", "trainingFeedback": "Users understood the flow well.", "userReadiness": "Ready"},
				9:  {"goLiveDoneBy": "DevOps", "deploymentType": "Production", "goLiveDate": "20/01/2025", "postGoLiveStatus": "Smooth", "initialSupportNotes": "Monitoring for 24 hours."},
				10: {"indexedBy": "Admin", "systemCategory": "Internal Tool", "indexReferenceCode": "HR-2025-01", "documentationLink": "https://docs.internal/hr"},
				11: {"misIntegratedBy": "Data Team", "misModuleName": "Payroll", "integrationStatus": "Completed", "misReferenceId": "MIS-HR-01", "reportingEnabled": "Yes", "integrationRemarks": "Data syncing perfectly."},
			},
		},
		{
			SerialNo: "SN-002", RequirementDate: "02/01/2025", CurrentStage: types.StageDone,
			History: map[int]types.Record{
				1:  {"postedBy": "Manager", "systemName": "Customer Support Bot", "processSystem": "AI Tool", "reason": "Handle L1 customer queries automatically.", "anyLink": "https://example.com/bot", "requirementDate": "02/01/2025"},
				2:  {"requirementUnderstandingBy": "Admin", "remarks": "Understood flow for intents.", "uploadImage": ""},
				3:  {"designCreateBy": "Designer", "designExplainTo": "Ops Head", "urlOfDesign": "https://figma.com/bot"},
				4:  {"takeUpdateFrom": "Client", "remarks": "Added more intents for billing."},
				5:  {"finalApprovalBy": "Client", "approvalStatus": "Approved", "finalRemarks": "Looks good."},
				6:  {"testedBy": "QA", "testingResult": "Pass", "bugCount": 2, "bugNotes": "Minor UI glitches fixed.", "testingDate": "18/01/2025"},
				7:  {"reviewedBy": "Senior Dev", "codeQualityRating": "Good", "securityCheck": "Pass", "performanceNotes": "Response time < 200ms.", "reviewRemarks": "Standard adherence is good."},
				8:  {"trainingGivenBy": "Trainer", "trainingMode": "Hybrid", "trainingDuration": "8", "trainingFeedback": "AI responses were accurate.", "userReadiness": "Ready"},
				9:  {"goLiveDoneBy": "DevOps", "deploymentType": "Beta", "goLiveDate": "22/01/2025", "postGoLiveStatus": "Smooth", "initialSupportNotes": "Beta group active."},
				10: {"indexedBy": "Admin", "systemCategory": "Automation", "indexReferenceCode": "AI-2025-02", "documentationLink": "https://docs.internal/ai-bot"},
				11: {"misIntegratedBy": "Data Team", "misModuleName": "Support", "integrationStatus": "Completed", "misReferenceId": "MIS-SUP-02", "reportingEnabled": "Yes", "integrationRemarks": "Logs integrated."},
			},
		},
		{
			SerialNo: "SN-003", RequirementDate: "05/01/2025", CurrentStage: types.StageMISIntegration,
			History: map[int]types.Record{
				1:  {"postedBy": "CFO", "systemName": "Finance Dashboard", "processSystem": "Web App", "reason": "Visualize expenses and revenue.", "requirementDate": "05/01/2025"},
				2:  {"requirementUnderstandingBy": "BA", "remarks": "Key metrics identified.", "uploadImage": ""},
				3:  {"designCreateBy": "UX Lead", "designExplainTo": "Finance Team", "urlOfDesign": "https://figma.com/fin"},
				4:  {"takeUpdateFrom": "CFO", "remarks": "Add forecast charts."},
				5:  {"finalApprovalBy": "CFO", "approvalStatus": "Approved", "finalRemarks": "Perfect."},
				6:  {"testedBy": "QA", "testingResult": "Pass", "bugCount": 1, "bugNotes": "Data label fix.", "testingDate": "20/01/2025"},
				7:  {"reviewedBy": "Tech Lead", "codeQualityRating": "Excellent", "securityCheck": "Pass", "performanceNotes": "Query optimized.", "reviewRemarks": "Good job."},
				8:  {"trainingGivenBy": "Trainer", "trainingMode": "Offline", "trainingDuration": "2", "trainingFeedback": "Easy to use.", "userReadiness": "Ready"},
				9:  {"goLiveDoneBy": "DevOps", "deploymentType": "Production", "goLiveDate": "25/01/2025", "postGoLiveStatus": "Smooth", "initialSupportNotes": "None."},
				10: {"indexedBy": "Admin", "systemCategory": "Internal", "indexReferenceCode": "FIN-01", "documentationLink": "https://docs/fin"},
			},
		},
		{
			SerialNo: "SN-004", RequirementDate: "08/01/2025", CurrentStage: types.StageSystemIndexing,
			History: map[int]types.Record{
				1: {"postedBy": "Ops", "systemName": "Inventory Mobile App", "processSystem": "Mobile App", "reason": "Field staff usage for stock taking.", "requirementDate": "08/01/2025"},
				2: {"requirementUnderstandingBy": "Admin", "remarks": "Scanner integration needed.", "uploadImage": ""},
				3: {"designCreateBy": "UI", "designExplainTo": "Field Mgr", "urlOfDesign": "https://figma.com/inv"},
				4: {"takeUpdateFrom": "Ops", "remarks": "Bigger buttons for gloves."},
				5: {"finalApprovalBy": "Ops Head", "approvalStatus": "Approved", "finalRemarks": "Approved."},
				6: {"testedBy": "QA Mob", "testingResult": "Pass", "bugCount": 3, "bugNotes": "Camera permission fix.", "testingDate": "22/01/2025"},
				7: {"reviewedBy": "Mobile Lead", "codeQualityRating": "Good", "securityCheck": "Pass", "performanceNotes": "Battery efficient.", "reviewRemarks": "Clean."},
				8: {"trainingGivenBy": "Superv", "trainingMode": "On-site", "trainingDuration": "1", "trainingFeedback": "Fast.", "userReadiness": "Ready"},
				9: {"goLiveDoneBy": "DevOps", "deploymentType": "Production", "goLiveDate": "28/01/2025", "postGoLiveStatus": "Smooth", "initialSupportNotes": "Rollout started."},
			},
		},
		{
			SerialNo: "SN-005", RequirementDate: "10/01/2025", CurrentStage: types.StageGoLive,
			History: map[int]types.Record{
				1: {"postedBy": "HR", "systemName": "Employee Onboarding", "processSystem": "Workflow", "reason": "Streamline joining process.", "requirementDate": "10/01/2025"},
				2: {"requirementUnderstandingBy": "BA", "remarks": "Digital forms needed.", "uploadImage": ""},
				3: {"designCreateBy": "UX", "designExplainTo": "HR", "urlOfDesign": "https://figma.com/onboard"},
				4: {"takeUpdateFrom": "HR", "remarks": "Add document upload."},
				5: {"finalApprovalBy": "HR Head", "approvalStatus": "Approved", "finalRemarks": "Go."},
				6: {"testedBy": "QA", "testingResult": "Pass", "bugCount": 0, "bugNotes": "Clean.", "testingDate": "24/01/2025"},
				7: {"reviewedBy": "Lead", "codeQualityRating": "Good", "securityCheck": "Pass", "performanceNotes": "OK.", "reviewRemarks": "Standard."},
				8: {"trainingGivenBy": "HR Lead", "trainingMode": "Online", "trainingDuration": "3", "trainingFeedback": "Very intuitive.", "userReadiness": "Ready"},
			},
		},
		{
			SerialNo: "SN-006", RequirementDate: "12/01/2025", CurrentStage: types.StageUserTraining,
			History: map[int]types.Record{
				1: {"postedBy": "Sales", "systemName": "Sales CRM v2", "processSystem": "CRM", "reason": "Upgrade legacy system.", "requirementDate": "12/01/2025"},
				2: {"requirementUnderstandingBy": "BA", "remarks": "Pipeline view priority.", "uploadImage": ""},
				3: {"designCreateBy": "UX", "designExplainTo": "Sales Head", "urlOfDesign": "https://figma.com/crm"},
				4: {"takeUpdateFrom": "Sales", "remarks": "Mobile view critical."},
				5: {"finalApprovalBy": "Sales VP", "approvalStatus": "Approved", "finalRemarks": "Deploy ASAP."},
				6: {"testedBy": "QA", "testingResult": "Pass", "bugCount": 10, "bugNotes": "All critical fixed.", "testingDate": "26/01/2025"},
				7: {"reviewedBy": "Lead Dev", "codeQualityRating": "Good", "securityCheck": "Pass", "performanceNotes": "Database indexed.", "reviewRemarks": "Solid codebase."},
			},
		},
		{
			SerialNo: "SN-007", RequirementDate: "15/01/2025", CurrentStage: types.StageCodeReview,
			History: map[int]types.Record{
				1: {"postedBy": "Security", "systemName": "Visitor Gate Pass", "processSystem": "Kiosk", "reason": "Security tracking.", "requirementDate": "15/01/2025"},
				2: {"requirementUnderstandingBy": "Admin", "remarks": "Touchscreen interface.", "uploadImage": ""},
				3: {"designCreateBy": "UI", "designExplainTo": "Sec Head", "urlOfDesign": "https://figma.com/gate"},
				4: {"takeUpdateFrom": "Sec", "remarks": "Photo capture needed."},
				5: {"finalApprovalBy": "Admin", "approvalStatus": "Approved", "finalRemarks": "Approve."},
				6: {"testedBy": "QA 1", "testingResult": "Pass", "bugCount": 0, "bugNotes": "No bugs found.", "testingDate": "28/01/2025"},
			},
		},
		{
			SerialNo: "SN-008", RequirementDate: "18/01/2025", CurrentStage: types.StageTesting,
			History: map[int]types.Record{
				1: {"postedBy": "Admin", "systemName": "Meeting Room Booking", "processSystem": "Web App", "reason": "Avoid conflicts.", "requirementDate": "18/01/2025"},
				2: {"requirementUnderstandingBy": "Admin", "remarks": "Calendar view.", "uploadImage": ""},
				3: {"designCreateBy": "UX", "designExplainTo": "Admin", "urlOfDesign": "https://figma.com/meet"},
				4: {"takeUpdateFrom": "Staff", "remarks": "Outlook sync."},
				5: {"finalApprovalBy": "Office Admin", "approvalStatus": "Approved", "finalRemarks": "Approved for build."},
			},
		},
		{
			SerialNo: "SN-009", RequirementDate: "20/01/2025", CurrentStage: types.StageFinalDesignApproval,
			History: map[int]types.Record{
				1: {"postedBy": "IT", "systemName": "Asset Tracker", "processSystem": "Web App", "reason": "Laptop tracking.", "requirementDate": "20/01/2025"},
				2: {"requirementUnderstandingBy": "IT Admin", "remarks": "Serial scanning.", "uploadImage": ""},
				3: {"designCreateBy": "UI", "designExplainTo": "IT", "urlOfDesign": "https://figma.com/asset"},
				4: {"takeUpdateFrom": "IT Head", "remarks": "Added warranty alerts."},
			},
		},
		{
			SerialNo: "SN-010", RequirementDate: "22/01/2025", CurrentStage: types.StageDesignUpdate,
			History: map[int]types.Record{
				1: {"postedBy": "HR", "systemName": "Knowledge Base", "processSystem": "Wiki", "reason": "Documentation central.", "requirementDate": "22/01/2025"},
				2: {"requirementUnderstandingBy": "Content Lead", "remarks": "Searchable.", "uploadImage": ""},
				3: {"designCreateBy": "UX Team", "designExplainTo": "HR", "urlOfDesign": "https://figma.com/kb"},
			},
		},
		{
			SerialNo: "SN-011", RequirementDate: "24/01/2025", CurrentStage: types.StageSampleDesign,
			History: map[int]types.Record{
				1: {"postedBy": "HR", "systemName": "Performance Review", "processSystem": "Web App", "reason": "Yearly appraisal.", "requirementDate": "24/01/2025"},
				2: {"requirementUnderstandingBy": "Admin", "remarks": "Understood standard 360 flow.", "uploadImage": ""},
			},
		},
		{
			SerialNo: "SN-012", RequirementDate: "26/01/2025", CurrentStage: types.StageRequirementUnderstanding,
			History: map[int]types.Record{
				1: {"postedBy": "Admin", "systemName": "Event Planner", "processSystem": "Tool", "reason": "Company offsites.", "requirementDate": "26/01/2025"},
			},
		},
	}

	for _, item := range items {
		item.ItemID = generateItemID()
	}
	return items
}
