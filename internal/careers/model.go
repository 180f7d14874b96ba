package careers

// UserResponses is the complete questionnaire answer set submitted for
// analysis. Selected-option fields carry opaque identifiers from the option
// catalogs; the server does not validate membership.
type UserResponses struct {
	ThinkingStyles      []string `json:"thinkingStyles"`
	CustomThinkingStyle string   `json:"customThinkingStyle,omitempty"`

	Interests      []string `json:"interests"`
	CustomInterest string   `json:"customInterest,omitempty"`

	Skills       []string `json:"skills"`
	CustomSkills string   `json:"customSkills,omitempty"`

	HasUniversity  bool   `json:"hasUniversity"`
	Degrees        string `json:"degrees,omitempty"`
	Certifications string `json:"certifications,omitempty"`
	EducationUse   string `json:"educationUse"`

	WorkEnvironments []string `json:"workEnvironments"`
	Priorities       []string `json:"priorities"`
	CustomPriority   string   `json:"customPriority,omitempty"`

	Location             string `json:"location,omitempty"`
	LearningHours        string `json:"learningHours,omitempty"`
	FinancialConstraints string `json:"financialConstraints,omitempty"`
	WillingToRetrain     bool   `json:"willingToRetrain"`
	OtherConstraints     string `json:"otherConstraints,omitempty"`
}

// EducationUse values accepted from the questionnaire.
const (
	EducationUseCentral     = "central"
	EducationUseSupportive  = "supportive"
	EducationUseBackup      = "backup"
	EducationUseNotRelevant = "not-relevant"
)

// CareerRecommendation is the full result payload returned to the client.
//
// The service itself returns the model's JSON untouched after a shallow
// shape-check; this type exists for consumers that want typed access
// (the questionnaire client, the report renderer).
type CareerRecommendation struct {
	PrimaryCareers      []Career            `json:"primaryCareers"`
	AlternativeCareers  []Career            `json:"alternativeCareers"`
	Explanation         string              `json:"explanation"`
	ActionPlan          ActionPlan          `json:"actionPlan"`
	PositioningStrategy PositioningStrategy `json:"positioningStrategy"`
}

// Career describes one recommended career path.
type Career struct {
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	FitReason         string        `json:"fitReason"`
	RequiredSkills    []string      `json:"requiredSkills"`
	RequiredEducation []string      `json:"requiredEducation"`
	Tools             []string      `json:"tools"`
	DailyRoutine      DailyRoutine  `json:"dailyRoutine"`
	WeeklyRoutine     WeeklyRoutine `json:"weeklyRoutine"`
	SalaryRange       string        `json:"salaryRange,omitempty"`
	GrowthPotential   string        `json:"growthPotential"`
}

type DailyRoutine struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

type WeeklyRoutine struct {
	Learning   string `json:"learning"`
	Practice   string `json:"practice"`
	Networking string `json:"networking"`
	Reflection string `json:"reflection"`
}

type ActionPlan struct {
	Next90Days  []string `json:"next90Days"`
	Next6Months []string `json:"next6Months"`
}

type PositioningStrategy struct {
	LocalJobs        []string `json:"localJobs"`
	RemoteJobs       []string `json:"remoteJobs"`
	Internships      []string `json:"internships"`
	Freelancing      []string `json:"freelancing"`
	Entrepreneurship []string `json:"entrepreneurship"`
	Portfolio        []string `json:"portfolio"`
	OnlinePresence   []string `json:"onlinePresence"`
}
