package careers

import (
	_ "embed"
	"strings"
)

//go:embed prompts/career_analysis.txt
var analysisTemplate string

// BuildAnalysisPrompt renders a UserResponses record into the analysis
// instruction string sent to the model. Pure and total: absent optional
// fields are omitted from the rendered profile rather than rendered empty.
func BuildAnalysisPrompt(r UserResponses) string {
	profile := buildProfile(r)
	return strings.NewReplacer("{{USER_PROFILE}}", profile).Replace(analysisTemplate)
}

func buildProfile(r UserResponses) string {
	var b strings.Builder

	b.WriteString("Thinking & Work Style: ")
	b.WriteString(joinWithCustom(r.ThinkingStyles, r.CustomThinkingStyle))
	b.WriteString("\n\n")

	b.WriteString("Interest Areas: ")
	b.WriteString(joinWithCustom(r.Interests, r.CustomInterest))
	b.WriteString("\n\n")

	b.WriteString("Current Skills: ")
	b.WriteString(joinWithCustom(r.Skills, r.CustomSkills))
	b.WriteString("\n\n")

	b.WriteString("Education:\n")
	b.WriteString("- University: " + yesNo(r.HasUniversity) + "\n")
	if r.Degrees != "" {
		b.WriteString("- Degrees: " + r.Degrees + "\n")
	}
	if r.Certifications != "" {
		b.WriteString("- Certifications: " + r.Certifications + "\n")
	}
	b.WriteString("- Education Use: " + r.EducationUse + "\n\n")

	b.WriteString("Work Environment Preferences: ")
	b.WriteString(strings.Join(r.WorkEnvironments, ", "))
	b.WriteString("\n\n")

	b.WriteString("Top Priorities: ")
	b.WriteString(joinWithCustom(r.Priorities, r.CustomPriority))
	b.WriteString("\n\n")

	b.WriteString("Constraints & Context:\n")
	if r.Location != "" {
		b.WriteString("- Location: " + r.Location + "\n")
	}
	if r.LearningHours != "" {
		b.WriteString("- Available Learning Hours: " + r.LearningHours + "\n")
	}
	if r.FinancialConstraints != "" {
		b.WriteString("- Financial Constraints: " + r.FinancialConstraints + "\n")
	}
	b.WriteString("- Willing to Retrain: " + yesNo(r.WillingToRetrain))
	if r.OtherConstraints != "" {
		b.WriteString("\n- Other: " + r.OtherConstraints)
	}

	return b.String()
}

func joinWithCustom(selected []string, custom string) string {
	joined := strings.Join(selected, ", ")
	if custom != "" {
		if joined != "" {
			return joined + " + " + custom
		}
		return custom
	}
	return joined
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
