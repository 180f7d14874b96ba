package questionnaire

// Option is one selectable answer for a multi-choice question.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Category names a toggleable multi-select field on the answer set.
type Category string

const (
	CategoryThinkingStyles   Category = "thinkingStyles"
	CategoryInterests        Category = "interests"
	CategorySkills           Category = "skills"
	CategoryWorkEnvironments Category = "workEnvironments"
	CategoryPriorities       Category = "priorities"
)

// ThinkingStyles lists the fixed options for the work-style question.
var ThinkingStyles = []Option{
	{ID: "logical", Label: "Logical & Structured", Description: "Engineering, accounting, analysis"},
	{ID: "creative", Label: "Creative & Expressive", Description: "Design, writing, media"},
	{ID: "people-focused", Label: "People-Focused", Description: "Teaching, sales, counseling"},
	{ID: "hands-on", Label: "Hands-on & Practical", Description: "Mechanical work, construction, lab work"},
	{ID: "strategic", Label: "Strategic & Planning-Oriented", Description: "Management, research, operations"},
	{ID: "independent", Label: "Independent & Self-Directed", Description: "Freelancing, entrepreneurship"},
}

// InterestAreas lists the fixed options for the interests question.
var InterestAreas = []Option{
	{ID: "tech", Label: "Technology & Digital Tools", Description: "Software, IT, data, AI"},
	{ID: "business", Label: "Business & Entrepreneurship", Description: "Management, finance, sales"},
	{ID: "creative", Label: "Creative & Media", Description: "Design, film, music, content"},
	{ID: "health", Label: "Health & Life Sciences", Description: "Medicine, nursing, public health, biotech"},
	{ID: "education", Label: "Education & Training", Description: "Teaching, instructional design"},
	{ID: "sports", Label: "Sports & Physical Performance", Description: "Analysis, coaching, fitness"},
	{ID: "law", Label: "Law, Policy & Governance", Description: "Legal work, policy analysis"},
	{ID: "engineering", Label: "Engineering & Manufacturing", Description: "All engineering fields"},
	{ID: "agriculture", Label: "Agriculture & Environmental", Description: "Farming, sustainability, conservation"},
	{ID: "trades", Label: "Skilled Trades & Technical Crafts", Description: "Electrical, plumbing, carpentry"},
	{ID: "social-impact", Label: "Social Impact & Non-Profits", Description: "Community work, NGOs"},
	{ID: "research", Label: "Research & Academia", Description: "Scientific research, teaching"},
}

// SkillOptions lists the fixed options for the skills question.
var SkillOptions = []Option{
	{ID: "coding", Label: "Programming & Coding", Description: "Python, JavaScript, etc."},
	{ID: "data", Label: "Data Analysis", Description: "Excel, SQL, statistics"},
	{ID: "design", Label: "Design", Description: "Graphic, UI/UX, product"},
	{ID: "writing", Label: "Writing & Communication", Description: "Content, copywriting, technical"},
	{ID: "video", Label: "Video & Media Production", Description: "Editing, filming, animation"},
	{ID: "marketing", Label: "Marketing & Sales", Description: "Digital marketing, SEO, sales"},
	{ID: "finance", Label: "Finance & Accounting", Description: "Bookkeeping, analysis, planning"},
	{ID: "leadership", Label: "Leadership & Management", Description: "Team management, coordination"},
	{ID: "technical", Label: "Technical & Mechanical", Description: "Repair, machinery, tools"},
	{ID: "research", Label: "Research & Analysis", Description: "Investigation, critical thinking"},
}

// WorkEnvironments lists the fixed options for the environment question.
var WorkEnvironments = []Option{
	{ID: "remote", Label: "Remote / Global Work"},
	{ID: "office", Label: "Office-Based"},
	{ID: "field", Label: "Field-Based"},
	{ID: "shift", Label: "Shift Work"},
	{ID: "freelance", Label: "Freelance / Contract"},
	{ID: "entrepreneurial", Label: "Entrepreneurial"},
	{ID: "stable", Label: "Stable Employment"},
	{ID: "high-growth", Label: "High-Growth / High-Risk"},
}

// Priorities lists the fixed options for the priorities question.
var Priorities = []Option{
	{ID: "income", Label: "Income Growth"},
	{ID: "stability", Label: "Stability"},
	{ID: "flexibility", Label: "Flexibility"},
	{ID: "impact", Label: "Impact"},
	{ID: "prestige", Label: "Prestige"},
	{ID: "balance", Label: "Work-Life Balance"},
}

// EducationUseChoices lists the fixed options for the education-use question.
var EducationUseChoices = []Option{
	{ID: "central", Label: "Central to my career"},
	{ID: "supportive", Label: "Supportive but not required"},
	{ID: "backup", Label: "Backup option"},
	{ID: "not-relevant", Label: "Not relevant / Pivoting away"},
}
