package report

import "math/rand"

// Suggestion is one of the static "other options" cards shown alongside the
// recommendations.
type Suggestion struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
	Difficulty  string `json:"difficulty"`
}

var allSuggestions = []Suggestion{
	{Title: "Freelance Consulting", Category: "Entrepreneurship", Description: "Leverage your expertise to advise others while maintaining flexibility", Timeframe: "3-6 months", Difficulty: "Moderate"},
	{Title: "Content Creation", Category: "Digital Media", Description: "Build an audience by sharing knowledge in your field through videos, blogs, or podcasts", Timeframe: "6-12 months", Difficulty: "Moderate"},
	{Title: "Online Teaching", Category: "Education", Description: "Create courses or tutor others in your areas of expertise", Timeframe: "1-3 months", Difficulty: "Easy"},
	{Title: "Product Development", Category: "Innovation", Description: "Build your own digital or physical products to solve problems you understand", Timeframe: "6-12 months", Difficulty: "Challenging"},
	{Title: "Community Building", Category: "Social Impact", Description: "Start a community, newsletter, or network in your industry", Timeframe: "3-6 months", Difficulty: "Moderate"},
	{Title: "Technical Writing", Category: "Communication", Description: "Document processes, create guides, or write about your industry", Timeframe: "1-3 months", Difficulty: "Easy"},
	{Title: "Affiliate Marketing", Category: "Digital Business", Description: "Promote products and services you believe in while earning commissions", Timeframe: "3-6 months", Difficulty: "Moderate"},
	{Title: "Side Project Development", Category: "Innovation", Description: "Build apps, tools, or services that solve niche problems", Timeframe: "6-12 months", Difficulty: "Challenging"},
	{Title: "Career Coaching", Category: "Professional Services", Description: "Help others navigate career transitions in your field", Timeframe: "3-6 months", Difficulty: "Moderate"},
}

// PickSuggestions returns n cards from the static pool, shuffled with the
// given seed so a test run is deterministic.
func PickSuggestions(seed int64, n int) []Suggestion {
	pool := append([]Suggestion(nil), allSuggestions...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
