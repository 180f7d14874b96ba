package report

import (
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"pathfinder-backend/internal/careers"
)

func sampleRecommendation() *careers.CareerRecommendation {
	return &careers.CareerRecommendation{
		PrimaryCareers: []careers.Career{
			{
				Title:             "Data Analyst",
				Description:       "Turn raw data into decisions.",
				FitReason:         "Logical profile with data skills.",
				RequiredSkills:    []string{"SQL", "Excel", "Statistics", "Python"},
				RequiredEducation: []string{"None"},
				Tools:             []string{"Tableau", "dbt"},
				DailyRoutine: careers.DailyRoutine{
					Morning:   []string{"review dashboards"},
					Afternoon: []string{"build reports"},
					Evening:   []string{"learn"},
				},
				SalaryRange:     "$50,000 - $90,000",
				GrowthPotential: "Senior analyst within 3 years",
			},
		},
		Explanation: "Your logical thinking style fits analytical work.",
		ActionPlan: careers.ActionPlan{
			Next90Days:  []string{"Finish a SQL course", "Build one dashboard"},
			Next6Months: []string{"Apply to junior roles"},
		},
		PositioningStrategy: careers.PositioningStrategy{
			LocalJobs:      []string{"Target regional firms"},
			RemoteJobs:     []string{"Browse remote boards"},
			Portfolio:      []string{"Publish two projects"},
			OnlinePresence: []string{"Update LinkedIn"},
		},
	}
}

func TestBuildTextReportSections(t *testing.T) {
	rec := sampleRecommendation()
	generated := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	report := BuildTextReport(rec, generated, "https://pathfinder.example")

	for _, want := range []string{
		"CAREER PATH ASSESSMENT RESULTS",
		"Generated: 2026-08-30",
		"WHY THESE CAREERS FIT YOU",
		"Your logical thinking style fits analytical work.",
		"1. DATA ANALYST",
		"• SQL",
		"Salary Range: $50,000 - $90,000",
		"ACTION PLAN",
		"1. Finish a SQL course",
		"POSITIONING STRATEGY",
		"• Target regional firms",
		"Generated by CareerPath AI - https://pathfinder.example",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("expected %q in report:\n%s", want, report)
		}
	}
}

func TestBuildTextReportOmitsEmptySalary(t *testing.T) {
	rec := sampleRecommendation()
	rec.PrimaryCareers[0].SalaryRange = ""

	report := BuildTextReport(rec, time.Now(), "https://pathfinder.example")
	if strings.Contains(report, "Salary Range:") {
		t.Fatalf("expected salary line omitted when absent")
	}
}

func TestBuildShareTextTopThreeSkills(t *testing.T) {
	text := BuildShareText(sampleRecommendation(), "https://pathfinder.example")

	if !strings.Contains(text, "Primary Career: Data Analyst") {
		t.Fatalf("expected primary career title, got:\n%s", text)
	}
	if !strings.Contains(text, "Skills needed: SQL, Excel, Statistics") {
		t.Fatalf("expected top-3 skills, got:\n%s", text)
	}
	if strings.Contains(text, "Python") {
		t.Fatalf("expected fourth skill excluded")
	}
	if !strings.Contains(text, "Find your path at: https://pathfinder.example") {
		t.Fatalf("expected referral link")
	}
}

func TestBuildShareTextNoPrimaryCareers(t *testing.T) {
	rec := &careers.CareerRecommendation{Explanation: "fit"}
	text := BuildShareText(rec, "https://pathfinder.example")
	if !strings.Contains(text, "https://pathfinder.example") {
		t.Fatalf("expected referral link even without careers")
	}
}

func TestMailtoLink(t *testing.T) {
	link := MailtoLink(sampleRecommendation(), "https://pathfinder.example")

	if !strings.HasPrefix(link, "mailto:?subject=") {
		t.Fatalf("expected mailto prefix, got %q", link)
	}
	parts := strings.SplitN(link, "&body=", 2)
	if len(parts) != 2 {
		t.Fatalf("expected body parameter, got %q", link)
	}
	body, err := url.QueryUnescape(parts[1])
	if err != nil {
		t.Fatalf("unescape body: %v", err)
	}
	if !strings.Contains(body, "Data Analyst") {
		t.Fatalf("expected share text in body, got %q", body)
	}
}

func TestTextFileName(t *testing.T) {
	generated := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if got := TextFileName(generated); got != "career-path-2026-08-30.txt" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestPickSuggestionsDeterministic(t *testing.T) {
	first := PickSuggestions(42, 6)
	second := PickSuggestions(42, 6)

	if len(first) != 6 {
		t.Fatalf("expected 6 suggestions, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic shuffle for identical seed")
	}

	seen := make(map[string]struct{}, len(first))
	for _, s := range first {
		if _, dup := seen[s.Title]; dup {
			t.Fatalf("duplicate suggestion %q", s.Title)
		}
		seen[s.Title] = struct{}{}
	}
}

func TestPickSuggestionsClampsCount(t *testing.T) {
	all := PickSuggestions(1, 100)
	if len(all) != len(allSuggestions) {
		t.Fatalf("expected clamp to pool size %d, got %d", len(allSuggestions), len(all))
	}
}
