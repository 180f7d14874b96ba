// Package report renders a career recommendation into the export formats
// offered on the results screen: a plain-text report, a short share
// summary, and a mailto link.
package report

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"pathfinder-backend/internal/careers"
)

const divider = "═══════════════════════════════════════════════════════════════"

// BuildTextReport assembles the downloadable plain-text report.
func BuildTextReport(rec *careers.CareerRecommendation, generatedAt time.Time, origin string) string {
	var b strings.Builder

	b.WriteString("CAREER PATH ASSESSMENT RESULTS\n")
	b.WriteString("Generated: " + generatedAt.Format("2006-01-02") + "\n\n")
	b.WriteString(divider + "\n\n")

	b.WriteString("WHY THESE CAREERS FIT YOU\n")
	b.WriteString(rec.Explanation + "\n\n")
	b.WriteString(divider + "\n\n")

	b.WriteString("PRIMARY CAREER RECOMMENDATIONS\n\n")
	for i, career := range rec.PrimaryCareers {
		writeCareer(&b, i+1, career)
	}
	b.WriteString(divider + "\n\n")

	b.WriteString("ACTION PLAN\n\n")
	b.WriteString("Next 90 Days:\n")
	for i, item := range rec.ActionPlan.Next90Days {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\nNext 6 Months:\n")
	for i, item := range rec.ActionPlan.Next6Months {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n" + divider + "\n\n")

	b.WriteString("POSITIONING STRATEGY\n\n")
	writeBullets(&b, "Local Jobs:", rec.PositioningStrategy.LocalJobs)
	writeBullets(&b, "Remote Jobs:", rec.PositioningStrategy.RemoteJobs)
	writeBullets(&b, "Portfolio & Proof:", rec.PositioningStrategy.Portfolio)
	writeBullets(&b, "Online Presence:", rec.PositioningStrategy.OnlinePresence)
	b.WriteString(divider + "\n\n")

	b.WriteString("Generated by CareerPath AI - " + origin + "\n")
	return b.String()
}

func writeCareer(b *strings.Builder, rank int, career careers.Career) {
	fmt.Fprintf(b, "%d. %s\n\n", rank, strings.ToUpper(career.Title))
	b.WriteString("Description:\n" + career.Description + "\n\n")
	b.WriteString("Why This Fits:\n" + career.FitReason + "\n\n")
	writeBullets(b, "Required Skills:", career.RequiredSkills)
	writeBullets(b, "Required Education:", career.RequiredEducation)
	b.WriteString("Tools:\n" + strings.Join(career.Tools, ", ") + "\n\n")
	if career.SalaryRange != "" {
		b.WriteString("Salary Range: " + career.SalaryRange + "\n")
	}
	b.WriteString("Growth Potential: " + career.GrowthPotential + "\n\n")
	b.WriteString("Daily Routine:\n")
	b.WriteString("Morning: " + strings.Join(career.DailyRoutine.Morning, ", ") + "\n")
	b.WriteString("Afternoon: " + strings.Join(career.DailyRoutine.Afternoon, ", ") + "\n")
	b.WriteString("Evening: " + strings.Join(career.DailyRoutine.Evening, ", ") + "\n\n")
}

func writeBullets(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading + "\n")
	for _, item := range items {
		b.WriteString("• " + item + "\n")
	}
	b.WriteString("\n")
}

// BuildShareText composes the short summary used by clipboard copy, native
// share, and the mailto link: first primary career's title, description,
// and up to three required skills, plus a referral link.
func BuildShareText(rec *careers.CareerRecommendation, origin string) string {
	if len(rec.PrimaryCareers) == 0 {
		return "I just discovered my ideal career path!\n\nFind your path at: " + origin
	}
	primary := rec.PrimaryCareers[0]
	skills := primary.RequiredSkills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	return fmt.Sprintf("I just discovered my ideal career path!\n\nPrimary Career: %s\n\n%s\n\nSkills needed: %s\n\nFind your path at: %s",
		primary.Title, primary.Description, strings.Join(skills, ", "), origin)
}

// MailtoLink builds a mailto URL prefilled with the share summary.
func MailtoLink(rec *careers.CareerRecommendation, origin string) string {
	subject := url.QueryEscape("My Career Path Assessment Results")
	body := url.QueryEscape(BuildShareText(rec, origin))
	return "mailto:?subject=" + subject + "&body=" + body
}

// TextFileName names the downloaded report after the generation date.
func TextFileName(generatedAt time.Time) string {
	return "career-path-" + generatedAt.Format("2006-01-02") + ".txt"
}
