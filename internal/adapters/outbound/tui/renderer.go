package tui

import (
	"fmt"
	"strings"

	"github.com/ccwkit/ccwkit/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	bodyStyle = lipgloss.NewStyle().
			Foreground(fg).
			Width(64).
			PaddingLeft(2)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	highStyle  = lipgloss.NewStyle().Foreground(success)
	midStyle   = lipgloss.NewStyle().Foreground(warning)
	lowStyle   = lipgloss.NewStyle().Foreground(danger)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

const barWidth = 20

// RenderReport formats an assessment report for terminal output:
// the resolved profile, the per-dimension pattern with bars and levels,
// and the profile's suggestions.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("ccwkit")
	subtitle := dimStyle.Render(report.CatalogName)
	profile := lipgloss.NewStyle().Bold(true).Foreground(success).Render(report.Profile.Title)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + profile))
	b.WriteString("\n\n")

	if report.Profile.Description != "" {
		b.WriteString(bodyStyle.Render(strings.TrimSpace(report.Profile.Description)))
		b.WriteString("\n\n")
	}
	if report.Fallback {
		b.WriteString("  " + faintStyle.Render(fmt.Sprintf("no profile mapped for %s; showing the default", report.ProfileKey)))
		b.WriteString("\n\n")
	}

	// ── Pattern ──
	b.WriteString("  " + titleStyle.Render("Your pattern"))
	b.WriteString("\n\n")
	for _, entry := range report.Ranking {
		renderEntry(&b, entry, report.Scale)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Suggestions ──
	if len(report.Profile.Suggestions) > 0 {
		b.WriteString("  " + titleStyle.Render("Suggestions"))
		b.WriteString("\n\n")
		for _, s := range report.Profile.Suggestions {
			b.WriteString("    " + dimStyle.Render("•") + " " + s + "\n")
		}
		b.WriteString("\n")
	}

	if report.CatalogHash != "" {
		hash := report.CatalogHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString("  " + faintStyle.Render("catalog "+hash) + "\n")
	}

	return b.String()
}

func renderEntry(b *strings.Builder, entry domain.RankedEntry, scale domain.Scale) {
	name := nameStyle.Render(padRight(entry.Label, 16))
	bar := scoreBar(entry.Average, scale)
	avg := dimStyle.Render(fmt.Sprintf("%.2f", entry.Average))
	level := levelStyle(entry.Level).Render(padRight(entry.Level, 4))

	fmt.Fprintf(b, "  %s %s  %s  %s\n", name, bar, avg, level)
}

// scoreBar fills proportionally to the average's position on the scale.
func scoreBar(avg float64, scale domain.Scale) string {
	span := float64(scale.Max - scale.Min)
	fraction := 0.0
	if span > 0 {
		fraction = (avg - float64(scale.Min)) / span
	}
	filled := max(0, min(int(fraction*barWidth+0.5), barWidth))
	empty := barWidth - filled

	color := success
	switch {
	case fraction < 0.3:
		color = danger
	case fraction < 0.6:
		color = warning
	}

	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func levelStyle(level string) lipgloss.Style {
	switch level {
	case domain.LevelHigh:
		return highStyle
	case domain.LevelLow:
		return lowStyle
	default:
		return midStyle
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats past report entries for terminal output.
func RenderHistory(entries []domain.ReportEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No report history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Report History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CatalogHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			nameStyle.Render(e.ProfileID),
			dimStyle.Render(strings.Join(e.Top, " + ")),
		)
	}

	return b.String()
}
