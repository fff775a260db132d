package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cpcf/scaffold/engine"
)

var (
	ColorCyan   = lipgloss.Color("14")
	ColorGreen  = lipgloss.Color("82")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("204")
)

var (
	StyleNoun    = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleDim     = lipgloss.NewStyle().Faint(true)
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// OutcomeStyle returns the style used to print a template outcome.
func OutcomeStyle(outcome engine.Outcome) lipgloss.Style {
	switch outcome {
	case engine.Generated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case engine.SkippedExists, engine.SkippedNoOutput:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case engine.SkippedTagMismatch:
		return StyleDim
	case engine.SkippedError:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatResult renders one line per template, e.g. "✔ generated  Product.txt".
func FormatResult(r engine.FileResult) string {
	mark := "•"
	if r.Outcome == engine.Generated {
		mark = "✔"
	} else if r.Outcome == engine.SkippedError {
		mark = "✘"
	}

	target := r.Output
	if target == "" {
		target = r.Template
	}

	line := fmt.Sprintf("%s %-20s %s", mark, r.Outcome.String(), StyleNoun.Render(target))
	if r.Err != nil {
		line += StyleDim.Render(": " + r.Err.Error())
	}
	return OutcomeStyle(r.Outcome).Render(line)
}

// FormatSummary renders the per-template lines followed by the totals.
func FormatSummary(s *engine.Summary) string {
	var b strings.Builder
	for _, r := range s.Files {
		b.WriteString(FormatResult(r))
		b.WriteString("\n")
	}
	b.WriteString(StyleSummary.Render(fmt.Sprintf("Generation completed for %s: %d generated, %d skipped",
		s.Entity, s.Generated(), s.Skipped())))
	b.WriteString("\n")
	return b.String()
}
