// Package observability provides formatted terminal output for CLI results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/internship-recommender/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
)

// Printer handles formatted output of recommendation results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a summary of the profile being scored.
func (p *Printer) PrintProfile(profile *types.LearnerProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Education: %s\n", profile.Education))
	sb.WriteString(fmt.Sprintf("Skills:    %s\n", profile.Skills))
	sb.WriteString(fmt.Sprintf("Interests: %s", profile.Interests))
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("\nLocation:  %s", profile.Location))
	}
	if profile.Age != nil {
		sb.WriteString(fmt.Sprintf("\nAge:       %d", *profile.Age))
	}

	p.printBox("Learner Profile", sb.String())
}

// PrintRecommendations outputs the ranked recommendation list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(p.out, "No matches found. Try broadening your skills or location keywords.")
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s (score %.2f)\n", rec.Rank, rec.Career, rec.Score))
		for _, line := range wrap(rec.Rationale, boxWidth-8) {
			sb.WriteString(fmt.Sprintf("   %s\n", line))
		}
	}

	p.printBox(fmt.Sprintf("Top %d Recommendations", len(recs)), strings.TrimRight(sb.String(), "\n"))
}

// wrap breaks text into lines no longer than width runes, on word
// boundaries where possible.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return lines
}
