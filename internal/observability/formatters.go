// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/rishi/placement-autofill/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSnapshot outputs a summary of the parsed form.
func (p *Printer) PrintSnapshot(snapshot *types.FormSnapshot) {
	if snapshot == nil {
		return
	}

	var sb strings.Builder
	if snapshot.Title != "" {
		sb.WriteString(fmt.Sprintf("Title: %s\n", snapshot.Title))
	}
	sb.WriteString(fmt.Sprintf("Controls: %d\n\n", len(snapshot.Controls)))

	count := min(len(snapshot.Controls), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := snapshot.Controls[i]
		label := c.CombinedLabel()
		if len(label) > 38 {
			label = label[:35] + "..."
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s", c.Type, label))
		if len(c.Options) > 0 {
			sb.WriteString(fmt.Sprintf(" (%d options)", len(c.Options)))
		}
		sb.WriteString("\n")
	}
	if len(snapshot.Controls) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more controls\n", len(snapshot.Controls)-maxItemsToShow))
	}

	p.printBox("FORM SNAPSHOT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidates outputs the assembled fill candidates with scores and
// review flags.
func (p *Printer) PrintCandidates(candidates []types.Candidate, relaxed bool) {
	if len(candidates) == 0 {
		p.printBox("FILL CANDIDATES", "No candidates matched")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d questions", len(candidates)))
	if relaxed {
		sb.WriteString(" (relaxed pass)")
	}
	sb.WriteString("\n\n")

	for i := range candidates {
		c := &candidates[i]
		label := c.Label
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", label))

		value := candidateValue(c)
		if len(value) > 40 {
			value = value[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  → %s\n", value))

		flag := ""
		if c.LowConfidence() {
			flag = "  REVIEW"
		}
		sb.WriteString(fmt.Sprintf("  key=%s score=%d%s\n", keyOrDash(c.Key), c.Score, flag))
		if i < len(candidates)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FILL CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUnmatched outputs the questions that produced no candidate.
func (p *Printer) PrintUnmatched(snapshot *types.FormSnapshot, candidates []types.Candidate) {
	if snapshot == nil {
		return
	}

	matched := make(map[string]bool, len(candidates))
	for i := range candidates {
		matched[candidates[i].RootID] = true
	}

	var sb strings.Builder
	for i := range snapshot.Controls {
		c := &snapshot.Controls[i]
		if matched[c.RootID] {
			continue
		}
		label := c.CombinedLabel()
		if strings.TrimSpace(label) == "" {
			continue
		}
		if len(label) > 44 {
			label = label[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", c.Type, label))
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("UNMATCHED QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func candidateValue(c *types.Candidate) string {
	switch c.Type {
	case types.ControlText:
		return c.Value
	case types.ControlSelect:
		if c.Chosen != nil {
			return c.Chosen.Label
		}
	case types.ControlRadio:
		return c.ChosenLabel
	case types.ControlCheckbox:
		return strings.Join(c.ChosenLabels, ", ")
	}
	return ""
}

func keyOrDash(key string) string {
	if key == "" {
		return "-"
	}
	return key
}
