// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-validator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintResume outputs a human-readable summary of the normalized resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	contact := resume.ContactInformation
	sb.WriteString(fmt.Sprintf("Name:    %s %s\n", contact.FirstName, contact.LastName))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", contact.Email))
	sb.WriteString(fmt.Sprintf("Country: %s\n", contact.Country))
	sb.WriteString("\n")

	if len(resume.WorkHistory) > 0 {
		sb.WriteString("Work History:\n")
		count := min(len(resume.WorkHistory), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := resume.WorkHistory[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s", item.PositionOrTitle, item.CompanyName))
			if item.Duration != nil {
				sb.WriteString(fmt.Sprintf(" (%s – %s)", item.Duration.Start, item.Duration.End))
			}
			sb.WriteString("\n")
		}
		if len(resume.WorkHistory) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.WorkHistory)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.EducationHistory) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.EducationHistory), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := resume.EducationHistory[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", item.Degree, item.Institution))
		}
		sb.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %d listed\n", len(resume.Skills)))
	}

	p.printBox("Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintReport outputs a human-readable summary of the validation report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil || len(report.Violations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Errors:   %d\n", len(report.Errors())))
	sb.WriteString(fmt.Sprintf("Warnings: %d\n", len(report.Warnings())))
	sb.WriteString("\n")

	count := min(len(report.Violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := report.Violations[i]
		sb.WriteString(fmt.Sprintf("  • [%s] %s\n", v.Kind, v.Path))
	}
	if len(report.Violations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Violations)-maxItemsToShow))
	}

	p.printBox("Validation Report", strings.TrimRight(sb.String(), "\n"))
}
