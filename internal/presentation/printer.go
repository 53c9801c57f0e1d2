package presentation

import (
	"fmt"
	"io"
	"time"

	"exifstamp/internal/domain"
	appErrors "exifstamp/internal/errors"
)

const dateLayout = "2006-01-02 15:04:05"

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// PrintReport writes the outcome of a sync run.
func (p Printer) PrintReport(report domain.Report) {
	if report.Capture == nil {
		if err := report.Err(); err != nil {
			fmt.Fprintln(p.Writer, appErrors.UserMessage(err))
		}
		fmt.Fprintf(p.Writer, "No changes made to %s.\n", report.Path)
		return
	}

	for _, line := range reportLines(report) {
		fmt.Fprintln(p.Writer, line)
	}

	if p.Verbose {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "Steps:")
		for _, s := range report.Steps {
			line := fmt.Sprintf("- %-16s %s", s.Step, s.Status)
			if s.Err != nil {
				line += ": " + s.Err.Error()
			}
			fmt.Fprintln(p.Writer, line)
		}
	}
}

// PrintInspection writes what is known about a file without describing changes.
func (p Printer) PrintInspection(report domain.Report) {
	fmt.Fprintf(p.Writer, "File:          %s\n", report.Path)
	if report.Capture == nil {
		fmt.Fprintf(p.Writer, "Capture date:  unknown\n")
		if err := report.Err(); err != nil {
			fmt.Fprintln(p.Writer, appErrors.UserMessage(err))
		}
		return
	}
	fmt.Fprintf(p.Writer, "Capture date:  %s\n", formatDate(report.Capture))
	fmt.Fprintf(p.Writer, "Modified:      %s\n", orUnknown(formatDate(report.Modified)))
	fmt.Fprintf(p.Writer, "Created:       %s\n", orUnknown(formatDate(report.Created)))
	if report.Modified != nil {
		verdict := "consistent"
		if !report.Consistent {
			verdict = "modification date predates capture date"
		}
		fmt.Fprintf(p.Writer, "Check:         %s\n", verdict)
	}
}

func reportLines(report domain.Report) []string {
	var lines []string
	verb := "set to"
	if report.DryRun {
		verb = "would be set to"
	}

	if res, ok := report.Result(domain.StepCheck); ok && res.Status == domain.StatusWarn {
		lines = append(lines, fmt.Sprintf("Modification date %s of %s is earlier than its capture date %s.",
			formatDate(report.Modified), report.Path, formatDate(report.Capture)))
	}

	for _, step := range []domain.Step{domain.StepSetModification, domain.StepSetCreation} {
		res, ok := report.Result(step)
		if !ok {
			continue
		}
		label := "Creation date"
		if step == domain.StepSetModification {
			label = "Modification date"
		}
		switch res.Status {
		case domain.StatusOK, domain.StatusPlanned:
			lines = append(lines, fmt.Sprintf("%s of %s %s %s.", label, report.Path, verb, res.Time.Format(domain.ToolLayout)))
		case domain.StatusFailed:
			lines = append(lines, appErrors.UserMessage(res.Err))
		}
	}

	if err := firstEarlyFailure(report); err != nil {
		lines = append(lines, appErrors.UserMessage(err))
	}
	return lines
}

// firstEarlyFailure returns an inspect failure, which stops before any write step.
func firstEarlyFailure(report domain.Report) error {
	if res, ok := report.Result(domain.StepInspect); ok && res.Status == domain.StatusFailed {
		return res.Err
	}
	return nil
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(dateLayout)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
