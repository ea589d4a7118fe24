package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these when the output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// emit writes one line through c. Every helper goes through color.Output or
// color.Error so tests can redirect them.
func emit(w io.Writer, c *color.Color, format string, args ...any) {
	_, _ = c.Fprintf(w, format+"\n", args...)
}

// PrintSection prints a section header surrounded by blank lines.
func PrintSection(title string) {
	_, _ = fmt.Fprintln(color.Output)
	emit(color.Output, headerColor, "▸ %s", title)
	_, _ = fmt.Fprintln(color.Output)
}

// PrintSubsection prints an indented subsection header
func PrintSubsection(title string) {
	emit(color.Output, infoColor, "  %s", title)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	emit(color.Output, successColor, "✓ %s", msg)
}

// PrintWarning prints a warning or a follow-up notice
func PrintWarning(msg string) {
	emit(color.Output, warningColor, "⚠ %s", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	emit(color.Error, errorColor, "✗ %s", msg)
}

// PrintInfo prints an uncolored message
func PrintInfo(msg string) {
	_, _ = fmt.Fprintln(color.Output, msg)
}

// PrintLabelValue prints "label: value" with the label highlighted.
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Fprintf(color.Output, "  %s: ", label)
	emit(color.Output, dimColor, "%s", value)
}

// PrintList prints bullet points at the given indent level.
func PrintList(items []string, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, item := range items {
		emit(color.Output, infoColor, "%s• %s", pad, item)
	}
}

// PrintTable prints rows under headers, each column padded to its widest cell.
// Cells beyond the header count are dropped.
func PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	line := func(c *color.Color, cells []string) {
		padded := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		emit(color.Output, c, "  %s", strings.TrimRight(strings.Join(padded, "  "), " "))
	}

	line(headerColor, headers)
	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w)
	}
	line(dimColor, rules)
	for _, row := range rows {
		line(dimColor, row)
	}
}

// PrintEmptyState prints a dimmed message when there is nothing to list.
func PrintEmptyState(msg string) {
	emit(color.Output, dimColor, "  %s", msg)
}

// PrintCount formats count with the singular or plural noun.
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
