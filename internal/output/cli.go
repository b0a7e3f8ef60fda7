package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/timecalc"
	"github.com/manav03panchal/worklog/internal/tracker"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleProject = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTask = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleDuration = lipgloss.NewStyle().
			Bold(true)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// PrintEntries renders a table of entries.
func (c *CLIFormatter) PrintEntries(entries []*model.WorkEntry) {
	if len(entries) == 0 {
		c.Muted("No entries found.")
		return
	}

	c.Printf("%-10s  %-11s  %-24s %-20s %-16s %s\n",
		"DATE", "TIME", "TASK", "PROJECT", "CATEGORY", "DURATION")

	total := 0
	for _, e := range entries {
		task := truncate(e.TaskName, 24)
		project := truncate(e.ProjectName, 20)
		category := truncate(e.Category, 16)
		duration := timecalc.FormatDuration(e.DurationSeconds)
		if c.IsColorEnabled() {
			task = styleTask.Render(fmt.Sprintf("%-24s", task))
			project = styleProject.Render(fmt.Sprintf("%-20s", project))
			duration = styleDuration.Render(duration)
			c.Printf("%-10s  %s-%s  %s %s %-16s %s\n",
				e.WorkDate, e.StartTime.HHMM(), e.EndTime.HHMM(),
				task, project, category, duration)
		} else {
			c.Printf("%-10s  %s-%s  %-24s %-20s %-16s %s\n",
				e.WorkDate, e.StartTime.HHMM(), e.EndTime.HHMM(),
				task, project, category, duration)
		}
		total += e.DurationSeconds
	}

	c.Println()
	c.Printf("%d entries, %s total\n", len(entries), timecalc.FormatDuration(total))
}

// PrintSummary renders a grouped report with percentage bars sized to
// the terminal.
func (c *CLIFormatter) PrintSummary(summary *tracker.Summary) {
	if len(summary.Items) == 0 {
		c.Muted("No entries in range.")
		return
	}

	barWidth := c.Width() - 50
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}

	for _, item := range summary.Items {
		filled := int(item.Percentage / 100 * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		name := truncate(item.Name, 20)
		if c.IsColorEnabled() {
			bar = styleProject.Render(bar)
		}
		c.Printf("%-20s %s %6.1f%%  %s\n",
			name, bar, item.Percentage, timecalc.FormatDuration(item.Seconds))
	}

	c.Println()
	c.Printf("Total: %s\n", timecalc.FormatDuration(summary.TotalSeconds))
}

// truncate shortens a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
