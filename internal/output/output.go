package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/bookindex/internal/pageindex"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for counts that need no attention
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for data-quality counts
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)

	// headerBoxStyle for the header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// busiestPages is how many pages the summary lists.
const busiestPages = 5

// FormatHeader renders the run header with the inputs being used.
func FormatHeader(w io.Writer, cfg *pageindex.Config) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %d  %s %d  %s %d",
		dimStyle.Render("Input:"), titleStyle.Render(cfg.InputDir),
		dimStyle.Render("Output:"), cfg.ResolvedOutputDir(),
		dimStyle.Render("Offset:"), cfg.PageOffset,
		dimStyle.Render("Final page:"), cfg.FinalPage,
		dimStyle.Render("Threshold:"), cfg.Threshold,
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSummary renders the scan summary box.
func FormatSummary(w io.Writer, r *pageindex.Result, threshold int, paths []string) {
	noOcc := len(pageindex.NoOccurrenceRows(r))
	tooMany := len(pageindex.TooManyRows(r, threshold))

	line1 := fmt.Sprintf("%s %s  %s %s  %s %s",
		dimStyle.Render("Scanned:"), successStyle.Render(formatNumber(len(r.Scanned))),
		dimStyle.Render("Ignored:"), formatNumber(r.Ignored),
		dimStyle.Render("Pages:"), formatNumber(r.Book.PageCount()),
	)

	line2 := fmt.Sprintf("%s %s  %s %s  %s %s",
		dimStyle.Render("No occurrence:"), countStyle(noOcc),
		dimStyle.Render("Too many:"), countStyle(tooMany),
		dimStyle.Render("Bare-form hits:"), formatNumber(r.StrategyHits[pageindex.StrategyBareForm]),
	)

	lines := []string{titleStyle.Render("Index Complete"), line1, line2}

	if busy := r.BusiestPages(busiestPages); len(busy) > 0 {
		parts := make([]string, len(busy))
		for i, pc := range busy {
			parts[i] = fmt.Sprintf("%d (%d)", pc.Page, pc.Hits)
		}
		lines = append(lines, fmt.Sprintf("%s %s", dimStyle.Render("Busiest pages:"), strings.Join(parts, ", ")))
	}

	if len(r.UnknownSections) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s",
			dimStyle.Render("Unknown sections:"), warnStyle.Render(strings.Join(r.UnknownSections, ", "))))
	}

	for _, p := range paths {
		lines = append(lines, fmt.Sprintf("%s %s", dimStyle.Render("Wrote:"), p))
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func countStyle(n int) string {
	if n == 0 {
		return successStyle.Render("0")
	}
	return warnStyle.Render(formatNumber(n))
}

// formatNumber adds commas to large numbers for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d,%03d,%03d", n/1000000, (n/1000)%1000, n%1000)
}
