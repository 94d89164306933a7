package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/perinat/internal/csvio"
	"github.com/vvka-141/perinat/pkg/perinat"
)

// Summary styling. Kept minimal; decorative output goes to stderr so that
// stdout stays machine-parseable.
var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	summaryTableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	summaryCountStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("34"))
)

// printGeneratedSummary prints the per-table row counts of a generation run
// in load order.
func printGeneratedSummary(outputDir string, counts map[string]int) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, summaryTitleStyle.Render(fmt.Sprintf("Dataset written to %s", outputDir)))

	var total int
	for _, table := range csvio.Tables {
		n := counts[table.Name]
		total += n
		fmt.Fprintf(os.Stderr, "  %s %s rows\n",
			summaryTableStyle.Render(fmt.Sprintf("%-18s", table.File)),
			summaryCountStyle.Render(fmt.Sprintf("%8d", n)))
	}

	fmt.Fprintf(os.Stderr, "  %s %s rows\n",
		summaryTableStyle.Render(fmt.Sprintf("%-18s", "total")),
		summaryCountStyle.Render(fmt.Sprintf("%8d", total)))
}

// printVerificationSummary prints the post-load row counts reported by the
// target database.
func printVerificationSummary(databaseName string, counts []perinat.TableCount) {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, summaryTitleStyle.Render(fmt.Sprintf("Row counts in %s", databaseName)))

	var total int64
	for _, tc := range counts {
		total += tc.Rows
		fmt.Fprintf(os.Stderr, "  %s %s rows\n",
			summaryTableStyle.Render(fmt.Sprintf("%-18s", "raw."+tc.Table)),
			summaryCountStyle.Render(fmt.Sprintf("%8d", tc.Rows)))
	}

	fmt.Fprintf(os.Stderr, "  %s %s rows\n",
		summaryTableStyle.Render(fmt.Sprintf("%-18s", "total")),
		summaryCountStyle.Render(fmt.Sprintf("%8d", total)))
}
