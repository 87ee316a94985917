package presentation

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"fhcleanup/internal/domain"
)

const separator = "__________________________________________________________"

type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintSummary(summary domain.Summary, elapsed time.Duration) {
	fmt.Fprintln(p.Writer, separator)
	for _, line := range SummaryLines(summary) {
		fmt.Fprintln(p.Writer, line)
	}
	fmt.Fprintf(p.Writer, "Done after %dms\n", elapsed.Milliseconds())
}

// SummaryLines describes the non-zero counters, or that nothing changed.
func SummaryLines(summary domain.Summary) []string {
	if summary.Total() == 0 {
		return []string{"No files affected"}
	}
	var lines []string
	if summary.Moved > 0 {
		lines = append(lines, fmt.Sprintf("Moved %s files to the to_delete folder", count(summary.Moved)))
	}
	if summary.Deleted > 0 {
		lines = append(lines, fmt.Sprintf("Deleted %s files", count(summary.Deleted)))
	}
	if summary.Renamed > 0 {
		lines = append(lines, fmt.Sprintf("Renamed %s kept files to remove timestamp", count(summary.Renamed)))
	}
	return lines
}

func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func count(n int) string {
	return humanize.Comma(int64(n))
}
