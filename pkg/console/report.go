package console

import (
	"fmt"
	"strings"

	"github.com/githubnext/gh-prtitle/pkg/logger"
)

var reportLog = logger.New("console:report")

// ReportEntry is one validated title and the problems found in it.
type ReportEntry struct {
	Title    string
	Problems []string
}

// RenderReport lists every title with its problems, followed by a summary
// line when more than one title was checked. styled should reflect the
// stream the report is written to.
func RenderReport(entries []ReportEntry, styled bool) string {
	reportLog.Printf("Rendering report: entries=%d, styled=%v", len(entries), styled)
	success := func(text string) string { return styleIf(styled, successStyle, "✓ ") + text }
	failure := func(text string) string { return styleIf(styled, errorStyle, "✗ ") + text }

	var sb strings.Builder
	failed := 0
	for _, entry := range entries {
		if len(entry.Problems) == 0 {
			sb.WriteString(success(entry.Title))
			sb.WriteString("\n")
			continue
		}
		failed++
		sb.WriteString(failure(entry.Title))
		sb.WriteString("\n")
		for _, problem := range entry.Problems {
			sb.WriteString(FormatListItem(problem))
			sb.WriteString("\n")
		}
	}

	if len(entries) > 1 {
		sb.WriteString("\n")
		if failed == 0 {
			sb.WriteString(success(fmt.Sprintf("All %d titles are valid", len(entries))))
		} else {
			sb.WriteString(failure(fmt.Sprintf("%d of %d titles failed validation", failed, len(entries))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
