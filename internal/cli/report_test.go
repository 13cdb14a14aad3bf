package cli

import (
	"strings"
	"testing"

	"trackit/internal/analytics"
)

func TestSummaryLines(t *testing.T) {
	summary := analytics.Summarize(
		[]analytics.SeriesPoint{{Label: "Mon", Value: 2}, {Label: "Tue", Value: 1}},
		[]analytics.SeriesPoint{{Label: "Mon", Value: 10}, {Label: "Tue", Value: 20}},
	)

	lines := summaryLines(summary)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 summary lines, got %d", len(lines))
	}

	if !strings.Contains(lines[0], "Completions: 3 (avg 1.5 per bucket)") {
		t.Errorf("Expected completions line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Spent:       $30.00 (avg $15.00 per bucket)") {
		t.Errorf("Expected spending line, got %q", lines[1])
	}
	for _, line := range lines {
		if strings.Contains(line, "%!") {
			t.Errorf("Formatting directive mismatch in %q", line)
		}
	}
}
