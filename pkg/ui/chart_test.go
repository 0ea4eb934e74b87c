package ui

import (
	"strings"
	"testing"
	"time"

	"swarmscraper/pkg/query"
)

func TestRenderBarChartScaling(t *testing.T) {
	bars := []Bar{
		{"Coffee Shop", 10},
		{"Bar", 5},
		{"Bakery", 0},
	}

	out := RenderBarChart(bars, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	if n := strings.Count(lines[0], "█"); n != 20 {
		t.Errorf("Expected the max value to fill the bar, got %d cells", n)
	}
	if n := strings.Count(lines[1], "█"); n != 10 {
		t.Errorf("Expected half the max to render half a bar, got %d cells", n)
	}
	if n := strings.Count(lines[2], "█"); n != 0 {
		t.Errorf("Expected a zero value to render no bar, got %d cells", n)
	}
}

func TestRenderBarChartEmpty(t *testing.T) {
	if out := RenderBarChart(nil, 20); out != "" {
		t.Errorf("Expected empty output, got %q", out)
	}
}

func TestDownloadProgress(t *testing.T) {
	line := DownloadProgress(50, 100)
	if !strings.Contains(line, "50/100") {
		t.Errorf("Expected the counts in the line, got %q", line)
	}

	line = DownloadProgress(42, 0)
	if !strings.Contains(line, "42") {
		t.Errorf("Expected the running count with no total, got %q", line)
	}
}

func TestFormatCheckin(t *testing.T) {
	r := query.Record{
		ID:       "c1",
		Time:     time.Date(2023, 11, 14, 14, 13, 20, 0, time.UTC),
		HasTime:  true,
		Venue:    "Blue Bottle",
		Category: "Coffee Shop",
		City:     "San Francisco",
		State:    "CA",
		Shout:    "first pour",
	}

	out := FormatCheckin(r, 1)
	for _, want := range []string{"Blue Bottle", "Coffee Shop", "San Francisco, CA", "first pour", "Tue Nov 14, 2023"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in the listing, got %q", want, out)
		}
	}

	undated := FormatCheckin(query.Record{Venue: "Somewhere"}, 0)
	if !strings.Contains(undated, "unknown date") {
		t.Errorf("Expected an unknown-date marker, got %q", undated)
	}
}
