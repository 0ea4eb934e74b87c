package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	barRune          = "█"
	defaultBarMax    = 25
	defaultChartTopN = 20
)

// Bar is one labeled value in a horizontal bar chart
type Bar struct {
	Label string
	Value int
}

// RenderBarChart renders bars scaled against the largest value, maxBars
// cells wide. The input order is preserved.
func RenderBarChart(bars []Bar, maxBars int) string {
	if len(bars) == 0 {
		return ""
	}
	if maxBars <= 0 {
		maxBars = defaultBarMax
	}

	maxValue := 0
	labelWidth := 0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if w := utf8.RuneCountInString(b.Label); w > labelWidth {
			labelWidth = w
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	var out strings.Builder
	for _, b := range bars {
		barLen := b.Value * maxBars / maxValue
		bar := strings.Repeat(barRune, barLen)
		out.WriteString(fmt.Sprintf("  %*s  %s %s\n",
			labelWidth, b.Label, barStyle.Render(bar), valueStyle.Render(fmt.Sprintf("%d", b.Value))))
	}
	return out.String()
}

// PrintBarChart prints a chart of the top entries
func PrintBarChart(bars []Bar, maxBars, topN int) {
	if topN <= 0 {
		topN = defaultChartTopN
	}
	if len(bars) > topN {
		bars = bars[:topN]
	}
	fmt.Print(RenderBarChart(bars, maxBars))
	fmt.Println()
}
