package ui

import (
	"fmt"
	"strings"
)

// DownloadProgress renders an in-place progress line for the fetch loop.
// With an unknown total it falls back to a running count.
func DownloadProgress(fetched, total int) string {
	if total <= 0 {
		return fmt.Sprintf("\r  Downloaded %d checkins...", fetched)
	}

	const width = 30
	filled := fetched * width / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("\r  [%s] %d/%d", barStyle.Render(bar), fetched, total)
}

// PrintProgress writes the progress line without a trailing newline so the
// next update overwrites it
func PrintProgress(fetched, total int) {
	fmt.Print(DownloadProgress(fetched, total))
}
