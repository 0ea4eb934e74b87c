package ui

import (
	"fmt"
	"strings"
)

const headerWidth = 70

// PrintHeader prints a ruled section title
func PrintHeader(title string) {
	rule := strings.Repeat("─", headerWidth)
	fmt.Println()
	fmt.Println(headerStyle.Render(rule))
	fmt.Println(headerStyle.Render("  " + title))
	fmt.Println(headerStyle.Render(rule))
	fmt.Println()
}

// PrintCount prints a dimmed result count line
func PrintCount(n int, label string) {
	if label == "" {
		label = "checkins"
	}
	fmt.Println(countStyle.Render(fmt.Sprintf("  %d %s", n, label)))
	fmt.Println()
}

// PrintSuccess prints a success line
func PrintSuccess(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning line
func PrintWarning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("! " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error line
func PrintError(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("✗ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints a dimmed informational line
func PrintInfo(format string, args ...interface{}) {
	fmt.Println(dimStyle.Render("  " + fmt.Sprintf(format, args...)))
}
