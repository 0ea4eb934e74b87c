package ui

import (
	"fmt"
	"strings"

	"swarmscraper/pkg/query"
)

// FormatCheckin renders one check-in listing line. Index 0 omits the
// numbering column.
func FormatCheckin(r query.Record, index int) string {
	var b strings.Builder

	if index > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%4d.", index)))
	}

	b.WriteString("  " + dateStyle.Render(formatDate(r)))
	b.WriteString("  " + venueStyle.Render(r.Venue))

	var details []string
	if r.Category != "" {
		details = append(details, categoryStyle.Render(r.Category))
	}
	if r.City != "" {
		loc := r.City
		if r.State != "" {
			loc += ", " + r.State
		}
		details = append(details, locationStyle.Render(loc))
	}
	if r.Neighborhood != "" {
		details = append(details, dimStyle.Render(r.Neighborhood))
	}
	if len(details) > 0 {
		sep := " " + dimStyle.Render("|") + " "
		b.WriteString("  " + dimStyle.Render("|") + " " + strings.Join(details, sep))
	}

	if r.Shout != "" {
		b.WriteString("\n        " + shoutStyle.Render(fmt.Sprintf("%q", r.Shout)))
	}

	return b.String()
}

func formatDate(r query.Record) string {
	if !r.HasTime {
		return "unknown date"
	}
	return r.Time.Format("Mon Jan 02, 2006  3:04 PM")
}
