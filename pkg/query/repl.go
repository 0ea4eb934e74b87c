package query

import "strings"

// CommandKind discriminates what an interactive input line asks for
type CommandKind int

const (
	CmdSearch CommandKind = iota
	CmdStats
	CmdVenues
	CmdTimeline
	CmdCategories
	CmdDining
	CmdHelp
	CmdQuit
	CmdEmpty
)

// Command is a parsed interactive input line
type Command struct {
	Kind   CommandKind
	Filter Filter
}

// ParseCommand tokenizes one interactive line. The first token may name a
// command (stats, venues, timeline, categories, dining, help, quit), with an
// optional year argument. Otherwise the line is a search: `key value` pairs
// (year, month, city, state, cat) set filter fields, `cat` consumes the rest
// of the line, and any unknown token joins the free-text query. Numeric
// filter values that fail to parse surface as invalid-filter errors.
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{Kind: CmdEmpty}, nil
	}

	switch strings.ToLower(tokens[0]) {
	case "quit", "exit", "q":
		return Command{Kind: CmdQuit}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "stats", "venues", "timeline", "categories", "cats", "dining":
		cmd := Command{Kind: commandKind(tokens[0])}
		if len(tokens) > 1 {
			year, err := ParseYear(tokens[1])
			if err != nil {
				return Command{}, err
			}
			cmd.Filter.Year = year
		}
		return cmd, nil
	}

	cmd := Command{Kind: CmdSearch}
	var freeText []string

	for i := 0; i < len(tokens); {
		key := strings.ToLower(tokens[i])
		hasValue := i+1 < len(tokens)

		switch {
		case key == "year" && hasValue && isDigits(tokens[i+1]):
			year, err := ParseYear(tokens[i+1])
			if err != nil {
				return Command{}, err
			}
			cmd.Filter.Year = year
			i += 2
		case key == "month" && hasValue && isDigits(tokens[i+1]):
			month, err := ParseMonth(tokens[i+1])
			if err != nil {
				return Command{}, err
			}
			cmd.Filter.Month = month
			i += 2
		case key == "city" && hasValue:
			cmd.Filter.City = tokens[i+1]
			i += 2
		case key == "state" && hasValue:
			cmd.Filter.State = tokens[i+1]
			i += 2
		case key == "cat" && hasValue:
			// cat consumes the rest of the line so multi-word
			// categories need no quoting
			cmd.Filter.Category = strings.Join(tokens[i+1:], " ")
			i = len(tokens)
		default:
			freeText = append(freeText, tokens[i])
			i++
		}
	}

	if len(freeText) > 0 {
		text := strings.Join(freeText, " ")
		if cmd.Filter == (Filter{}) {
			// A bare query scans every text field
			cmd.Filter.Text = text
		} else {
			// Combined with explicit filters, leftover text narrows
			// the venue name
			cmd.Filter.Venue = text
		}
	}

	return cmd, nil
}

func commandKind(token string) CommandKind {
	switch strings.ToLower(token) {
	case "stats":
		return CmdStats
	case "venues":
		return CmdVenues
	case "timeline":
		return CmdTimeline
	case "categories", "cats":
		return CmdCategories
	case "dining":
		return CmdDining
	}
	return CmdSearch
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
