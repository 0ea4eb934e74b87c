package foursquare

import (
	"net/url"
	"strings"
	"testing"
)

func TestHistorySearchURL(t *testing.T) {
	raw := HistorySearchURL("https://api.example.com/v2", "12345", "tok", "20260220", 100, 50)

	if !strings.HasPrefix(raw, "https://api.example.com/v2/users/12345/historysearch?") {
		t.Fatalf("Unexpected URL prefix: %s", raw)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse URL: %v", err)
	}

	query := parsed.Query()
	checks := map[string]string{
		"oauth_token": "tok",
		"offset":      "100",
		"limit":       "50",
		"v":           "20260220",
		"m":           "swarm",
		"sort":        "newestfirst",
		"clusters":    "false",
	}
	for key, want := range checks {
		if got := query.Get(key); got != want {
			t.Errorf("Expected %s=%s, got %s", key, want, got)
		}
	}
}

func TestHistorySearchURLClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{"zero uses default", 0, "50"},
		{"negative uses default", -1, "50"},
		{"above max is clamped", 200, "50"},
		{"valid passes through", 25, "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := HistorySearchURL(DefaultBaseURL, "self", "tok", "", 0, tt.limit)
			parsed, err := url.Parse(raw)
			if err != nil {
				t.Fatalf("Failed to parse URL: %v", err)
			}
			if got := parsed.Query().Get("limit"); got != tt.want {
				t.Errorf("Expected limit %s, got %s", tt.want, got)
			}
		})
	}
}

func TestHistorySearchURLEscapesUserID(t *testing.T) {
	raw := HistorySearchURL(DefaultBaseURL, "user/../etc", "tok", "", 0, 50)
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse URL: %v", err)
	}
	if strings.Contains(parsed.Path, "..") && !strings.Contains(parsed.EscapedPath(), "%2F") {
		t.Errorf("Expected user ID to be path-escaped, got %s", parsed.EscapedPath())
	}
}
