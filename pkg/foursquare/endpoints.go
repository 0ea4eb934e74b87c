package foursquare

import (
	"fmt"
	"net/url"
)

const (
	// DefaultBaseURL is the base URL for the Foursquare v2 API
	DefaultBaseURL = "https://api.foursquare.com/v2"

	// DefaultAPIVersion is the versioning date sent with every request
	DefaultAPIVersion = "20260220"

	// DefaultPageSize is the default number of check-ins to fetch per request
	DefaultPageSize = 50

	// MaxPageSize is the maximum number of check-ins the endpoint returns per request
	MaxPageSize = 50
)

// HistorySearchURL constructs the URL for one page of a user's check-in
// history, newest first. The OAuth token travels as a query parameter, which
// is how this endpoint authenticates.
func HistorySearchURL(baseURL, userID, token, apiVersion string, offset, limit int) string {
	if limit <= 0 {
		limit = DefaultPageSize
	} else if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	params := url.Values{}
	params.Set("locale", "en")
	params.Set("explicit-lang", "false")
	params.Set("v", apiVersion)
	params.Set("offset", fmt.Sprintf("%d", offset))
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("m", "swarm")
	params.Set("clusters", "false")
	params.Set("sort", "newestfirst")
	params.Set("oauth_token", token)

	return fmt.Sprintf("%s/users/%s/historysearch?%s", baseURL, url.PathEscape(userID), params.Encode())
}
