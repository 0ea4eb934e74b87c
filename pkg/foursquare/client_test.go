package foursquare

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "swarmscraper/pkg/errors"
)

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "test-token", "20260220", 5*time.Second, nil)
}

func TestHistoryPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/self/historysearch", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("oauth_token"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "newestfirst", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"meta": {"code": 200},
			"response": {
				"checkins": {
					"count": 137,
					"items": [
						{"id": "abc123", "createdAt": 1700000000, "timeZoneOffset": -480,
						 "venue": {"id": "v1", "name": "Blue Bottle Coffee",
						   "categories": [{"name": "Coffee Shop", "shortName": "Coffee", "primary": true}],
						   "location": {"city": "Oakland", "state": "CA", "cc": "US"}}}
					]
				}
			}
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := client.HistoryPage("self", 0, 50)
	require.NoError(t, err)

	assert.Equal(t, 137, page.Count)
	require.Len(t, page.Items, 1)

	c := page.Items[0]
	assert.Equal(t, "abc123", c.ID)
	assert.Equal(t, int64(1700000000), c.CreatedAt)
	assert.Equal(t, -480, c.TimeZoneOffset)
	assert.Equal(t, "Blue Bottle Coffee", c.VenueName())

	cat, ok := c.PrimaryCategory()
	require.True(t, ok)
	assert.Equal(t, "Coffee Shop", cat.Name)
	assert.Equal(t, "Oakland", c.VenueLocation().City)
}

func TestHistoryPageAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.HistoryPage("self", 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeAuth, apiErr.Type)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
	assert.False(t, errs.IsRetryable(apiErr.Type))
}

func TestHistoryPageMetaError(t *testing.T) {
	// The API duplicates failures inside the meta envelope on a 200 response
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meta": {"code": 401, "errorType": "invalid_auth", "errorDetail": "OAuth token invalid or revoked"}, "response": {}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.HistoryPage("self", 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeAuth, apiErr.Type)
	assert.Contains(t, apiErr.Message, "OAuth token invalid")
}

func TestHistoryPageServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.HistoryPage("self", 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeServerError, apiErr.Type)
	assert.True(t, errs.IsRetryable(apiErr.Type))
}

func TestHistoryPageParsingError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.HistoryPage("self", 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeParsing, apiErr.Type)
}

func TestHistoryPageNetworkError(t *testing.T) {
	// Point at a server that is no longer listening
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := newTestClient(serverURL)
	_, err := client.HistoryPage("self", 0, 50)
	require.Error(t, err)

	var apiErr *errs.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, errs.ErrorTypeNetwork, apiErr.Type)
}
