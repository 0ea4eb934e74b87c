package foursquare

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "swarmscraper/pkg/errors"
	"swarmscraper/pkg/logger"
)

// Client is a Foursquare v2 API client
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	apiVersion string
	logger     logger.Logger
}

// NewClient creates a new Foursquare API client
func NewClient(baseURL, token, apiVersion string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    baseURL,
		token:      token,
		apiVersion: apiVersion,
		logger:     log,
	}
}

// doRequest performs an HTTP request and wraps transport failures as
// network errors
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.Redacted(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("network error: %v", err),
			Code:    0,
		}
	}

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"method":   req.Method,
		"status":   resp.StatusCode,
		"duration": duration,
	})

	return resp, nil
}

// GetJSON performs a GET request and decodes the JSON response
func (c *Client) GetJSON(url string, target interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
		}
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}

		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"status":       resp.StatusCode,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return &errs.Error{
			Type:    errs.ErrorTypeParsing,
			Message: fmt.Sprintf("failed to parse JSON: %v", err),
			Code:    resp.StatusCode,
		}
	}

	return nil
}

// checkResponseStatus checks the HTTP response status and returns appropriate errors
func (c *Client) checkResponseStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.logger.WarnWithFields("authentication error", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return &errs.Error{
			Type:    errs.ErrorTypeAuth,
			Message: "OAuth token rejected - it may be expired, get a fresh token",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode == http.StatusNotFound:
		return &errs.Error{
			Type:    errs.ErrorTypeNotFound,
			Message: "resource not found",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnWithFields("rate limit exceeded", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return &errs.Error{
			Type:    errs.ErrorTypeRateLimit,
			Message: "rate limit exceeded",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode >= 500:
		c.logger.ErrorWithFields("server error", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return &errs.Error{
			Type:    errs.ErrorTypeServerError,
			Message: "server error",
			Code:    resp.StatusCode,
		}
	case resp.StatusCode >= 400:
		return &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	default:
		return nil
	}
}

// HistoryPage fetches a single page of the user's check-in history. The API
// duplicates its status in the meta envelope, so a 200 response can still
// carry an error code; both are checked.
func (c *Client) HistoryPage(userID string, offset, limit int) (*CheckinGroup, error) {
	url := HistorySearchURL(c.baseURL, userID, c.token, c.apiVersion, offset, limit)

	c.logger.DebugWithFields("fetching check-in history page", map[string]interface{}{
		"user_id": userID,
		"offset":  offset,
		"limit":   limit,
	})

	var response HistoryResponse
	if err := c.GetJSON(url, &response); err != nil {
		return nil, err
	}

	if response.Meta.Code != 0 && response.Meta.Code != http.StatusOK {
		return nil, metaError(response.Meta)
	}

	c.logger.DebugWithFields("fetched check-in history page", map[string]interface{}{
		"user_id": userID,
		"offset":  offset,
		"items":   len(response.Response.Checkins.Items),
		"total":   response.Response.Checkins.Count,
	})

	return &response.Response.Checkins, nil
}

// metaError maps a non-200 meta envelope onto the error taxonomy
func metaError(meta Meta) error {
	msg := meta.ErrorDetail
	if msg == "" {
		msg = meta.ErrorType
	}
	if msg == "" {
		msg = fmt.Sprintf("API returned meta code %d", meta.Code)
	}

	errType := errs.ErrorTypeUnknown
	switch {
	case meta.Code == http.StatusUnauthorized || meta.Code == http.StatusForbidden:
		errType = errs.ErrorTypeAuth
	case meta.Code == http.StatusNotFound:
		errType = errs.ErrorTypeNotFound
	case meta.Code == http.StatusTooManyRequests:
		errType = errs.ErrorTypeRateLimit
	case meta.Code >= 500:
		errType = errs.ErrorTypeServerError
	}

	return &errs.Error{Type: errType, Message: msg, Code: meta.Code}
}
