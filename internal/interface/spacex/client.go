package spacex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"launchtrack-service/pkg/logger"
)

// DefaultBaseURL is the public SpaceX API v4 endpoint.
const DefaultBaseURL = "https://api.spacexdata.com/v4"

// Client fetches raw datasets from the SpaceX API. Every failure is
// reported as an *APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a new SpaceX API client
func NewClient(baseURL string, logger logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// FetchLaunches fetches all launches
func (c *Client) FetchLaunches(ctx context.Context) ([]interface{}, error) {
	return c.get(ctx, "/launches")
}

// FetchRockets fetches all rockets
func (c *Client) FetchRockets(ctx context.Context) ([]interface{}, error) {
	return c.get(ctx, "/rockets")
}

// FetchLaunchpads fetches all launchpads
func (c *Client) FetchLaunchpads(ctx context.Context) ([]interface{}, error) {
	return c.get(ctx, "/launchpads")
}

func (c *Client) get(ctx context.Context, path string) ([]interface{}, error) {
	url := c.baseURL + path
	c.logger.Debug("Fetching upstream dataset", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &APIError{Message: "failed to build request", URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		message := fmt.Sprintf("a request error occurred: %v", err)
		if isTimeout(err) {
			message = "request timed out"
		}
		return nil, &APIError{Message: message, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: "failed to read response body", StatusCode: resp.StatusCode, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Message:      fmt.Sprintf("API returned an error status %d", resp.StatusCode),
			StatusCode:   resp.StatusCode,
			URL:          url,
			ResponseText: string(body),
		}
	}

	var records []interface{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &APIError{
			Message:      "failed to decode JSON response",
			StatusCode:   resp.StatusCode,
			URL:          url,
			ResponseText: string(body),
			Err:          err,
		}
	}
	return records, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
