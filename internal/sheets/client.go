// Package sheets provides a read-only client for the Google Sheets values API.
// It fetches raw cell grids; interpreting the rows is the caller's concern.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"realtool_backend/platform/logger"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client fetches cell values from the Google Sheets API using an API key.
// Key-based access only reads spreadsheets shared as "anyone with the link".
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

func NewClient(log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		log:        log,
	}
}

// NewClientWithBaseURL is used in tests to point the client at a fake server.
func NewClientWithBaseURL(log *logger.Logger, baseURL string) *Client {
	client := NewClient(log)
	client.baseURL = baseURL
	return client
}

type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// FetchValues returns the cell grid for the given sheet and range. The first
// row is the header row; rows may be shorter than the header when trailing
// cells are empty.
func (c *Client) FetchValues(ctx context.Context, spreadsheetID, apiKey, sheetName, cellRange string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(spreadsheetID),
		url.PathEscape(sheetName+"!"+cellRange),
		url.QueryEscape(apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("sheets API returned status %d", resp.StatusCode)
		c.log.SourceError("fetch_values", err)
		return nil, err
	}

	var result valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode sheets response: %w", err)
	}

	return result.Values, nil
}
