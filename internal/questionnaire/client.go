package questionnaire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"pathfinder-backend/internal/careers"
)

// Client calls the career analysis endpoint over HTTP. It implements
// Analyzer for Session.Submit.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient constructs a Client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// AnalyzeCareer posts the answer set and decodes the recommendation.
// Non-success responses surface the server's error message verbatim so the
// friendly-message mapping can classify them.
func (c *Client) AnalyzeCareer(ctx context.Context, responses careers.UserResponses) (*careers.CareerRecommendation, error) {
	payload, err := json.Marshal(responses)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/analyze-career", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil && body.Error != "" {
			return nil, fmt.Errorf("%s", body.Error)
		}
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var result careers.CareerRecommendation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode recommendation: %w", err)
	}
	return &result, nil
}

var _ Analyzer = (*Client)(nil)
