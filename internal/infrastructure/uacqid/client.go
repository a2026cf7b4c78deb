package uacqid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/census-rm/caseapi/internal/domain/questionnaire"
)

// Client calls the external UAC/QID pair generator service. The generator is
// the only component allowed to mint access codes; this service never
// fabricates them locally.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a pair generator client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateResponse struct {
	UAC string `json:"uac"`
	QID string `json:"qid"`
}

// Generate requests a fresh UAC/QID pair for the questionnaire type
func (c *Client) Generate(ctx context.Context, questionnaireType questionnaire.Type) (string, string, error) {
	endpoint := fmt.Sprintf("%s/uacqid/create?%s", c.baseURL, url.Values{
		"questionnaireType": []string{strconv.Itoa(int(questionnaireType))},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to build pair generator request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("pair generator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", fmt.Errorf("pair generator returned status %d", resp.StatusCode)
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", "", fmt.Errorf("failed to decode pair generator response: %w", err)
	}
	if body.UAC == "" || body.QID == "" {
		return "", "", fmt.Errorf("pair generator returned an incomplete pair")
	}

	return body.UAC, body.QID, nil
}
