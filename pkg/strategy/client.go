package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a minimal HTTP client for the campaign-strategy generation
// service. The service takes free-text brand descriptors and returns a
// generated strategy string; it holds no state between calls.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient constructs a strategy client with sane defaults.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// GenerateRequest describes the campaign being planned.
type GenerateRequest struct {
	BrandDescription  string `json:"brandDescription"`
	CampaignObjective string `json:"campaignObjective"`
	LandingPage       string `json:"landingPage,omitempty"`
	PlatformContext   string `json:"platformContext,omitempty"`
}

// GenerateResponse wraps the generated strategy text.
type GenerateResponse struct {
	Strategy string `json:"strategy"`
	Error    string `json:"error,omitempty"`
}

// Generate calls the remote generation endpoint and returns the strategy
// text. The caller persists nothing before this returns successfully.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	var resp GenerateResponse
	if err := c.doRequest(ctx, "/generate-campaign-strategy", req, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("strategy service: %s", resp.Error)
	}
	return resp.Strategy, nil
}

func (c *Client) doRequest(ctx context.Context, path string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return err
	}
	if httpResp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", httpResp.StatusCode).
			Str("path", path).
			Msg("Strategy service returned non-200")
		return fmt.Errorf("strategy service returned status %d", httpResp.StatusCode)
	}
	return json.Unmarshal(raw, result)
}
