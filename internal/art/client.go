// Package art generates cute pictures through the Venice image API.
package art

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.venice.ai/api/v1"

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Generate renders prompt into PNG bytes. One request, one status check, no
// retries: a flaky art API gets an apologetic reply, not a second chance.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	payload := map[string]interface{}{
		"model":        "flux-dev",
		"prompt":       prompt,
		"style_preset": "Anime",
		"height":       600,
		"width":        600,
		"steps":        20,
		"cfg_scale":    7.5,
		"safe_mode":    true,
		"format":       "png",
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/image/generate", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("venice http %d", resp.StatusCode)
	}

	var parsed struct {
		Images []string `json:"images"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Images) == 0 {
		return nil, fmt.Errorf("venice returned no images")
	}

	img, err := base64.StdEncoding.DecodeString(parsed.Images[0])
	if err != nil {
		return nil, fmt.Errorf("venice image payload is not valid base64: %w", err)
	}
	return img, nil
}
