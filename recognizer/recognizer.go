// Copyright (c) 2025 Andrew Xie.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/andrew-x/card-counter/models"
)

// Result is what a scan produces: the card labels the service saw, and
// the score derived from them with the caller's value mapping.
type Result struct {
	RecognizedCards []string `json:"recognizedCards"`
	TotalScore      int      `json:"totalScore"`
}

// Recognizer identifies playing cards in an encoded image. The service
// is a black box; errors propagate to the caller and never touch store
// state, because no score is recorded until the user confirms one.
type Recognizer interface {
	Scan(ctx context.Context, image string, valueMap models.ValueMap) (Result, error)
}

// Score sums the mapped point value of each recognized card label.
// Unknown labels count zero. The UI re-derives scores from edited card
// counts with this same formula, so it lives here rather than in a
// handler.
func Score(valueMap models.ValueMap, cards []string) int {
	total := 0
	for _, card := range cards {
		total += valueMap[card]
	}
	return total
}

// Client calls an external card-recognition HTTP service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client for the recognition service at baseURL.
// apiKey may be empty if the service does not require one.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type scanRequest struct {
	Image string `json:"image"`
}

type scanResponse struct {
	Cards []string `json:"cards"`
}

// Scan posts the encoded image to the service and derives the total
// score from the returned labels with Score.
func (c *Client) Scan(ctx context.Context, image string, valueMap models.ValueMap) (Result, error) {
	body, err := json.Marshal(scanRequest{Image: image})
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode scan request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build scan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("recognition service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("recognition service returned status %d", resp.StatusCode)
	}

	var parsed scanResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("failed to decode scan response: %w", err)
	}

	return Result{
		RecognizedCards: parsed.Cards,
		TotalScore:      Score(valueMap, parsed.Cards),
	}, nil
}
