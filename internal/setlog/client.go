package setlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type completeSetRequest struct {
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	SourceSetID  string  `json:"source_set_id"`
}

type completeSetResponse struct {
	Recorded    bool   `json:"recorded"`
	SourceSetID string `json:"source_set_id"`
}

// Client sends completed sets to the IronPlan server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new HTTP client for the IronPlan server.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendSet POSTs one completed set to the server under the given source set ID.
// Retries up to 3 times with exponential backoff. Returns whether the set
// produced a new PR record.
func (c *Client) SendSet(e Entry, sourceSetID string) (bool, error) {
	data, err := json.Marshal(completeSetRequest{
		ExerciseName: e.Exercise,
		Weight:       e.Weight,
		Reps:         e.Reps,
		SourceSetID:  sourceSetID,
	})
	if err != nil {
		return false, fmt.Errorf("marshaling set: %w", err)
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequest(http.MethodPost,
			c.serverURL+"/api/v1/sets/complete", bytes.NewReader(data))
		if err != nil {
			return false, fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			var out completeSetResponse
			if err := json.Unmarshal(body, &out); err != nil {
				return false, fmt.Errorf("decoding response: %w", err)
			}
			return out.Recorded, nil
		}
		lastErr = fmt.Errorf("set completion failed (status %d): %s", resp.StatusCode, body)
	}

	return false, fmt.Errorf("after 3 attempts: %w", lastErr)
}
