package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"price-validity-service/internal/usecase/interfaces"
)

// LifecycleConfigClient talks to the price-lifecycle sibling service
// that owns validity-period and transition-rule configuration and runs
// its own renewal sweep alongside ours.
type LifecycleConfigClient struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ interfaces.ILifecycleConfigSource = (*LifecycleConfigClient)(nil)
	_ interfaces.IRenewalSweeper        = (*LifecycleConfigClient)(nil)
)

// NewLifecycleConfigClient reads LIFECYCLE_SERVICE_URL (default
// http://price-lifecycle:8080).
func NewLifecycleConfigClient() *LifecycleConfigClient {
	baseURL := os.Getenv("LIFECYCLE_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://price-lifecycle:8080"
	}

	return &LifecycleConfigClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *LifecycleConfigClient) GetValidityPeriods(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/lifecycle/validity-periods")
}

func (c *LifecycleConfigClient) GetTransitionRules(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/v1/lifecycle/transition-rules")
}

// TriggerRenewalSweep asks the lifecycle service to run its automatic
// sweep and returns how many transitions it applied.
func (c *LifecycleConfigClient) TriggerRenewalSweep(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/v1/lifecycle/process-automatic-transitions", nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("lifecycle service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("lifecycle service returned status %d", resp.StatusCode)
	}

	var body struct {
		TransitionCount int `json:"transitionCount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.TransitionCount, nil
}

func (c *LifecycleConfigClient) getRaw(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lifecycle service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lifecycle service returned status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
