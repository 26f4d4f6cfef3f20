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

// ReportingClient talks to the validity-reporting sibling service that
// owns trend and risk analytics. The engine treats its payloads as
// opaque and merges them into the metrics response.
type ReportingClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IValidityReporting = (*ReportingClient)(nil)

// NewReportingClient reads REPORTING_SERVICE_URL (default
// http://validity-reporting:8080).
func NewReportingClient() *ReportingClient {
	baseURL := os.Getenv("REPORTING_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://validity-reporting:8080"
	}

	return &ReportingClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *ReportingClient) GetValiditySummary(ctx context.Context) (interfaces.ValiditySummary, error) {
	var summary interfaces.ValiditySummary
	if err := c.getJSON(ctx, "/v1/validity/metrics", &summary); err != nil {
		return interfaces.ValiditySummary{}, err
	}
	return summary, nil
}

func (c *ReportingClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reporting service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reporting service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
