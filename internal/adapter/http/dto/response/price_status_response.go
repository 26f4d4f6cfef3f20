package response

import (
	"encoding/json"

	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase/interfaces"
)

// Envelope is the uniform response body: {success, data, message}.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// FromTransitionResult keeps the envelope's success flag in sync with
// the engine result it wraps.
func FromTransitionResult(result entities.TransitionResult) Envelope {
	return Envelope{Success: result.Success, Data: result, Message: result.Message}
}

func FromBulkResult(result entities.BulkTransitionResult) Envelope {
	return Envelope{Success: result.Success, Data: result, Message: result.Message}
}

// MetricsResponse merges the engine snapshot with the reporting
// collaborator's summaries. Collaborator fields are nil when the
// sibling service is unavailable; the snapshot is always present.
type MetricsResponse struct {
	StatusMetrics   entities.StatusMetricsSnapshot `json:"statusMetrics"`
	ValidityMetrics json.RawMessage                `json:"validityMetrics,omitempty"`
	Trends          json.RawMessage                `json:"trends,omitempty"`
	RiskAnalysis    json.RawMessage                `json:"riskAnalysis,omitempty"`
}

func NewMetricsResponse(snapshot entities.StatusMetricsSnapshot, summary interfaces.ValiditySummary) MetricsResponse {
	return MetricsResponse{
		StatusMetrics:   snapshot,
		ValidityMetrics: summary.Summary,
		Trends:          summary.Trends,
		RiskAnalysis:    summary.RiskAnalysis,
	}
}

// LifecycleStatesResponse bundles the catalog with the externally owned
// lifecycle configuration.
type LifecycleStatesResponse struct {
	States          []entities.StatusDefinition `json:"states"`
	ValidityPeriods json.RawMessage             `json:"validityPeriods,omitempty"`
	TransitionRules json.RawMessage             `json:"transitionRules,omitempty"`
}

// SweepResponse merges the engine sweep with the renewal collaborator's
// parallel sweep into one count.
type SweepResponse struct {
	Status       entities.AutoSweepResult `json:"status"`
	RenewalCount int                      `json:"renewalCount"`
	TotalApplied int                      `json:"totalApplied"`
}

func NewSweepResponse(sweep entities.AutoSweepResult, renewalCount int) SweepResponse {
	return SweepResponse{
		Status:       sweep,
		RenewalCount: renewalCount,
		TotalApplied: sweep.UpdatedCount + renewalCount,
	}
}
