package interfaces

import (
	"context"
	"encoding/json"
)

// ValiditySummary is the opaque trend/risk payload produced by the
// reporting collaborator. The engine merges it into the metrics
// response without interpreting it.
type ValiditySummary struct {
	Summary      json.RawMessage `json:"summary,omitempty"`
	Trends       json.RawMessage `json:"trends,omitempty"`
	RiskAnalysis json.RawMessage `json:"riskAnalysis,omitempty"`
}

// IValidityReporting abstracts the sibling reporting service that owns
// trend and risk analytics over price validity data.
type IValidityReporting interface {
	GetValiditySummary(ctx context.Context) (ValiditySummary, error)
}

// ILifecycleConfigSource abstracts the sibling service that owns
// validity-period and transition-rule configuration. The catalog itself
// lives in this service; the rule configuration does not.
type ILifecycleConfigSource interface {
	GetValidityPeriods(ctx context.Context) (json.RawMessage, error)
	GetTransitionRules(ctx context.Context) (json.RawMessage, error)
}

// IRenewalSweeper triggers the renewal/forecast collaborator's own
// automatic sweep and reports how many transitions it applied.
type IRenewalSweeper interface {
	TriggerRenewalSweep(ctx context.Context) (int, error)
}
