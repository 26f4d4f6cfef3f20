package entities

import "time"

// TransitionErrorType classifies a failed transition so callers can map
// it to a response class without parsing messages.
type TransitionErrorType string

const (
	TransitionErrorValidation TransitionErrorType = "validation"
	TransitionErrorNotFound   TransitionErrorType = "not_found"
	TransitionErrorConflict   TransitionErrorType = "conflict"
	TransitionErrorSystem     TransitionErrorType = "system"
)

// TransitionRequest asks for one status change on one price record.
type TransitionRequest struct {
	PriceItemID    string                 `json:"priceItemId"`
	FromStatus     PriceStatus            `json:"fromStatus"`
	ToStatus       PriceStatus            `json:"toStatus"`
	Reason         string                 `json:"reason"`
	ChangedBy      string                 `json:"changedBy"`
	EffectiveDate  *time.Time             `json:"effectiveDate,omitempty"`
	AdditionalData map[string]interface{} `json:"additionalData,omitempty"`
}

// TransitionResult is the structured outcome of a transition attempt.
// Public lifecycle operations never return a bare error for caller
// mistakes; everything the HTTP layer needs is carried here.
type TransitionResult struct {
	PriceItemID      string              `json:"priceItemId,omitempty"`
	Success          bool                `json:"success"`
	Message          string              `json:"message"`
	NewStatus        PriceStatus         `json:"newStatus,omitempty"`
	TransitionDate   *time.Time          `json:"transitionDate,omitempty"`
	ValidationErrors []string            `json:"validationErrors,omitempty"`
	ErrorType        TransitionErrorType `json:"errorType,omitempty"`
}

// ExpirationDateRange bounds candidate selection by expiration date,
// inclusive on both ends.
type ExpirationDateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// BulkTransitionFilters narrow the candidate set of a bulk update.
// Filters are AND-combined; an unset filter does not narrow.
type BulkTransitionFilters struct {
	CurrentStatus       []PriceStatus        `json:"currentStatus,omitempty"`
	VendorIDs           []string             `json:"vendorIds,omitempty"`
	ExpirationDateRange *ExpirationDateRange `json:"expirationDateRange,omitempty"`
}

// BulkTransitionRequest fans out into one independent transition per
// candidate record. Created per API call, never persisted.
type BulkTransitionRequest struct {
	PriceItemIDs []string               `json:"priceItemIds"`
	TargetStatus PriceStatus            `json:"targetStatus"`
	Reason       string                 `json:"reason"`
	ChangedBy    string                 `json:"changedBy"`
	Filters      *BulkTransitionFilters `json:"filters,omitempty"`
}

// BulkTransitionResult carries the full per-item breakdown. Success is
// true only when no candidate failed; a per-item failure never aborts
// the batch.
type BulkTransitionResult struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	UpdatedCount int                `json:"updatedCount"`
	FailedCount  int                `json:"failedCount"`
	Results      []TransitionResult `json:"results"`
}

// AppliedTransition describes one transition the automatic sweep
// actually applied.
type AppliedTransition struct {
	PriceItemID string      `json:"priceItemId"`
	FromStatus  PriceStatus `json:"fromStatus"`
	ToStatus    PriceStatus `json:"toStatus"`
	Reason      string      `json:"reason"`
}

// AutoSweepResult summarizes one run of the automatic transition sweep.
type AutoSweepResult struct {
	CheckedCount int                 `json:"checkedCount"`
	UpdatedCount int                 `json:"updatedCount"`
	Updates      []AppliedTransition `json:"updates"`
}

// StatusMetricsSnapshot is a derived, disposable view over the current
// record population. Recomputed on demand; never authoritative.
type StatusMetricsSnapshot struct {
	TotalPrices                int                 `json:"totalPrices"`
	StatusCounts               map[PriceStatus]int `json:"statusCounts"`
	RequiresActionCount        int                 `json:"requiresActionCount"`
	HighUrgencyCount           int                 `json:"highUrgencyCount"`
	MediumUrgencyCount         int                 `json:"mediumUrgencyCount"`
	LowUrgencyCount            int                 `json:"lowUrgencyCount"`
	AutoRenewalEnabled         int                 `json:"autoRenewalEnabled"`
	AverageDaysUntilExpiration float64             `json:"averageDaysUntilExpiration"`
	LastUpdated                time.Time           `json:"lastUpdated"`
}

// StatusDistributionSlice is one row of the dashboard distribution.
type StatusDistributionSlice struct {
	Status     PriceStatus `json:"status"`
	Count      int         `json:"count"`
	Percentage int         `json:"percentage"`
	Color      string      `json:"color"`
}

// StatusDashboard composes the read-side projection served to the UI.
type StatusDashboard struct {
	Metrics            StatusMetricsSnapshot     `json:"metrics"`
	RecentChanges      []StatusHistoryEntry      `json:"recentChanges"`
	ActionItems        []PriceStatusProjection   `json:"actionItems"`
	StatusDistribution []StatusDistributionSlice `json:"statusDistribution"`
}

// PriceStatusProjection is a PriceStatusRecord enriched with the derived
// date fields callers display.
type PriceStatusProjection struct {
	PriceStatusRecord
	DaysUntilExpirationValue int  `json:"daysUntilExpiration"`
	DaysSinceExpiration      int  `json:"daysSinceExpiration"`
	IsInWarningPeriod        bool `json:"isInWarningPeriod"`
}
