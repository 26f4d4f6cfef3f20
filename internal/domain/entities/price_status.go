package entities

import "time"

// PriceStatus represents one node in the price validity lifecycle graph.
//
// Domain notes:
//   - The price-validity-service is the source of truth for validity state.
//   - Legal transitions are governed by the status catalog, not hardcoded
//     per call site.
type PriceStatus string

const (
	PriceStatusActive         PriceStatus = "active"
	PriceStatusExpiring       PriceStatus = "expiring"
	PriceStatusExpired        PriceStatus = "expired"
	PriceStatusGracePeriod    PriceStatus = "grace_period"
	PriceStatusSuspended      PriceStatus = "suspended"
	PriceStatusPendingRenewal PriceStatus = "pending_renewal"
)

// SystemActor is the changedBy identity used for automatic transitions.
const SystemActor = "system"

// UrgencyLevel classifies how pressing an action-required status is.
type UrgencyLevel string

const (
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyLow    UrgencyLevel = "low"
)

// StatusDefinition is one catalog entry: identity, display metadata and
// the set of statuses it may legally transition into. Definitions are
// loaded once per process and treated as read-only configuration.
type StatusDefinition struct {
	ID                 PriceStatus   `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Color              string        `json:"color"`
	BackgroundColor    string        `json:"backgroundColor"`
	Icon               string        `json:"icon"`
	Priority           int           `json:"priority"`
	DisplayText        string        `json:"displayText"`
	BadgeVariant       string        `json:"badgeVariant"`
	AllowedTransitions []PriceStatus `json:"allowedTransitions"`
	RequiresAction     bool          `json:"requiresAction"`
	ActionText         string        `json:"actionText,omitempty"`
	UrgencyLevel       UrgencyLevel  `json:"urgencyLevel,omitempty"`
}

// CanTransitionTo reports whether to is a member of the definition's
// allowed-transitions set.
func (d StatusDefinition) CanTransitionTo(to PriceStatus) bool {
	for _, allowed := range d.AllowedTransitions {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are configured.
func (d StatusDefinition) IsTerminal() bool {
	return len(d.AllowedTransitions) == 0
}

// StatusHistoryEntry records one applied transition. Entries are
// immutable and strictly time-ordered within a record; they are only
// ever appended.
type StatusHistoryEntry struct {
	Status    PriceStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	ChangedBy string      `json:"changedBy"`
	Reason    string      `json:"reason"`
}

// PriceStatusRecord tracks the validity state of one priced item
// (product + vendor) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: price_item_id
//   - version increments on every applied transition and guards the
//     conditional write (read-validate-write is atomic per record).
//
// Invariant: CurrentStatus equals the status of the last history entry;
// history is the source of truth, the current status is a cached
// projection of it.
type PriceStatusRecord struct {
	PriceItemID             string               `json:"priceItemId"`
	ProductName             string               `json:"productName"`
	VendorID                string               `json:"vendorId"`
	VendorName              string               `json:"vendorName"`
	CurrentStatus           PriceStatus          `json:"currentStatus"`
	StatusHistory           []StatusHistoryEntry `json:"statusHistory"`
	EffectiveDate           time.Time            `json:"effectiveDate"`
	ExpirationDate          time.Time            `json:"expirationDate"`
	WarningThreshold        int                  `json:"warningThreshold"`
	GracePeriodEnd          *time.Time           `json:"gracePeriodEnd,omitempty"`
	AutoRenewal             bool                 `json:"autoRenewal"`
	SuspensionReason        string               `json:"suspensionReason,omitempty"`
	LastStatusCheck         time.Time            `json:"lastStatusCheck"`
	RenewalNotificationSent bool                 `json:"renewalNotificationSent"`
	Version                 int64                `json:"version"`
}

// DaysUntilExpiration returns the whole number of days (ceiling) between
// now and the record's expiration date. Negative once expired.
func (r PriceStatusRecord) DaysUntilExpiration(now time.Time) int {
	delta := r.ExpirationDate.Sub(now)
	days := int(delta / (24 * time.Hour))
	if delta%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// LastHistoryEntry returns the most recent history entry, if any.
func (r PriceStatusRecord) LastHistoryEntry() (StatusHistoryEntry, bool) {
	if len(r.StatusHistory) == 0 {
		return StatusHistoryEntry{}, false
	}
	return r.StatusHistory[len(r.StatusHistory)-1], true
}
