package request

import (
	"strings"
	"time"

	"price-validity-service/internal/domain/entities"
)

// UpdateStatusRequest is the POST update-status payload. Required-field
// checks happen here at the HTTP boundary; transition legality is the
// engine's job.
type UpdateStatusRequest struct {
	PriceItemID    string                 `json:"priceItemId" binding:"required"`
	FromStatus     string                 `json:"fromStatus" binding:"required"`
	ToStatus       string                 `json:"toStatus" binding:"required"`
	Reason         string                 `json:"reason" binding:"required"`
	ChangedBy      string                 `json:"changedBy" binding:"required"`
	EffectiveDate  *time.Time             `json:"effectiveDate,omitempty"`
	AdditionalData map[string]interface{} `json:"additionalData,omitempty"`
}

func (r UpdateStatusRequest) ToTransitionRequest() entities.TransitionRequest {
	return entities.TransitionRequest{
		PriceItemID:    strings.TrimSpace(r.PriceItemID),
		FromStatus:     entities.PriceStatus(strings.TrimSpace(r.FromStatus)),
		ToStatus:       entities.PriceStatus(strings.TrimSpace(r.ToStatus)),
		Reason:         r.Reason,
		ChangedBy:      r.ChangedBy,
		EffectiveDate:  r.EffectiveDate,
		AdditionalData: r.AdditionalData,
	}
}

// RegisterRecordRequest is the POST records payload. priceItemId is
// optional; one is generated when absent.
type RegisterRecordRequest struct {
	PriceItemID      string     `json:"priceItemId,omitempty"`
	ProductName      string     `json:"productName" binding:"required"`
	VendorID         string     `json:"vendorId" binding:"required"`
	VendorName       string     `json:"vendorName,omitempty"`
	InitialStatus    string     `json:"initialStatus,omitempty"`
	EffectiveDate    time.Time  `json:"effectiveDate" binding:"required"`
	ExpirationDate   time.Time  `json:"expirationDate" binding:"required"`
	WarningThreshold int        `json:"warningThreshold,omitempty"`
	GracePeriodEnd   *time.Time `json:"gracePeriodEnd,omitempty"`
	AutoRenewal      bool       `json:"autoRenewal,omitempty"`
	CreatedBy        string     `json:"createdBy" binding:"required"`
}

func (r RegisterRecordRequest) ToPriceStatusRecord() entities.PriceStatusRecord {
	return entities.PriceStatusRecord{
		PriceItemID:      r.PriceItemID,
		ProductName:      strings.TrimSpace(r.ProductName),
		VendorID:         strings.TrimSpace(r.VendorID),
		VendorName:       strings.TrimSpace(r.VendorName),
		CurrentStatus:    entities.PriceStatus(strings.TrimSpace(r.InitialStatus)),
		EffectiveDate:    r.EffectiveDate,
		ExpirationDate:   r.ExpirationDate,
		WarningThreshold: r.WarningThreshold,
		GracePeriodEnd:   r.GracePeriodEnd,
		AutoRenewal:      r.AutoRenewal,
	}
}

// ExpirationDateRangeRequest bounds bulk candidates by expiration date.
type ExpirationDateRangeRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// BulkFiltersRequest narrows the bulk candidate set.
type BulkFiltersRequest struct {
	CurrentStatus       []string                    `json:"currentStatus,omitempty"`
	VendorIDs           []string                    `json:"vendorIds,omitempty"`
	ExpirationDateRange *ExpirationDateRangeRequest `json:"expirationDateRange,omitempty"`
}

// BulkUpdateRequest is the POST bulk-update payload. priceItemIds may
// be empty, meaning "derive the candidate set from filters".
type BulkUpdateRequest struct {
	PriceItemIDs []string            `json:"priceItemIds"`
	TargetStatus string              `json:"targetStatus" binding:"required"`
	Reason       string              `json:"reason" binding:"required"`
	ChangedBy    string              `json:"changedBy" binding:"required"`
	Filters      *BulkFiltersRequest `json:"filters,omitempty"`
}

func (r BulkUpdateRequest) ToBulkTransitionRequest() entities.BulkTransitionRequest {
	out := entities.BulkTransitionRequest{
		PriceItemIDs: r.PriceItemIDs,
		TargetStatus: entities.PriceStatus(strings.TrimSpace(r.TargetStatus)),
		Reason:       r.Reason,
		ChangedBy:    r.ChangedBy,
	}

	if r.Filters != nil {
		filters := &entities.BulkTransitionFilters{
			VendorIDs: r.Filters.VendorIDs,
		}
		for _, s := range r.Filters.CurrentStatus {
			filters.CurrentStatus = append(filters.CurrentStatus, entities.PriceStatus(strings.TrimSpace(s)))
		}
		if dr := r.Filters.ExpirationDateRange; dr != nil {
			filters.ExpirationDateRange = &entities.ExpirationDateRange{
				StartDate: dr.StartDate,
				EndDate:   dr.EndDate,
			}
		}
		out.Filters = filters
	}

	return out
}

// SplitCSV turns a comma-separated query value into its non-empty parts.
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
