package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRecordNotFound        = errors.New("price status record not found")
	ErrRecordAlreadyExists   = errors.New("price status record already exists")
	ErrUnknownInitialStatus  = errors.New("initial status is not defined in the catalog")
	ErrInvalidValidityWindow = errors.New("expiration date must be after effective date")
)

const (
	msgValidationFailed = "Status transition validation failed"
	msgRecordNotFound   = "Price record not found"

	defaultWarningThreshold = 7
)

// ILifecycleUseCase governs how a price record moves through validity
// states: single transitions, bulk transitions and the automatic
// date-driven sweep.
//
// Every operation returns a structured result; caller mistakes
// (illegal transition, missing record) never surface as errors. The
// error return on the sweep fires only when the record population
// cannot be read at all.

type ILifecycleUseCase interface {
	RegisterPriceRecord(ctx context.Context, record entities.PriceStatusRecord, changedBy string) (entities.PriceStatusRecord, error)
	UpdatePriceStatus(ctx context.Context, req entities.TransitionRequest) entities.TransitionResult
	BulkUpdateStatus(ctx context.Context, req entities.BulkTransitionRequest) entities.BulkTransitionResult
	CheckAndUpdateAutomaticStatuses(ctx context.Context) (entities.AutoSweepResult, error)
}

type LifecycleUseCase struct {
	catalog interfaces.IStatusCatalog
	repo    interfaces.IPriceStatusRepository
	now     func() time.Time
	logger  *logrus.Logger
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(catalog interfaces.IStatusCatalog, repo interfaces.IPriceStatusRepository, now func() time.Time, logger *logrus.Logger) *LifecycleUseCase {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &LifecycleUseCase{catalog: catalog, repo: repo, now: now, logger: logger}
}

// RegisterPriceRecord inserts a new price record with its initial
// status and a seed history entry. A missing price item id gets a
// generated one; the initial status must resolve in the catalog.
func (u *LifecycleUseCase) RegisterPriceRecord(ctx context.Context, record entities.PriceStatusRecord, changedBy string) (entities.PriceStatusRecord, error) {
	if record.CurrentStatus == "" {
		record.CurrentStatus = entities.PriceStatusActive
	}
	if _, ok := u.catalog.Get(record.CurrentStatus); !ok {
		return entities.PriceStatusRecord{}, ErrUnknownInitialStatus
	}
	if !record.ExpirationDate.After(record.EffectiveDate) {
		return entities.PriceStatusRecord{}, ErrInvalidValidityWindow
	}
	if record.WarningThreshold <= 0 {
		record.WarningThreshold = defaultWarningThreshold
	}

	record.PriceItemID = strings.TrimSpace(record.PriceItemID)
	if record.PriceItemID == "" {
		record.PriceItemID = uuid.NewString()
	}

	changedBy = strings.TrimSpace(changedBy)
	if changedBy == "" {
		changedBy = entities.SystemActor
	}

	now := u.now().UTC()
	record.StatusHistory = []entities.StatusHistoryEntry{{
		Status:    record.CurrentStatus,
		Timestamp: now,
		ChangedBy: changedBy,
		Reason:    "Price record registered",
	}}
	record.LastStatusCheck = now
	record.Version = 0

	created, err := u.repo.Create(ctx, record)
	if err != nil {
		u.logger.WithError(err).WithField("price_item_id", record.PriceItemID).Error("failed to create price status record")
		return entities.PriceStatusRecord{}, err
	}
	if created.PriceItemID == "" {
		return entities.PriceStatusRecord{}, ErrRecordAlreadyExists
	}
	return created, nil
}

// UpdatePriceStatus executes one transition: validate, then append a
// history entry and move the cached current status in a single
// conditional write. Exactly one record is touched.
func (u *LifecycleUseCase) UpdatePriceStatus(ctx context.Context, req entities.TransitionRequest) entities.TransitionResult {
	result := entities.TransitionResult{PriceItemID: req.PriceItemID}

	validation := ValidateStatusTransition(u.catalog, req)
	if !validation.IsValid {
		result.Message = msgValidationFailed
		result.ValidationErrors = validation.Errors
		result.ErrorType = entities.TransitionErrorValidation
		return result
	}

	record, err := u.repo.GetByID(ctx, strings.TrimSpace(req.PriceItemID))
	if err != nil {
		u.logger.WithError(err).WithField("price_item_id", req.PriceItemID).Error("failed to load price status record")
		result.Message = fmt.Sprintf("Failed to update status: %v", err)
		result.ErrorType = entities.TransitionErrorSystem
		return result
	}
	if record.PriceItemID == "" {
		result.Message = msgRecordNotFound
		result.ErrorType = entities.TransitionErrorNotFound
		return result
	}

	// Legality depends on the status at the moment of application, not
	// on what the caller last saw.
	if record.CurrentStatus != req.FromStatus {
		result.Message = fmt.Sprintf("Current status is %s, expected %s", record.CurrentStatus, req.FromStatus)
		result.ErrorType = entities.TransitionErrorConflict
		return result
	}

	transitionDate := u.now().UTC()
	if req.EffectiveDate != nil {
		transitionDate = req.EffectiveDate.UTC()
	}

	entry := entities.StatusHistoryEntry{
		Status:    req.ToStatus,
		Timestamp: transitionDate,
		ChangedBy: strings.TrimSpace(req.ChangedBy),
		Reason:    strings.TrimSpace(req.Reason),
	}

	updated, err := u.repo.ApplyTransition(ctx, record.PriceItemID, entry, record.CurrentStatus, record.Version)
	if err != nil {
		u.logger.WithError(err).WithField("price_item_id", req.PriceItemID).Error("failed to apply status transition")
		result.Message = fmt.Sprintf("Failed to update status: %v", err)
		result.ErrorType = entities.TransitionErrorSystem
		return result
	}
	if updated.PriceItemID == "" {
		// Condition failed: someone else transitioned the record between
		// our read and write.
		result.Message = fmt.Sprintf("Record %s was modified concurrently, retry with its current status", req.PriceItemID)
		result.ErrorType = entities.TransitionErrorConflict
		return result
	}

	result.Success = true
	result.Message = fmt.Sprintf("Status successfully updated from %s to %s", req.FromStatus, req.ToStatus)
	result.NewStatus = updated.CurrentStatus
	result.TransitionDate = &transitionDate
	return result
}

// BulkUpdateStatus fans one logical request out into independent
// per-record transitions. A per-item failure never aborts the batch;
// cancellation is honored between iterations and leaves already-applied
// transitions intact.
func (u *LifecycleUseCase) BulkUpdateStatus(ctx context.Context, req entities.BulkTransitionRequest) entities.BulkTransitionResult {
	records, err := u.repo.List(ctx)
	if err != nil {
		u.logger.WithError(err).Error("failed to list price status records for bulk update")
		return entities.BulkTransitionResult{
			Message: fmt.Sprintf("Bulk update failed: %v", err),
		}
	}

	candidates := filterBulkCandidates(records, req)

	result := entities.BulkTransitionResult{
		Results: make([]entities.TransitionResult, 0, len(candidates)),
	}

	for _, record := range candidates {
		if ctx.Err() != nil {
			u.logger.WithField("remaining", len(candidates)-len(result.Results)).Warn("bulk update cancelled mid-batch")
			break
		}

		itemResult := u.UpdatePriceStatus(ctx, entities.TransitionRequest{
			PriceItemID: record.PriceItemID,
			FromStatus:  record.CurrentStatus,
			ToStatus:    req.TargetStatus,
			Reason:      req.Reason,
			ChangedBy:   req.ChangedBy,
		})
		result.Results = append(result.Results, itemResult)

		if itemResult.Success {
			result.UpdatedCount++
		} else {
			result.FailedCount++
		}
	}

	result.Success = result.FailedCount == 0
	result.Message = fmt.Sprintf("Bulk update completed: %d updated, %d failed", result.UpdatedCount, result.FailedCount)
	return result
}

func filterBulkCandidates(records []entities.PriceStatusRecord, req entities.BulkTransitionRequest) []entities.PriceStatusRecord {
	candidates := records

	if f := req.Filters; f != nil {
		if len(f.CurrentStatus) > 0 {
			candidates = keepRecords(candidates, func(r entities.PriceStatusRecord) bool {
				for _, s := range f.CurrentStatus {
					if r.CurrentStatus == s {
						return true
					}
				}
				return false
			})
		}
		if len(f.VendorIDs) > 0 {
			candidates = keepRecords(candidates, func(r entities.PriceStatusRecord) bool {
				for _, v := range f.VendorIDs {
					if r.VendorID == v {
						return true
					}
				}
				return false
			})
		}
		if dr := f.ExpirationDateRange; dr != nil {
			candidates = keepRecords(candidates, func(r entities.PriceStatusRecord) bool {
				return !r.ExpirationDate.Before(dr.StartDate) && !r.ExpirationDate.After(dr.EndDate)
			})
		}
	}

	if len(req.PriceItemIDs) > 0 {
		wanted := make(map[string]struct{}, len(req.PriceItemIDs))
		for _, id := range req.PriceItemIDs {
			wanted[id] = struct{}{}
		}
		candidates = keepRecords(candidates, func(r entities.PriceStatusRecord) bool {
			_, ok := wanted[r.PriceItemID]
			return ok
		})
	}

	return candidates
}

func keepRecords(records []entities.PriceStatusRecord, keep func(entities.PriceStatusRecord) bool) []entities.PriceStatusRecord {
	out := records[:0:0]
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// CheckAndUpdateAutomaticStatuses evaluates every record against the
// date-driven rule table and applies due transitions as the system
// actor. Per-record failures are logged and skipped; the sweep keeps
// going. Safe to re-run immediately: an applied transition makes the
// rule table return nothing for that record.
func (u *LifecycleUseCase) CheckAndUpdateAutomaticStatuses(ctx context.Context) (entities.AutoSweepResult, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return entities.AutoSweepResult{}, err
	}

	result := entities.AutoSweepResult{
		CheckedCount: len(records),
		Updates:      []entities.AppliedTransition{},
	}
	now := u.now().UTC()

	for _, record := range records {
		target, reason, due := EvaluateAutomaticTransition(record, now)
		if !due || target == record.CurrentStatus {
			continue
		}

		itemResult := u.UpdatePriceStatus(ctx, entities.TransitionRequest{
			PriceItemID: record.PriceItemID,
			FromStatus:  record.CurrentStatus,
			ToStatus:    target,
			Reason:      reason,
			ChangedBy:   entities.SystemActor,
		})
		if !itemResult.Success {
			u.logger.WithFields(logrus.Fields{
				"price_item_id": record.PriceItemID,
				"from_status":   record.CurrentStatus,
				"to_status":     target,
				"message":       itemResult.Message,
			}).Warn("automatic transition not applied")
			continue
		}

		result.Updates = append(result.Updates, entities.AppliedTransition{
			PriceItemID: record.PriceItemID,
			FromStatus:  record.CurrentStatus,
			ToStatus:    target,
			Reason:      reason,
		})
		result.UpdatedCount++
	}

	return result, nil
}
