package usecase

import (
	"fmt"
	"time"

	"price-validity-service/internal/domain/entities"
)

// EvaluateAutomaticTransition applies the date-driven rule table to one
// record and returns the due target status with a human reason, or
// ok=false when no transition is due. Deterministic and pure: the same
// record and clock always yield the same answer. Once a record has
// moved, re-evaluation returns ok=false until a further date boundary
// is crossed, so re-running the sweep is harmless.
//
// Rule table, evaluated against the record's current status:
//   - active   -> expiring      when daysUntilExpiration <= warningThreshold
//   - expiring -> expired       when daysUntilExpiration <= 0
//   - expired  -> grace_period  while gracePeriodEnd is set and now <= gracePeriodEnd
func EvaluateAutomaticTransition(record entities.PriceStatusRecord, now time.Time) (entities.PriceStatus, string, bool) {
	daysUntilExpiration := record.DaysUntilExpiration(now)

	switch record.CurrentStatus {
	case entities.PriceStatusActive:
		if daysUntilExpiration <= record.WarningThreshold {
			return entities.PriceStatusExpiring,
				fmt.Sprintf("Entered warning period (%d days remaining)", daysUntilExpiration), true
		}
	case entities.PriceStatusExpiring:
		if daysUntilExpiration <= 0 {
			return entities.PriceStatusExpired, "Reached expiration date", true
		}
	case entities.PriceStatusExpired:
		if record.GracePeriodEnd != nil && !now.After(*record.GracePeriodEnd) {
			return entities.PriceStatusGracePeriod, "Entered grace period", true
		}
	}

	return "", "", false
}
