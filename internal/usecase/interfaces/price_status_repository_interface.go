package interfaces

import (
	"context"

	"price-validity-service/internal/domain/entities"
)

// IPriceStatusRepository abstracts DynamoDB persistence for price status
// records.
//
// The price-validity-service must be able to:
//   - list the full record population (sweep, bulk, metrics)
//   - resolve a single record by price item id
//   - apply one transition as an atomic read-validate-write: the write
//     is conditioned on the status and version observed at read time,
//     so no two transitions can land on the same record concurrently.
//
// Absence and condition failure are reported as a zero-value record,
// not an error; errors are reserved for storage failures.

type IPriceStatusRepository interface {
	List(ctx context.Context) ([]entities.PriceStatusRecord, error)
	GetByID(ctx context.Context, priceItemID string) (entities.PriceStatusRecord, error)
	Create(ctx context.Context, record entities.PriceStatusRecord) (entities.PriceStatusRecord, error)
	ApplyTransition(ctx context.Context, priceItemID string, entry entities.StatusHistoryEntry, expectedStatus entities.PriceStatus, expectedVersion int64) (entities.PriceStatusRecord, error)
}
