package interfaces

import "price-validity-service/internal/domain/entities"

// IStatusCatalog is the read-only registry of status definitions loaded
// at startup. Every status id referenced anywhere in the system must
// resolve here.
//
// Get reports absence through its second return; callers are expected
// to treat an unknown id as a normal outcome, not an error.

type IStatusCatalog interface {
	List() []entities.StatusDefinition
	Get(id entities.PriceStatus) (entities.StatusDefinition, bool)
	AllowedTransitions(id entities.PriceStatus) []entities.StatusDefinition
}
