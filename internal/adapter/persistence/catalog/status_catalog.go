package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// StatusCatalog is the immutable-per-load registry of status
// definitions. Loaded once at startup, read-only afterwards; no
// locking is needed.
type StatusCatalog struct {
	definitions []entities.StatusDefinition
	byID        map[entities.PriceStatus]entities.StatusDefinition
	logger      *logrus.Logger
}

var _ interfaces.IStatusCatalog = (*StatusCatalog)(nil)

// NewDefault returns the built-in catalog used when no override file is
// configured.
func NewDefault(logger *logrus.Logger) *StatusCatalog {
	return newCatalog(defaultDefinitions(), logger)
}

// NewFromFile loads a catalog override from a JSON document shaped as
// {"statusIndicators": [...StatusDefinition]}.
func NewFromFile(path string, logger *logrus.Logger) (*StatusCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read status catalog %s: %w", path, err)
	}

	var doc struct {
		StatusIndicators []entities.StatusDefinition `json:"statusIndicators"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse status catalog %s: %w", path, err)
	}
	if len(doc.StatusIndicators) == 0 {
		return nil, fmt.Errorf("status catalog %s defines no statuses", path)
	}

	return newCatalog(doc.StatusIndicators, logger), nil
}

// Load builds the catalog from STATUS_CATALOG_PATH when set, falling
// back to the built-in definitions otherwise.
func Load(logger *logrus.Logger) (*StatusCatalog, error) {
	if path := os.Getenv("STATUS_CATALOG_PATH"); path != "" {
		return NewFromFile(path, logger)
	}
	return NewDefault(logger), nil
}

func newCatalog(definitions []entities.StatusDefinition, logger *logrus.Logger) *StatusCatalog {
	if logger == nil {
		logger = logrus.New()
	}
	byID := make(map[entities.PriceStatus]entities.StatusDefinition, len(definitions))
	for _, def := range definitions {
		byID[def.ID] = def
	}
	return &StatusCatalog{definitions: definitions, byID: byID, logger: logger}
}

// List returns the full catalog in definition order.
func (c *StatusCatalog) List() []entities.StatusDefinition {
	out := make([]entities.StatusDefinition, len(c.definitions))
	copy(out, c.definitions)
	return out
}

// Get looks a definition up by id. Absence is a normal outcome.
func (c *StatusCatalog) Get(id entities.PriceStatus) (entities.StatusDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// AllowedTransitions resolves the configured transition ids of a status
// into full definitions. Ids that no longer exist in the catalog are
// dropped with a warning; configuration drift must not take the engine
// down.
func (c *StatusCatalog) AllowedTransitions(id entities.PriceStatus) []entities.StatusDefinition {
	def, ok := c.byID[id]
	if !ok {
		return []entities.StatusDefinition{}
	}

	out := make([]entities.StatusDefinition, 0, len(def.AllowedTransitions))
	for _, target := range def.AllowedTransitions {
		resolved, ok := c.byID[target]
		if !ok {
			c.logger.WithFields(logrus.Fields{
				"status":     id,
				"transition": target,
			}).Warn("allowed transition references unknown status, dropping")
			continue
		}
		out = append(out, resolved)
	}
	return out
}

func defaultDefinitions() []entities.StatusDefinition {
	return []entities.StatusDefinition{
		{
			ID:                 entities.PriceStatusActive,
			Name:               "Active",
			Description:        "Price is valid and in effect",
			Color:              "#10B981",
			BackgroundColor:    "#ECFDF5",
			Icon:               "check-circle",
			Priority:           1,
			DisplayText:        "Active",
			BadgeVariant:       "success",
			AllowedTransitions: []entities.PriceStatus{entities.PriceStatusExpiring, entities.PriceStatusSuspended},
		},
		{
			ID:                 entities.PriceStatusExpiring,
			Name:               "Expiring Soon",
			Description:        "Price enters its warning window before expiration",
			Color:              "#F59E0B",
			BackgroundColor:    "#FFFBEB",
			Icon:               "clock",
			Priority:           2,
			DisplayText:        "Expiring Soon",
			BadgeVariant:       "warning",
			AllowedTransitions: []entities.PriceStatus{entities.PriceStatusExpired, entities.PriceStatusActive, entities.PriceStatusPendingRenewal},
			RequiresAction:     true,
			ActionText:         "Review and renew",
			UrgencyLevel:       entities.UrgencyMedium,
		},
		{
			ID:                 entities.PriceStatusExpired,
			Name:               "Expired",
			Description:        "Price has passed its expiration date",
			Color:              "#EF4444",
			BackgroundColor:    "#FEF2F2",
			Icon:               "x-circle",
			Priority:           3,
			DisplayText:        "Expired",
			BadgeVariant:       "destructive",
			AllowedTransitions: []entities.PriceStatus{entities.PriceStatusGracePeriod, entities.PriceStatusActive},
			RequiresAction:     true,
			ActionText:         "Renew immediately",
			UrgencyLevel:       entities.UrgencyHigh,
		},
		{
			ID:                 entities.PriceStatusGracePeriod,
			Name:               "Grace Period",
			Description:        "Expired price still honored pending renewal",
			Color:              "#8B5CF6",
			BackgroundColor:    "#F5F3FF",
			Icon:               "shield",
			Priority:           4,
			DisplayText:        "Grace Period",
			BadgeVariant:       "secondary",
			AllowedTransitions: []entities.PriceStatus{entities.PriceStatusActive, entities.PriceStatusExpired},
			RequiresAction:     true,
			ActionText:         "Complete renewal",
			UrgencyLevel:       entities.UrgencyHigh,
		},
		{
			ID:                 entities.PriceStatusSuspended,
			Name:               "Suspended",
			Description:        "Price manually taken out of effect",
			Color:              "#6B7280",
			BackgroundColor:    "#F9FAFB",
			Icon:               "pause-circle",
			Priority:           5,
			DisplayText:        "Suspended",
			BadgeVariant:       "outline",
			AllowedTransitions: []entities.PriceStatus{entities.PriceStatusActive, entities.PriceStatusExpired},
			RequiresAction:     true,
			ActionText:         "Investigate suspension",
			UrgencyLevel:       entities.UrgencyLow,
		},
		{
			ID:                 entities.PriceStatusPendingRenewal,
			Name:               "Pending Renewal",
			Description:        "Renewal requested, awaiting approval",
			Color:              "#3B82F6",
			BackgroundColor:    "#EFF6FF",
			Icon:               "refresh-cw",
			Priority:           6,
			DisplayText:        "Pending Renewal",
			BadgeVariant:       "default",
			AllowedTransitions: []entities.PriceStatus{entities.PriceStatusActive, entities.PriceStatusExpired},
		},
	}
}
