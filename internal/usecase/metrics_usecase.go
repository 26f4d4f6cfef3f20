package usecase

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	dashboardCacheKey = "price-validity:dashboard"
	dashboardCacheTTL = 60 * time.Second

	recentChangesWindow = 7 * 24 * time.Hour
	recentChangesLimit  = 10
	actionItemsLimit    = 5
)

// IMetricsUseCase is the read-side projection over the status record
// population: derived counts, dashboard composition and filtered record
// views. Everything here is disposable and recomputed on demand.

type IMetricsUseCase interface {
	GetStatusMetrics(ctx context.Context) (entities.StatusMetricsSnapshot, error)
	GetStatusDashboard(ctx context.Context) (entities.StatusDashboard, error)
	GetPriceStatusData(ctx context.Context, priceItemIDs []string, statuses []entities.PriceStatus, urgency entities.UrgencyLevel) ([]entities.PriceStatusProjection, error)
	GetItemsRequiringAction(ctx context.Context, urgency entities.UrgencyLevel) ([]entities.PriceStatusProjection, error)
	GetStatusHistory(ctx context.Context, priceItemID string) ([]entities.StatusHistoryEntry, error)
}

type MetricsUseCase struct {
	catalog interfaces.IStatusCatalog
	repo    interfaces.IPriceStatusRepository
	now     func() time.Time
	cache   *redis.Client
	logger  *logrus.Logger
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

// NewMetricsUseCase builds the aggregator. cache may be nil, in which
// case every dashboard call recomputes from the store.
func NewMetricsUseCase(catalog interfaces.IStatusCatalog, repo interfaces.IPriceStatusRepository, now func() time.Time, cache *redis.Client, logger *logrus.Logger) *MetricsUseCase {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &MetricsUseCase{catalog: catalog, repo: repo, now: now, cache: cache, logger: logger}
}

func (u *MetricsUseCase) GetStatusMetrics(ctx context.Context) (entities.StatusMetricsSnapshot, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return entities.StatusMetricsSnapshot{}, err
	}
	return u.computeMetrics(records), nil
}

func (u *MetricsUseCase) computeMetrics(records []entities.PriceStatusRecord) entities.StatusMetricsSnapshot {
	now := u.now().UTC()
	snapshot := entities.StatusMetricsSnapshot{
		TotalPrices:  len(records),
		StatusCounts: make(map[entities.PriceStatus]int),
		LastUpdated:  now,
	}

	daysSum := 0
	daysCount := 0

	for _, record := range records {
		snapshot.StatusCounts[record.CurrentStatus]++

		if record.AutoRenewal {
			snapshot.AutoRenewalEnabled++
		}

		if def, ok := u.catalog.Get(record.CurrentStatus); ok && def.RequiresAction {
			snapshot.RequiresActionCount++
			switch def.UrgencyLevel {
			case entities.UrgencyHigh:
				snapshot.HighUrgencyCount++
			case entities.UrgencyMedium:
				snapshot.MediumUrgencyCount++
			case entities.UrgencyLow:
				snapshot.LowUrgencyCount++
			}
		}

		if days := record.DaysUntilExpiration(now); days > 0 {
			daysSum += days
			daysCount++
		}
	}

	if daysCount > 0 {
		snapshot.AverageDaysUntilExpiration = math.Round(float64(daysSum)/float64(daysCount)*10) / 10
	}

	return snapshot
}

// GetStatusDashboard composes metrics, the recent-change feed, action
// items and the status distribution. Served from cache for a short TTL
// when redis is configured; a cache failure only costs the recompute.
//
// Action items are ordered by catalog definition order, not urgency.
// Catalog order is stable across reloads, urgency ordering is not.
func (u *MetricsUseCase) GetStatusDashboard(ctx context.Context) (entities.StatusDashboard, error) {
	if u.cache != nil {
		if cached, err := u.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var dashboard entities.StatusDashboard
			if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
				return dashboard, nil
			}
			u.logger.Warn("discarding unreadable cached dashboard")
		}
	}

	records, err := u.repo.List(ctx)
	if err != nil {
		return entities.StatusDashboard{}, err
	}

	dashboard := entities.StatusDashboard{
		Metrics:            u.computeMetrics(records),
		RecentChanges:      u.recentChanges(records),
		ActionItems:        u.actionItems(records),
		StatusDistribution: []entities.StatusDistributionSlice{},
	}

	total := dashboard.Metrics.TotalPrices
	for _, def := range u.catalog.List() {
		count := dashboard.Metrics.StatusCounts[def.ID]
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(count) / float64(total) * 100))
		}
		dashboard.StatusDistribution = append(dashboard.StatusDistribution, entities.StatusDistributionSlice{
			Status:     def.ID,
			Count:      count,
			Percentage: percentage,
			Color:      def.Color,
		})
	}

	if u.cache != nil {
		if payload, err := json.Marshal(dashboard); err == nil {
			if err := u.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				u.logger.WithError(err).Warn("failed to cache dashboard")
			}
		}
	}

	return dashboard, nil
}

func (u *MetricsUseCase) recentChanges(records []entities.PriceStatusRecord) []entities.StatusHistoryEntry {
	cutoff := u.now().UTC().Add(-recentChangesWindow)

	changes := []entities.StatusHistoryEntry{}
	for _, record := range records {
		for _, entry := range record.StatusHistory {
			if !entry.Timestamp.Before(cutoff) {
				changes = append(changes, entry)
			}
		}
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Timestamp.After(changes[j].Timestamp)
	})

	if len(changes) > recentChangesLimit {
		changes = changes[:recentChangesLimit]
	}
	return changes
}

func (u *MetricsUseCase) actionItems(records []entities.PriceStatusRecord) []entities.PriceStatusProjection {
	now := u.now().UTC()
	items := []entities.PriceStatusProjection{}

	for _, def := range u.catalog.List() {
		if !def.RequiresAction {
			continue
		}
		for _, record := range records {
			if record.CurrentStatus != def.ID {
				continue
			}
			items = append(items, u.project(record, now))
			if len(items) == actionItemsLimit {
				return items
			}
		}
	}
	return items
}

func (u *MetricsUseCase) GetPriceStatusData(ctx context.Context, priceItemIDs []string, statuses []entities.PriceStatus, urgency entities.UrgencyLevel) ([]entities.PriceStatusProjection, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(priceItemIDs) > 0 {
		wanted := make(map[string]struct{}, len(priceItemIDs))
		for _, id := range priceItemIDs {
			wanted[strings.TrimSpace(id)] = struct{}{}
		}
		records = keepRecords(records, func(r entities.PriceStatusRecord) bool {
			_, ok := wanted[r.PriceItemID]
			return ok
		})
	}

	if len(statuses) > 0 {
		records = keepRecords(records, func(r entities.PriceStatusRecord) bool {
			for _, s := range statuses {
				if r.CurrentStatus == s {
					return true
				}
			}
			return false
		})
	}

	if urgency != "" {
		records = keepRecords(records, u.urgencyFilter(urgency))
	}

	now := u.now().UTC()
	projections := make([]entities.PriceStatusProjection, 0, len(records))
	for _, record := range records {
		projections = append(projections, u.project(record, now))
	}
	return projections, nil
}

func (u *MetricsUseCase) GetItemsRequiringAction(ctx context.Context, urgency entities.UrgencyLevel) ([]entities.PriceStatusProjection, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	records = keepRecords(records, u.urgencyFilter(urgency))

	now := u.now().UTC()
	projections := make([]entities.PriceStatusProjection, 0, len(records))
	for _, record := range records {
		projections = append(projections, u.project(record, now))
	}
	return projections, nil
}

// urgencyFilter keeps records whose current status requires action,
// optionally narrowed to one urgency tier.
func (u *MetricsUseCase) urgencyFilter(urgency entities.UrgencyLevel) func(entities.PriceStatusRecord) bool {
	return func(r entities.PriceStatusRecord) bool {
		def, ok := u.catalog.Get(r.CurrentStatus)
		if !ok || !def.RequiresAction {
			return false
		}
		return urgency == "" || def.UrgencyLevel == urgency
	}
}

func (u *MetricsUseCase) GetStatusHistory(ctx context.Context, priceItemID string) ([]entities.StatusHistoryEntry, error) {
	record, err := u.repo.GetByID(ctx, strings.TrimSpace(priceItemID))
	if err != nil {
		return nil, err
	}
	if record.PriceItemID == "" {
		return nil, ErrRecordNotFound
	}
	return record.StatusHistory, nil
}

func (u *MetricsUseCase) project(record entities.PriceStatusRecord, now time.Time) entities.PriceStatusProjection {
	days := record.DaysUntilExpiration(now)
	projection := entities.PriceStatusProjection{
		PriceStatusRecord:        record,
		DaysUntilExpirationValue: days,
	}
	if days < 0 {
		projection.DaysSinceExpiration = -days
	}
	projection.IsInWarningPeriod = days > 0 && days <= record.WarningThreshold
	return projection
}
