package handlers

import (
	"errors"
	"net/http"

	request "price-validity-service/internal/adapter/http/dto/request"
	response "price-validity-service/internal/adapter/http/dto/response"
	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase"
	"price-validity-service/internal/usecase/interfaces"
	"price-validity-service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MetricsHandler exposes the read side: status data, metrics, the
// dashboard, per-record history and the lifecycle-states view.
//
// Collaborator data (reporting trends, lifecycle configuration) is
// fetched best-effort: when a sibling service is down the response
// simply omits its fields.

type MetricsHandler struct {
	metrics      usecase.IMetricsUseCase
	catalog      interfaces.IStatusCatalog
	reporting    interfaces.IValidityReporting
	configSource interfaces.ILifecycleConfigSource
	logger       *logrus.Logger
}

func NewMetricsHandler(
	metrics usecase.IMetricsUseCase,
	catalog interfaces.IStatusCatalog,
	reporting interfaces.IValidityReporting,
	configSource interfaces.ILifecycleConfigSource,
	logger *logrus.Logger,
) *MetricsHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &MetricsHandler{
		metrics:      metrics,
		catalog:      catalog,
		reporting:    reporting,
		configSource: configSource,
		logger:       logger,
	}
}

// GetStatusData handles GET /status-data?priceItemIds=&status=&urgency=.
func (h *MetricsHandler) GetStatusData(c *gin.Context) {
	ids := request.SplitCSV(c.Query("priceItemIds"))

	var statuses []entities.PriceStatus
	for _, s := range request.SplitCSV(c.Query("status")) {
		statuses = append(statuses, entities.PriceStatus(s))
	}

	urgency := entities.UrgencyLevel(c.Query("urgency"))

	data, err := h.metrics.GetPriceStatusData(c.Request.Context(), ids, statuses, urgency)
	if err != nil {
		h.internalError(c, "Failed to get status data", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(data))
}

// GetMetrics handles GET /metrics.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	snapshot, err := h.metrics.GetStatusMetrics(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to get metrics", err)
		return
	}

	var summary interfaces.ValiditySummary
	if h.reporting != nil {
		summary, err = h.reporting.GetValiditySummary(c.Request.Context())
		if err != nil {
			h.logger.WithError(err).Warn("reporting collaborator unavailable")
			summary = interfaces.ValiditySummary{}
		}
	}

	c.JSON(http.StatusOK, response.OK(response.NewMetricsResponse(snapshot, summary)))
}

// GetDashboard handles GET /dashboard.
func (h *MetricsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.metrics.GetStatusDashboard(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to get dashboard data", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(dashboard))
}

// GetHistory handles GET /history/:priceItemId.
func (h *MetricsHandler) GetHistory(c *gin.Context) {
	history, err := h.metrics.GetStatusHistory(c.Request.Context(), c.Param("priceItemId"))
	if err != nil {
		if errors.Is(err, usecase.ErrRecordNotFound) {
			appErr := pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Price record not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.internalError(c, "Failed to get status history", err)
		return
	}
	c.JSON(http.StatusOK, response.OK(history))
}

// GetLifecycleStates handles GET /lifecycle-states: the full catalog
// plus the externally owned validity-period and transition-rule
// configuration.
func (h *MetricsHandler) GetLifecycleStates(c *gin.Context) {
	body := response.LifecycleStatesResponse{
		States: h.catalog.List(),
	}

	if h.configSource != nil {
		ctx := c.Request.Context()
		if periods, err := h.configSource.GetValidityPeriods(ctx); err != nil {
			h.logger.WithError(err).Warn("lifecycle config collaborator unavailable")
		} else {
			body.ValidityPeriods = periods
		}
		if rules, err := h.configSource.GetTransitionRules(ctx); err != nil {
			h.logger.WithError(err).Warn("lifecycle config collaborator unavailable")
		} else {
			body.TransitionRules = rules
		}
	}

	c.JSON(http.StatusOK, response.OK(body))
}

func (h *MetricsHandler) internalError(c *gin.Context, message string, err error) {
	h.logger.WithError(err).Error(message)
	appErr := pkg.NewDomainError("INTERNAL_ERROR", message, err, http.StatusInternalServerError)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
