package handlers

import (
	"context"
	"errors"
	"fmt"
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

var (
	errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSITION_INPUT", "Invalid transition payload", http.StatusBadRequest)
	errInvalidBulkPayload       = pkg.NewDomainErrorSimple("INVALID_BULK_INPUT", "Invalid bulk update payload", http.StatusBadRequest)
	errInvalidRecordPayload     = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)
)

// LifecycleHandler exposes the write side of the validity engine:
// single transitions, bulk transitions and the automatic sweep trigger.

type LifecycleHandler struct {
	lifecycle usecase.ILifecycleUseCase
	renewal   interfaces.IRenewalSweeper
	logger    *logrus.Logger
}

// NewLifecycleHandler wires the lifecycle use case and the optional
// renewal collaborator (nil disables the parallel renewal sweep).
func NewLifecycleHandler(lifecycle usecase.ILifecycleUseCase, renewal interfaces.IRenewalSweeper, logger *logrus.Logger) *LifecycleHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &LifecycleHandler{lifecycle: lifecycle, renewal: renewal, logger: logger}
}

// RegisterRecord handles POST /records.
func (h *LifecycleHandler) RegisterRecord(c *gin.Context) {
	var payload request.RegisterRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	record, err := h.lifecycle.RegisterPriceRecord(c.Request.Context(), payload.ToPriceStatusRecord(), payload.CreatedBy)
	if err != nil {
		appErr := mapRegisterError(err)
		if appErr.HTTPStatus == http.StatusInternalServerError {
			h.logger.WithError(err).Error("failed to register price record")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(record))
}

func mapRegisterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRecordAlreadyExists):
		return pkg.NewDomainError("RECORD_EXISTS", "Price record already exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownInitialStatus), errors.Is(err, usecase.ErrInvalidValidityWindow):
		return pkg.NewDomainError("INVALID_RECORD", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Failed to register price record", err, http.StatusInternalServerError)
	}
}

// UpdateStatus handles POST /update-status. Missing required fields are
// rejected here with 400 before the engine is invoked; engine
// validation failures come back as 422 with the full error list.
func (h *LifecycleHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	result := h.lifecycle.UpdatePriceStatus(c.Request.Context(), payload.ToTransitionRequest())
	c.JSON(transitionStatusCode(result), response.FromTransitionResult(result))
}

// BulkUpdate handles POST /bulk-update. The response always carries the
// full per-item breakdown; 207 signals partial failure.
func (h *LifecycleHandler) BulkUpdate(c *gin.Context) {
	var payload request.BulkUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulkPayload.HTTPStatus, errInvalidBulkPayload.ToHTTPError())
		return
	}

	result := h.lifecycle.BulkUpdateStatus(c.Request.Context(), payload.ToBulkTransitionRequest())

	status := http.StatusOK
	if !result.Success {
		status = http.StatusMultiStatus
	}
	c.JSON(status, response.FromBulkResult(result))
}

// ProcessAutomaticTransitions handles PUT /process-automatic-transitions.
// The engine sweep and the renewal collaborator's sweep run in
// parallel; a renewal failure is logged and reported as zero, never as
// a failed response.
func (h *LifecycleHandler) ProcessAutomaticTransitions(c *gin.Context) {
	ctx := c.Request.Context()

	renewalCh := make(chan int, 1)
	go func() {
		renewalCh <- h.triggerRenewalSweep(ctx)
	}()

	sweep, err := h.lifecycle.CheckAndUpdateAutomaticStatuses(ctx)
	renewalCount := <-renewalCh
	if err != nil {
		h.logger.WithError(err).Error("automatic sweep failed")
		appErr := pkg.NewDomainError("SWEEP_FAILED", "Failed to process automatic transitions", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body := response.NewSweepResponse(sweep, renewalCount)
	c.JSON(http.StatusOK, response.OKWithMessage(body, sweepMessage(body)))
}

func (h *LifecycleHandler) triggerRenewalSweep(ctx context.Context) int {
	if h.renewal == nil {
		return 0
	}
	count, err := h.renewal.TriggerRenewalSweep(ctx)
	if err != nil {
		h.logger.WithError(err).Warn("renewal sweep unavailable")
		return 0
	}
	return count
}

func sweepMessage(body response.SweepResponse) string {
	return fmt.Sprintf("Processed %d automatic transitions", body.TotalApplied)
}

func transitionStatusCode(result entities.TransitionResult) int {
	if result.Success {
		return http.StatusOK
	}
	switch result.ErrorType {
	case entities.TransitionErrorValidation:
		return http.StatusUnprocessableEntity
	case entities.TransitionErrorNotFound:
		return http.StatusNotFound
	case entities.TransitionErrorConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
