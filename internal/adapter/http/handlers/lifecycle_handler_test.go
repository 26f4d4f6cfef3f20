package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"price-validity-service/internal/adapter/http/handlers/mocks"
	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase"
	mock_interfaces "price-validity-service/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const updateStatusBody = `{
	"priceItemId": "price-1",
	"fromStatus": "active",
	"toStatus": "expiring",
	"reason": "Entering warning window",
	"changedBy": "ops@acme.com"
}`

func TestLifecycleHandler_RegisterRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *LifecycleHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/price-validity/records", h.RegisterRecord)
		return r
	}

	registerBody := `{
		"productName": "Widget",
		"vendorId": "vendor-a",
		"effectiveDate": "2026-08-01T00:00:00Z",
		"expirationDate": "2026-11-01T00:00:00Z",
		"createdBy": "ops@acme.com"
	}`

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/records", bytes.NewBufferString(`{"productName":"Widget"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		uc.EXPECT().RegisterPriceRecord(gomock.Any(), gomock.Any(), "ops@acme.com").Return(entities.PriceStatusRecord{}, usecase.ErrRecordAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/records", bytes.NewBufferString(registerBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("invalid validity window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		uc.EXPECT().RegisterPriceRecord(gomock.Any(), gomock.Any(), "ops@acme.com").Return(entities.PriceStatusRecord{}, usecase.ErrInvalidValidityWindow)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/records", bytes.NewBufferString(registerBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		uc.EXPECT().RegisterPriceRecord(gomock.Any(), gomock.Any(), "ops@acme.com").DoAndReturn(
			func(_ interface{}, record entities.PriceStatusRecord, _ string) (entities.PriceStatusRecord, error) {
				if record.ProductName != "Widget" || record.VendorID != "vendor-a" {
					t.Fatalf("unexpected record: %+v", record)
				}
				record.PriceItemID = "generated-id"
				record.CurrentStatus = entities.PriceStatusActive
				return record, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/records", bytes.NewBufferString(registerBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data := body["data"].(map[string]any)
		if data["priceItemId"] != "generated-id" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLifecycleHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *LifecycleHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/price-validity/update-status", h.UpdateStatus)
		return r
	}

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/update-status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/update-status", bytes.NewBufferString(`{"priceItemId":"price-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("result class maps to status code", func(t *testing.T) {
		cases := []struct {
			name   string
			result entities.TransitionResult
			want   int
		}{
			{
				name:   "validation failure",
				result: entities.TransitionResult{ErrorType: entities.TransitionErrorValidation, ValidationErrors: []string{"Transition from active to expired is not allowed"}},
				want:   http.StatusUnprocessableEntity,
			},
			{
				name:   "record not found",
				result: entities.TransitionResult{ErrorType: entities.TransitionErrorNotFound},
				want:   http.StatusNotFound,
			},
			{
				name:   "conflict",
				result: entities.TransitionResult{ErrorType: entities.TransitionErrorConflict},
				want:   http.StatusConflict,
			},
			{
				name:   "system failure",
				result: entities.TransitionResult{ErrorType: entities.TransitionErrorSystem},
				want:   http.StatusInternalServerError,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockILifecycleUseCase(ctrl)
				h := NewLifecycleHandler(uc, nil, nil)
				r := newRouter(h)

				uc.EXPECT().UpdatePriceStatus(gomock.Any(), gomock.Any()).Return(tc.result)

				req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/update-status", bytes.NewBufferString(updateStatusBody))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		transitionDate := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().UpdatePriceStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, req entities.TransitionRequest) entities.TransitionResult {
				if req.PriceItemID != "price-1" || req.FromStatus != entities.PriceStatusActive {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.TransitionResult{
					PriceItemID:    "price-1",
					Success:        true,
					Message:        "Status successfully updated from active to expiring",
					NewStatus:      entities.PriceStatusExpiring,
					TransitionDate: &transitionDate,
				}
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/update-status", bytes.NewBufferString(updateStatusBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		data := body["data"].(map[string]any)
		if data["newStatus"] != "expiring" {
			t.Fatalf("unexpected data: %s", w.Body.String())
		}
	})
}

func TestLifecycleHandler_BulkUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *LifecycleHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/price-validity/bulk-update", h.BulkUpdate)
		return r
	}

	bulkBody := `{
		"priceItemIds": ["price-1", "price-2"],
		"targetStatus": "suspended",
		"reason": "Vendor review",
		"changedBy": "ops@acme.com"
	}`

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/bulk-update", bytes.NewBufferString(`{"targetStatus":"suspended"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("all items updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		uc.EXPECT().BulkUpdateStatus(gomock.Any(), gomock.Any()).Return(entities.BulkTransitionResult{
			Success:      true,
			Message:      "Bulk update completed: 2 updated, 0 failed",
			UpdatedCount: 2,
			Results:      []entities.TransitionResult{{Success: true}, {Success: true}},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/bulk-update", bytes.NewBufferString(bulkBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("partial failure reports 207", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		uc.EXPECT().BulkUpdateStatus(gomock.Any(), gomock.Any()).Return(entities.BulkTransitionResult{
			Message:      "Bulk update completed: 1 updated, 1 failed",
			UpdatedCount: 1,
			FailedCount:  1,
			Results: []entities.TransitionResult{
				{Success: true},
				{ErrorType: entities.TransitionErrorNotFound, Message: "Price record not found"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/price-validity/bulk-update", bytes.NewBufferString(bulkBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMultiStatus {
			t.Fatalf("expected 207, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data := body["data"].(map[string]any)
		if len(data["results"].([]any)) != 2 {
			t.Fatalf("expected per-item breakdown: %s", w.Body.String())
		}
	})
}

func TestLifecycleHandler_ProcessAutomaticTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *LifecycleHandler) *gin.Engine {
		r := gin.New()
		r.PUT("/v1/price-validity/process-automatic-transitions", h.ProcessAutomaticTransitions)
		return r
	}

	t.Run("sweep failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		uc.EXPECT().CheckAndUpdateAutomaticStatuses(gomock.Any()).Return(entities.AutoSweepResult{}, errors.New("scan failed"))

		req := httptest.NewRequest(http.MethodPut, "/v1/price-validity/process-automatic-transitions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("renewal failure is absorbed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		renewal := mock_interfaces.NewMockIRenewalSweeper(ctrl)
		h := NewLifecycleHandler(uc, renewal, nil)
		r := newRouter(h)

		uc.EXPECT().CheckAndUpdateAutomaticStatuses(gomock.Any()).Return(entities.AutoSweepResult{CheckedCount: 4, UpdatedCount: 2}, nil)
		renewal.EXPECT().TriggerRenewalSweep(gomock.Any()).Return(0, errors.New("sibling down"))

		req := httptest.NewRequest(http.MethodPut, "/v1/price-validity/process-automatic-transitions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Processed 2 automatic transitions" {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
	})

	t.Run("renewal count folds into the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		renewal := mock_interfaces.NewMockIRenewalSweeper(ctrl)
		h := NewLifecycleHandler(uc, renewal, nil)
		r := newRouter(h)

		uc.EXPECT().CheckAndUpdateAutomaticStatuses(gomock.Any()).Return(entities.AutoSweepResult{CheckedCount: 10, UpdatedCount: 3}, nil)
		renewal.EXPECT().TriggerRenewalSweep(gomock.Any()).Return(2, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/price-validity/process-automatic-transitions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Processed 5 automatic transitions" {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
		data := body["data"].(map[string]any)
		if data["renewalCount"] != float64(2) || data["totalApplied"] != float64(5) {
			t.Fatalf("unexpected data: %s", w.Body.String())
		}
	})

	t.Run("nil renewal collaborator reports zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewLifecycleHandler(uc, nil, nil)
		r := newRouter(h)

		uc.EXPECT().CheckAndUpdateAutomaticStatuses(gomock.Any()).Return(entities.AutoSweepResult{}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/price-validity/process-automatic-transitions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data := body["data"].(map[string]any)
		if data["renewalCount"] != float64(0) {
			t.Fatalf("unexpected data: %s", w.Body.String())
		}
	})
}
