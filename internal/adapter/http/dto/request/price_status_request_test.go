package request

import (
	"testing"
	"time"

	"price-validity-service/internal/domain/entities"
)

func TestUpdateStatusRequest_ToTransitionRequest(t *testing.T) {
	effective := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	req := UpdateStatusRequest{
		PriceItemID:   " price-1 ",
		FromStatus:    " active ",
		ToStatus:      "expiring",
		Reason:        "Entering warning window",
		ChangedBy:     "ops@acme.com",
		EffectiveDate: &effective,
	}

	got := req.ToTransitionRequest()
	if got.PriceItemID != "price-1" {
		t.Fatalf("expected trimmed id, got %q", got.PriceItemID)
	}
	if got.FromStatus != entities.PriceStatusActive || got.ToStatus != entities.PriceStatusExpiring {
		t.Fatalf("unexpected statuses: %+v", got)
	}
	if got.EffectiveDate == nil || !got.EffectiveDate.Equal(effective) {
		t.Fatalf("effective date not carried: %+v", got.EffectiveDate)
	}
}

func TestRegisterRecordRequest_ToPriceStatusRecord(t *testing.T) {
	grace := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)
	req := RegisterRecordRequest{
		PriceItemID:    "price-1",
		ProductName:    " Widget ",
		VendorID:       " vendor-a ",
		VendorName:     "Acme",
		InitialStatus:  " active ",
		EffectiveDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		ExpirationDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		GracePeriodEnd: &grace,
		AutoRenewal:    true,
	}

	got := req.ToPriceStatusRecord()
	if got.ProductName != "Widget" || got.VendorID != "vendor-a" {
		t.Fatalf("expected trimmed fields: %+v", got)
	}
	if got.CurrentStatus != entities.PriceStatusActive {
		t.Fatalf("unexpected status: %s", got.CurrentStatus)
	}
	if got.GracePeriodEnd == nil || !got.GracePeriodEnd.Equal(grace) {
		t.Fatalf("grace period not carried: %+v", got.GracePeriodEnd)
	}
	if !got.AutoRenewal {
		t.Fatalf("auto renewal not carried")
	}
}

func TestBulkUpdateRequest_ToBulkTransitionRequest(t *testing.T) {
	t.Run("without filters", func(t *testing.T) {
		req := BulkUpdateRequest{
			PriceItemIDs: []string{"price-1", "price-2"},
			TargetStatus: " suspended ",
			Reason:       "Vendor review",
			ChangedBy:    "ops@acme.com",
		}

		got := req.ToBulkTransitionRequest()
		if got.TargetStatus != entities.PriceStatusSuspended {
			t.Fatalf("expected trimmed target, got %q", got.TargetStatus)
		}
		if got.Filters != nil {
			t.Fatalf("expected nil filters")
		}
		if len(got.PriceItemIDs) != 2 {
			t.Fatalf("unexpected ids: %+v", got.PriceItemIDs)
		}
	})

	t.Run("with filters", func(t *testing.T) {
		req := BulkUpdateRequest{
			TargetStatus: "expired",
			Reason:       "Cleanup",
			ChangedBy:    "ops@acme.com",
			Filters: &BulkFiltersRequest{
				CurrentStatus: []string{" active ", "expiring"},
				VendorIDs:     []string{"vendor-a"},
				ExpirationDateRange: &ExpirationDateRangeRequest{
					StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
					EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
				},
			},
		}

		got := req.ToBulkTransitionRequest()
		if got.Filters == nil {
			t.Fatalf("expected filters")
		}
		if len(got.Filters.CurrentStatus) != 2 || got.Filters.CurrentStatus[0] != entities.PriceStatusActive {
			t.Fatalf("unexpected status filter: %+v", got.Filters.CurrentStatus)
		}
		if got.Filters.ExpirationDateRange == nil || got.Filters.ExpirationDateRange.EndDate.Day() != 31 {
			t.Fatalf("unexpected date range: %+v", got.Filters.ExpirationDateRange)
		}
	})
}

func TestSplitCSV(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "price-1", want: []string{"price-1"}},
		{name: "multiple with spaces", input: " price-1 , price-2,price-3 ", want: []string{"price-1", "price-2", "price-3"}},
		{name: "only separators", input: " , ,", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitCSV(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}
