package usecase

import (
	"fmt"
	"strings"

	"price-validity-service/internal/domain/entities"
	"price-validity-service/internal/usecase/interfaces"
)

// ValidationResult reports whether a proposed transition is legal and
// every reason it is not. Errors are collected, not short-circuited, so
// a caller sees all problems at once.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// ValidateStatusTransition checks a transition request against the
// status catalog. Pure function: no side effects, safe to call any
// number of times with the same input.
//
// Rules, in order:
//  1. fromStatus must resolve in the catalog.
//  2. toStatus must resolve in the catalog.
//  3. toStatus must be in fromStatus.allowedTransitions (only checked
//     when fromStatus resolves).
//  4. reason must be non-empty after trimming.
//  5. changedBy must be non-empty after trimming.
func ValidateStatusTransition(catalog interfaces.IStatusCatalog, req entities.TransitionRequest) ValidationResult {
	var errs []string

	from, fromOK := catalog.Get(req.FromStatus)
	if !fromOK {
		errs = append(errs, fmt.Sprintf("Invalid current status: %s", req.FromStatus))
	}

	if _, ok := catalog.Get(req.ToStatus); !ok {
		errs = append(errs, fmt.Sprintf("Invalid target status: %s", req.ToStatus))
	}

	if fromOK && !from.CanTransitionTo(req.ToStatus) {
		errs = append(errs, fmt.Sprintf("Transition from %s to %s is not allowed", req.FromStatus, req.ToStatus))
	}

	if strings.TrimSpace(req.Reason) == "" {
		errs = append(errs, "Reason is required for status transitions")
	}

	if strings.TrimSpace(req.ChangedBy) == "" {
		errs = append(errs, "ChangedBy is required for status transitions")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
