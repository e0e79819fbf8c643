package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
)

func TestValidationError_ErrorListsFieldsSorted(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"sku":         "is required",
		"description": "must not be empty",
	}}

	want := "validation error: description: must not be empty; sku: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	var err error = &domain.ValidationError{Fields: map[string]string{"id": "bad"}}

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	if errors.Is(err, domain.ErrConflict) {
		t.Error("errors.Is(err, ErrConflict) = true, want false")
	}
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	err := domain.FieldError("price_cents", "must not be negative")

	if got := err.Fields["price_cents"]; got != "must not be negative" {
		t.Errorf("Fields[price_cents] = %q, want %q", got, "must not be negative")
	}
	if want := "validation error: price_cents: must not be negative"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
