package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http/dto"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
)

func stringPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64    { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateItemRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateItemRequest
		wantField string
	}{
		{name: "valid", req: dto.CreateItemRequest{ItemID: "I1", Description: "Widget"}},
		{name: "missing item id", req: dto.CreateItemRequest{Description: "Widget"}, wantField: "item_id"},
		{name: "blank description", req: dto.CreateItemRequest{ItemID: "I1", Description: "  "}, wantField: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateItemRequest
		wantField string
	}{
		{name: "description only", req: dto.UpdateItemRequest{Description: stringPtr("New")}},
		{name: "price only", req: dto.UpdateItemRequest{BasePriceCents: int64Ptr(0)}},
		{name: "empty body", req: dto.UpdateItemRequest{}, wantField: "body"},
		{name: "blank description", req: dto.UpdateItemRequest{Description: stringPtr(" ")}, wantField: "description"},
		{name: "negative price", req: dto.UpdateItemRequest{BasePriceCents: int64Ptr(-5)}, wantField: "base_price_cents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateItemRequest_ToItemUpdate(t *testing.T) {
	t.Parallel()

	req := dto.UpdateItemRequest{BasePriceCents: int64Ptr(42)}
	got := req.ToItemUpdate()

	if got.Description != nil {
		t.Errorf("Description = %v, want nil", got.Description)
	}
	if got.BasePriceCents == nil || *got.BasePriceCents != 42 {
		t.Errorf("BasePriceCents = %v, want 42", got.BasePriceCents)
	}
}

func TestAddVariantRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.AddVariantRequest
		wantField string
	}{
		{name: "valid", req: dto.AddVariantRequest{SKU: "W-S", Name: "Small", PriceCents: 0}},
		{name: "missing sku", req: dto.AddVariantRequest{Name: "Small"}, wantField: "sku"},
		{name: "missing name", req: dto.AddVariantRequest{SKU: "W-S"}, wantField: "name"},
		{name: "negative price", req: dto.AddVariantRequest{SKU: "W-S", Name: "Small", PriceCents: -1}, wantField: "price_cents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestChangeVariantPriceRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.ChangeVariantPriceRequest{PriceCents: int64Ptr(10)}).Validate(); err != nil {
		t.Errorf("Validate(valid) = %v, want nil", err)
	}
	requireValidationField(t, (&dto.ChangeVariantPriceRequest{}).Validate(), "price_cents")
	requireValidationField(t, (&dto.ChangeVariantPriceRequest{PriceCents: int64Ptr(-1)}).Validate(), "price_cents")
}

func TestRetireItemRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.RetireItemRequest{Reason: "seasonal"}).Validate(); err != nil {
		t.Errorf("Validate(valid) = %v, want nil", err)
	}
	requireValidationField(t, (&dto.RetireItemRequest{Reason: " "}).Validate(), "reason")
}
