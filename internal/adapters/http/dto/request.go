package dto

import (
	"strings"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgNonNegative  = "must not be negative"
)

// CreateItemRequest represents the JSON body for creating a catalog item.
type CreateItemRequest struct {
	ItemID      string `json:"item_id"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateItemRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ItemID) == "" {
		fields["item_id"] = msgRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateItemRequest represents the JSON body for updating an item.
// All fields are optional; nil means "do not change this field.".
type UpdateItemRequest struct {
	Description    *string `json:"description,omitempty"`
	BasePriceCents *int64  `json:"base_price_cents,omitempty"`
}

// Validate checks that at least one field is provided and that provided
// fields have valid values. Returns a *domain.ValidationError if any checks
// fail.
func (r *UpdateItemRequest) Validate() error {
	fields := make(map[string]string)

	if r.Description == nil && r.BasePriceCents == nil {
		fields["body"] = "at least one field must be provided"
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		fields["description"] = msgMustNotEmpty
	}
	if r.BasePriceCents != nil && *r.BasePriceCents < 0 {
		fields["base_price_cents"] = msgNonNegative
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToItemUpdate converts the request into the service port's update type.
func (r *UpdateItemRequest) ToItemUpdate() ports.ItemUpdate {
	return ports.ItemUpdate{
		Description:    r.Description,
		BasePriceCents: r.BasePriceCents,
	}
}

// AddVariantRequest represents the JSON body for adding a variant.
type AddVariantRequest struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// Validate checks that required fields are present and the price is valid.
// Returns a *domain.ValidationError if any checks fail.
func (r *AddVariantRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.SKU) == "" {
		fields["sku"] = msgRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.PriceCents < 0 {
		fields["price_cents"] = msgNonNegative
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToNewVariant converts the request into the service port's variant type.
func (r *AddVariantRequest) ToNewVariant() ports.NewVariant {
	return ports.NewVariant{SKU: r.SKU, Name: r.Name, PriceCents: r.PriceCents}
}

// ChangeVariantPriceRequest represents the JSON body for repricing a variant.
type ChangeVariantPriceRequest struct {
	PriceCents *int64 `json:"price_cents"`
}

// Validate checks that the price is present and non-negative.
// Returns a *domain.ValidationError if any checks fail.
func (r *ChangeVariantPriceRequest) Validate() error {
	switch {
	case r.PriceCents == nil:
		return domain.FieldError("price_cents", msgRequired)
	case *r.PriceCents < 0:
		return domain.FieldError("price_cents", msgNonNegative)
	default:
		return nil
	}
}

// RetireItemRequest represents the JSON body for retiring an item.
type RetireItemRequest struct {
	Reason string `json:"reason"`
}

// Validate checks that a reason is given.
// Returns a *domain.ValidationError if any checks fail.
func (r *RetireItemRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return domain.FieldError("reason", msgRequired)
	}
	return nil
}
