package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/shop"
)

// CatalogService defines the service port for catalog item operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every mutating operation loads the item from its history, runs one domain
// command, and persists the raised events before returning.
type CatalogService interface {
	// CreateItem creates a new item and returns it.
	// Returns domain.ErrValidation if the input fails validation.
	CreateItem(ctx context.Context, itemID, description string) (*shop.Item, error)

	// GetItem rebuilds the item from its history.
	// Returns domain.ErrNotFound if the item has no history.
	GetItem(ctx context.Context, id uuid.UUID) (*shop.Item, error)

	// History returns the stored events of the item in sequence order.
	// Returns domain.ErrNotFound if the item has no history.
	History(ctx context.Context, id uuid.UUID) ([]aggregate.Event, error)

	// UpdateItem applies the non-nil fields of the update.
	// Returns domain.ErrConflict if the item is retired.
	UpdateItem(ctx context.Context, id uuid.UUID, update ItemUpdate) (*shop.Item, error)

	// AddVariant adds a variant and returns the updated item and the new
	// variant id.
	AddVariant(ctx context.Context, id uuid.UUID, variant NewVariant) (*shop.Item, uuid.UUID, error)

	// ChangeVariantPrice reprices one variant.
	// Returns domain.ErrNotFound if the item or the variant does not exist.
	ChangeVariantPrice(ctx context.Context, id, variantID uuid.UUID, priceCents int64) (*shop.Item, error)

	// RetireItem withdraws the item from sale.
	RetireItem(ctx context.Context, id uuid.UUID, reason string) (*shop.Item, error)
}

// ItemUpdate carries a partial update. Nil fields are left unchanged.
type ItemUpdate struct {
	Description    *string
	BasePriceCents *int64
}

// NewVariant is the input for adding a variant.
type NewVariant struct {
	SKU        string
	Name       string
	PriceCents int64
}
