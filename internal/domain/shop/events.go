package shop

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
)

// ItemEvent is the closed set of events an Item produces.
type ItemEvent interface {
	aggregate.Event
	itemEvent()
}

// ItemCreated opens the life of an item.
type ItemCreated struct {
	aggregate.Metadata
	ItemID      string `json:"item_id"`
	Description string `json:"description"`
}

// DescriptionChanged replaces the item description.
type DescriptionChanged struct {
	aggregate.Metadata
	Description string `json:"description"`
}

// BasePriceSet sets the price of the item in minor currency units.
type BasePriceSet struct {
	aggregate.Metadata
	PriceCents int64 `json:"price_cents"`
}

// VariantAdded introduces a purchasable variant of the item.
type VariantAdded struct {
	aggregate.Metadata
	VariantID  uuid.UUID `json:"variant_id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
}

// VariantPriceChanged reprices one variant. It is routed to the variant
// whose id matches EntityID.
type VariantPriceChanged struct {
	aggregate.EntityMetadata
	PriceCents int64 `json:"price_cents"`
}

// ItemRetired withdraws the item from sale.
type ItemRetired struct {
	aggregate.Metadata
	Reason string `json:"reason"`
}

func (*ItemCreated) itemEvent()         {}
func (*DescriptionChanged) itemEvent()  {}
func (*BasePriceSet) itemEvent()        {}
func (*VariantAdded) itemEvent()        {}
func (*VariantPriceChanged) itemEvent() {}
func (*ItemRetired) itemEvent()         {}
