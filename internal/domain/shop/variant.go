package shop

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
)

// Variant is a purchasable configuration of an Item, owned by it.
type Variant struct {
	aggregate.EntityBase

	SKU        string
	Name       string
	PriceCents int64
}

func newVariant(id uuid.UUID, sku, name string, priceCents int64) *Variant {
	v := &Variant{SKU: sku, Name: name, PriceCents: priceCents}
	v.Init(v, id)
	return v
}

// OnVariantPriceChanged folds VariantPriceChanged.
func (v *Variant) OnVariantPriceChanged(e *VariantPriceChanged) {
	v.PriceCents = e.PriceCents
}
