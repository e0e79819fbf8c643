package codec

import (
	"errors"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/shop"
)

// RegisterShopEvents registers every event of the shop aggregate.
func RegisterShopEvents(r *Registry) error {
	return errors.Join(
		Register[shop.ItemCreated](r),
		Register[shop.DescriptionChanged](r),
		Register[shop.BasePriceSet](r),
		Register[shop.VariantAdded](r),
		Register[shop.VariantPriceChanged](r),
		Register[shop.ItemRetired](r),
	)
}

// NewShopRegistry returns a registry holding the shop events.
func NewShopRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := RegisterShopEvents(r); err != nil {
		return nil, err
	}
	return r, nil
}
