// Package shop holds the catalog item aggregate: an event-sourced item with
// a base price and purchasable variants.
package shop

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
)

const (
	maxItemIDLength      = 64
	maxDescriptionLength = 500
)

var errUnfoldedEvent = errors.New("shop: item event without a fold")

// Item is a catalog item. All mutations go through commands that raise
// events; the handlers below are the only code that changes state.
type Item struct {
	aggregate.Root

	ItemID         string
	Description    string
	BasePriceCents int64
	Retired        bool
	RetiredReason  string

	variants []*Variant
}

// Empty returns an item with no history, ready for LoadFromHistory.
func Empty() *Item {
	it := &Item{}
	it.Init(it)
	return it
}

// NewItem creates an item and raises its creation event.
func NewItem(itemID, description string) (*Item, error) {
	itemID = strings.TrimSpace(itemID)
	description = strings.TrimSpace(description)

	fields := make(map[string]string)
	if msg := validateItemID(itemID); msg != "" {
		fields["item_id"] = msg
	}
	if msg := validateDescription(description); msg != "" {
		fields["description"] = msg
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	it := Empty()
	it.SetID(uuid.New())
	if err := it.Raise(&ItemCreated{ItemID: itemID, Description: description}); err != nil {
		return nil, err
	}
	return it, nil
}

// ChangeDescription replaces the description. Setting the current value is
// a no-op.
func (it *Item) ChangeDescription(description string) error {
	if err := it.ensureActive(); err != nil {
		return err
	}
	description = strings.TrimSpace(description)
	if msg := validateDescription(description); msg != "" {
		return domain.FieldError("description", msg)
	}
	if description == it.Description {
		return nil
	}
	return it.Raise(&DescriptionChanged{Description: description})
}

// SetBasePrice sets the base price in minor currency units.
func (it *Item) SetBasePrice(priceCents int64) error {
	if err := it.ensureActive(); err != nil {
		return err
	}
	if priceCents < 0 {
		return domain.FieldError("price_cents", "must not be negative")
	}
	if priceCents == it.BasePriceCents {
		return nil
	}
	return it.Raise(&BasePriceSet{PriceCents: priceCents})
}

// AddVariant adds a purchasable variant and returns its id. SKUs are unique
// within an item.
func (it *Item) AddVariant(sku, name string, priceCents int64) (uuid.UUID, error) {
	if err := it.ensureActive(); err != nil {
		return uuid.Nil, err
	}
	sku = strings.TrimSpace(sku)
	name = strings.TrimSpace(name)

	fields := make(map[string]string)
	if sku == "" {
		fields["sku"] = "is required"
	}
	if name == "" {
		fields["name"] = "is required"
	}
	if priceCents < 0 {
		fields["price_cents"] = "must not be negative"
	}
	if len(fields) > 0 {
		return uuid.Nil, &domain.ValidationError{Fields: fields}
	}
	if it.variantBySKU(sku) != nil {
		return uuid.Nil, fmt.Errorf("variant with sku %q already exists: %w", sku, domain.ErrConflict)
	}

	id := uuid.New()
	err := it.Raise(&VariantAdded{VariantID: id, SKU: sku, Name: name, PriceCents: priceCents})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ChangeVariantPrice reprices the variant with the given id.
func (it *Item) ChangeVariantPrice(variantID uuid.UUID, priceCents int64) error {
	if err := it.ensureActive(); err != nil {
		return err
	}
	if priceCents < 0 {
		return domain.FieldError("price_cents", "must not be negative")
	}
	v := it.Variant(variantID)
	if v == nil {
		return fmt.Errorf("variant %s: %w", variantID, domain.ErrNotFound)
	}
	if v.PriceCents == priceCents {
		return nil
	}
	return it.Raise(&VariantPriceChanged{
		EntityMetadata: aggregate.EntityMetadata{EntityID: variantID},
		PriceCents:     priceCents,
	})
}

// Retire withdraws the item from sale. A retired item accepts no further
// commands.
func (it *Item) Retire(reason string) error {
	if err := it.ensureActive(); err != nil {
		return err
	}
	return it.Raise(&ItemRetired{Reason: strings.TrimSpace(reason)})
}

// Variants returns the item's variants in the order they were added.
func (it *Item) Variants() []*Variant {
	return slices.Clone(it.variants)
}

// Variant returns the variant with the given id, or nil.
func (it *Item) Variant(id uuid.UUID) *Variant {
	for _, v := range it.variants {
		if v.EntityID() == id {
			return v
		}
	}
	return nil
}

func (it *Item) variantBySKU(sku string) *Variant {
	for _, v := range it.variants {
		if strings.EqualFold(v.SKU, sku) {
			return v
		}
	}
	return nil
}

func (it *Item) ensureActive() error {
	if it.Retired {
		return fmt.Errorf("item %s is retired: %w", it.ID(), domain.ErrConflict)
	}
	return nil
}

// OnDescriptionChanged folds DescriptionChanged.
func (it *Item) OnDescriptionChanged(e *DescriptionChanged) {
	it.Description = e.Description
}

// OnBasePriceSet folds BasePriceSet.
func (it *Item) OnBasePriceSet(e *BasePriceSet) {
	it.BasePriceCents = e.PriceCents
}

// OnVariantAdded creates the variant entity and takes ownership of it.
func (it *Item) OnVariantAdded(e *VariantAdded) error {
	v := newVariant(e.VariantID, e.SKU, e.Name, e.PriceCents)
	if err := it.RegisterEntity(v); err != nil {
		return err
	}
	it.variants = append(it.variants, v)
	return nil
}

// Apply folds the item events that have no dedicated handler.
func (it *Item) Apply(evt ItemEvent) error {
	switch e := evt.(type) {
	case *ItemCreated:
		it.ItemID = e.ItemID
		it.Description = e.Description
	case *ItemRetired:
		it.Retired = true
		it.RetiredReason = e.Reason
	case *VariantPriceChanged:
		// Folded by the targeted Variant.
	default:
		return fmt.Errorf("%w: %s", errUnfoldedEvent, aggregate.EventName(evt))
	}
	return nil
}

func validateItemID(id string) string {
	switch {
	case id == "":
		return "is required"
	case len(id) > maxItemIDLength:
		return fmt.Sprintf("must be at most %d characters", maxItemIDLength)
	default:
		return ""
	}
}

func validateDescription(description string) string {
	switch {
	case description == "":
		return "is required"
	case len(description) > maxDescriptionLength:
		return fmt.Sprintf("must be at most %d characters", maxDescriptionLength)
	default:
		return ""
	}
}
