// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/shop"
)

// ItemResponse represents the current state of a catalog item.
type ItemResponse struct {
	ID             string            `json:"id"`
	ItemID         string            `json:"item_id"`
	Description    string            `json:"description"`
	BasePriceCents int64             `json:"base_price_cents"`
	Retired        bool              `json:"retired"`
	RetiredReason  string            `json:"retired_reason,omitempty"`
	Version        uint64            `json:"version"`
	Variants       []VariantResponse `json:"variants"`
}

// VariantResponse represents a single variant of an item.
type VariantResponse struct {
	ID         string `json:"id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// AddVariantResponse is returned when a variant is created.
type AddVariantResponse struct {
	VariantID string       `json:"variant_id"`
	Item      ItemResponse `json:"item"`
}

// EventResponse represents one stored event of an item's history.
type EventResponse struct {
	Type        string            `json:"type"`
	Sequence    uint64            `json:"sequence"`
	EntityID    string            `json:"entity_id,omitempty"`
	OccurredAt  string            `json:"occurred_at"`
	Annotations map[string]string `json:"annotations,omitempty"`
	Data        aggregate.Event   `json:"data"`
}

// EventListResponse represents an item's history in sequence order.
type EventListResponse struct {
	AggregateID string          `json:"aggregate_id"`
	Events      []EventResponse `json:"events"`
	Count       int             `json:"count"`
}

// ToItemResponse converts an Item aggregate to an HTTP response DTO.
// Variants are listed in the order they were added.
func ToItemResponse(it *shop.Item) ItemResponse {
	variants := it.Variants()
	resp := ItemResponse{
		ID:             it.ID().String(),
		ItemID:         it.ItemID,
		Description:    it.Description,
		BasePriceCents: it.BasePriceCents,
		Retired:        it.Retired,
		RetiredReason:  it.RetiredReason,
		Version:        it.LastSequence(),
		Variants:       make([]VariantResponse, len(variants)),
	}
	for i, v := range variants {
		resp.Variants[i] = VariantResponse{
			ID:         v.EntityID().String(),
			SKU:        v.SKU,
			Name:       v.Name,
			PriceCents: v.PriceCents,
		}
	}
	return resp
}

// ToAddVariantResponse pairs the new variant id with the updated item.
func ToAddVariantResponse(it *shop.Item, variantID uuid.UUID) AddVariantResponse {
	return AddVariantResponse{
		VariantID: variantID.String(),
		Item:      ToItemResponse(it),
	}
}

// ToEventListResponse converts an item's stored events to an HTTP list
// response DTO.
func ToEventListResponse(id uuid.UUID, events []aggregate.Event) EventListResponse {
	items := make([]EventResponse, len(events))
	for i, evt := range events {
		meta := evt.Meta()
		items[i] = EventResponse{
			Type:        aggregate.EventName(evt),
			Sequence:    meta.Sequence,
			OccurredAt:  meta.Timestamp.UTC().Format(time.RFC3339Nano),
			Annotations: meta.Annotations,
			Data:        evt,
		}
		if scoped, ok := evt.(aggregate.EntityScoped); ok {
			items[i].EntityID = scoped.TargetEntityID().String()
		}
	}
	return EventListResponse{
		AggregateID: id.String(),
		Events:      items,
		Count:       len(items),
	}
}
