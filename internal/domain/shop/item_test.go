package shop_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/shop"
)

func newItem(t *testing.T) *shop.Item {
	t.Helper()
	it, err := shop.NewItem("I1", "Widget")
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	return it
}

func TestNewItem_RaisesCreation(t *testing.T) {
	t.Parallel()

	it := newItem(t)

	pending := it.PendingEvents()
	if len(pending) != 1 {
		t.Fatalf("len(PendingEvents()) = %d, want 1", len(pending))
	}
	created, ok := pending[0].(*shop.ItemCreated)
	if !ok {
		t.Fatalf("pending[0] = %T, want *shop.ItemCreated", pending[0])
	}
	if created.Sequence != 1 || created.AggregateID != it.ID() {
		t.Errorf("created meta = (%d, %s), want (1, %s)", created.Sequence, created.AggregateID, it.ID())
	}
	if it.LastSequence() != 1 {
		t.Errorf("LastSequence() = %d, want 1", it.LastSequence())
	}
	if it.ItemID != "I1" || it.Description != "Widget" {
		t.Errorf("state = (%q, %q), want (\"I1\", \"Widget\")", it.ItemID, it.Description)
	}
	if it.ID() == uuid.Nil {
		t.Error("ID() is nil, want a generated id")
	}
}

func TestNewItem_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		itemID      string
		description string
		wantFields  []string
	}{
		{name: "empty both", itemID: " ", description: "", wantFields: []string{"item_id", "description"}},
		{name: "empty description", itemID: "I1", description: "", wantFields: []string{"description"}},
		{name: "long item id", itemID: strings.Repeat("x", 65), description: "ok", wantFields: []string{"item_id"}},
		{name: "long description", itemID: "I1", description: strings.Repeat("x", 501), wantFields: []string{"description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := shop.NewItem(tt.itemID, tt.description)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("NewItem() error = %v, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want keys %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestItem_Commands(t *testing.T) {
	t.Parallel()

	it := newItem(t)

	if err := it.ChangeDescription("Blue widget"); err != nil {
		t.Fatalf("ChangeDescription() error = %v", err)
	}
	if err := it.SetBasePrice(1299); err != nil {
		t.Fatalf("SetBasePrice() error = %v", err)
	}
	small, err := it.AddVariant("W-S", "Small", 999)
	if err != nil {
		t.Fatalf("AddVariant(small) error = %v", err)
	}
	large, err := it.AddVariant("W-L", "Large", 1499)
	if err != nil {
		t.Fatalf("AddVariant(large) error = %v", err)
	}
	if err := it.ChangeVariantPrice(small, 899); err != nil {
		t.Fatalf("ChangeVariantPrice() error = %v", err)
	}

	if it.Description != "Blue widget" || it.BasePriceCents != 1299 {
		t.Errorf("state = (%q, %d), want (\"Blue widget\", 1299)", it.Description, it.BasePriceCents)
	}
	if got := it.Variant(small).PriceCents; got != 899 {
		t.Errorf("small price = %d, want 899", got)
	}
	if got := it.Variant(large).PriceCents; got != 1499 {
		t.Errorf("large price = %d, want 1499 (not targeted)", got)
	}
	if got := it.Variant(small).AggregateID(); got != it.ID() {
		t.Errorf("variant AggregateID() = %s, want %s", got, it.ID())
	}
	if it.LastSequence() != 6 {
		t.Errorf("LastSequence() = %d, want 6", it.LastSequence())
	}
}

func TestItem_NoOpCommandsRaiseNothing(t *testing.T) {
	t.Parallel()

	it := newItem(t)
	it.Commit()

	if err := it.ChangeDescription("Widget"); err != nil {
		t.Fatalf("ChangeDescription(same) error = %v", err)
	}
	if err := it.SetBasePrice(0); err != nil {
		t.Fatalf("SetBasePrice(same) error = %v", err)
	}
	if got := len(it.PendingEvents()); got != 0 {
		t.Errorf("len(PendingEvents()) = %d, want 0", got)
	}
}

func TestItem_CommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     func(it *shop.Item) error
		wantErr error
	}{
		{
			name:    "negative base price",
			run:     func(it *shop.Item) error { return it.SetBasePrice(-1) },
			wantErr: domain.ErrValidation,
		},
		{
			name:    "blank description",
			run:     func(it *shop.Item) error { return it.ChangeDescription("  ") },
			wantErr: domain.ErrValidation,
		},
		{
			name: "duplicate sku",
			run: func(it *shop.Item) error {
				if _, err := it.AddVariant("SKU", "One", 1); err != nil {
					return err
				}
				_, err := it.AddVariant("sku", "Two", 2)
				return err
			},
			wantErr: domain.ErrConflict,
		},
		{
			name:    "unknown variant",
			run:     func(it *shop.Item) error { return it.ChangeVariantPrice(uuid.New(), 5) },
			wantErr: domain.ErrNotFound,
		},
		{
			name: "command on retired item",
			run: func(it *shop.Item) error {
				if err := it.Retire("discontinued"); err != nil {
					return err
				}
				return it.ChangeDescription("Another")
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "retire twice",
			run: func(it *shop.Item) error {
				_ = it.Retire("first")
				return it.Retire("second")
			},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it := newItem(t)
			if err := tt.run(it); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestItem_ReplayRebuildsState(t *testing.T) {
	t.Parallel()

	original := newItem(t)
	_ = original.SetBasePrice(500)
	vid, _ := original.AddVariant("W-S", "Small", 450)
	_ = original.ChangeVariantPrice(vid, 400)
	_ = original.Retire("seasonal")

	history := original.PendingEvents()
	reversed := make([]aggregate.Event, len(history))
	for i, evt := range history {
		reversed[len(history)-1-i] = evt
	}

	replayed := shop.Empty()
	if err := replayed.LoadFromHistory(reversed...); err != nil {
		t.Fatalf("LoadFromHistory() error = %v", err)
	}

	if replayed.ID() != original.ID() {
		t.Errorf("ID() = %s, want %s", replayed.ID(), original.ID())
	}
	if replayed.ItemID != "I1" || replayed.BasePriceCents != 500 || !replayed.Retired {
		t.Errorf("state = (%q, %d, %v), want (\"I1\", 500, true)",
			replayed.ItemID, replayed.BasePriceCents, replayed.Retired)
	}
	if replayed.RetiredReason != "seasonal" {
		t.Errorf("RetiredReason = %q, want %q", replayed.RetiredReason, "seasonal")
	}
	v := replayed.Variant(vid)
	if v == nil {
		t.Fatal("replayed variant missing")
	}
	if v.PriceCents != 400 || v.SKU != "W-S" {
		t.Errorf("variant = (%q, %d), want (\"W-S\", 400)", v.SKU, v.PriceCents)
	}
	if replayed.LastSequence() != original.LastSequence() {
		t.Errorf("LastSequence() = %d, want %d", replayed.LastSequence(), original.LastSequence())
	}
	if got := len(replayed.PendingEvents()); got != 0 {
		t.Errorf("len(PendingEvents()) = %d, want 0 after replay", got)
	}
}
