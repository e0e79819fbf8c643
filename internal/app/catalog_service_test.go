package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/codec"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/eventstore/memory"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
	"github.com/jsamuelsen11/eventsourced-catalog/mocks"
)

func newRegistry(t *testing.T) *codec.Registry {
	t.Helper()
	r, err := codec.NewShopRegistry()
	require.NoError(t, err)
	return r
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

// newService returns a service over a fresh memory store with a publisher
// mock that accepts any batch.
func newService(t *testing.T) (*CatalogService, *mocks.MockEventPublisher) {
	t.Helper()

	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	store := memory.New(newRegistry(t))
	return NewCatalogService(store, []ports.EventPublisher{pub}, nil, discardLogger()), pub
}

// --- NewCatalogService ---

func TestNewCatalogService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(mocks.NewMockEventStore(t), nil, nil, nil)
	if svc.logger == nil {
		t.Fatal("NewCatalogService(nil logger) should create a no-op logger, got nil")
	}
}

// --- CreateItem / GetItem ---

func TestCatalogService_CreateAndGet(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, "I1", "Widget")
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if len(created.PendingEvents()) != 0 {
		t.Errorf("created item has %d pending events, want 0 after commit", len(created.PendingEvents()))
	}

	got, err := svc.GetItem(ctx, created.ID())
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	if got == created {
		t.Error("GetItem() returned the created instance, want a replayed copy")
	}
	if got.ItemID != "I1" || got.Description != "Widget" || got.LastSequence() != 1 {
		t.Errorf("GetItem() = (%q, %q, seq %d), want (I1, Widget, seq 1)", got.ItemID, got.Description, got.LastSequence())
	}
}

func TestCatalogService_CreateItem_ValidationSkipsStore(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEventStore(t)
	svc := NewCatalogService(store, nil, nil, discardLogger())

	_, err := svc.CreateItem(context.Background(), "", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateItem() error = %v, want ErrValidation", err)
	}
}

func TestCatalogService_CreateItem_PublishesCreation(t *testing.T) {
	t.Parallel()

	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(events []aggregate.Event) bool {
		return len(events) == 1 && aggregate.EventName(events[0]) == "ItemCreated"
	})).Return(nil).Once()

	svc := NewCatalogService(memory.New(newRegistry(t)), []ports.EventPublisher{pub}, nil, discardLogger())
	if _, err := svc.CreateItem(context.Background(), "I1", "Widget"); err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
}

func TestCatalogService_GetItem_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	_, err := svc.GetItem(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetItem() error = %v, want ErrNotFound", err)
	}
}

// --- UpdateItem ---

func TestCatalogService_UpdateItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		update   ports.ItemUpdate
		wantErr  error
		wantDesc string
		wantSeq  uint64
	}{
		{
			name:     "description and price",
			update:   ports.ItemUpdate{Description: strPtr("Blue widget"), BasePriceCents: int64Ptr(1299)},
			wantDesc: "Blue widget",
			wantSeq:  3,
		},
		{
			name:     "price only",
			update:   ports.ItemUpdate{BasePriceCents: int64Ptr(10)},
			wantDesc: "Widget",
			wantSeq:  2,
		},
		{
			name:    "empty update",
			update:  ports.ItemUpdate{},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "negative price",
			update:  ports.ItemUpdate{Description: strPtr("Changed"), BasePriceCents: int64Ptr(-1)},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newService(t)
			ctx := context.Background()
			created, err := svc.CreateItem(ctx, "I1", "Widget")
			if err != nil {
				t.Fatalf("CreateItem() error = %v", err)
			}

			got, err := svc.UpdateItem(ctx, created.ID(), tt.update)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateItem() error = %v, want %v", err, tt.wantErr)
				}
				reloaded, _ := svc.GetItem(ctx, created.ID())
				if reloaded.LastSequence() != 1 {
					t.Errorf("LastSequence() = %d after failed update, want 1", reloaded.LastSequence())
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateItem() error = %v", err)
			}
			if got.Description != tt.wantDesc || got.LastSequence() != tt.wantSeq {
				t.Errorf("UpdateItem() = (%q, seq %d), want (%q, seq %d)",
					got.Description, got.LastSequence(), tt.wantDesc, tt.wantSeq)
			}
		})
	}
}

// --- Variants ---

func TestCatalogService_Variants(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	ctx := context.Background()
	created, err := svc.CreateItem(ctx, "I1", "Widget")
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	_, vid, err := svc.AddVariant(ctx, created.ID(), ports.NewVariant{SKU: "W-S", Name: "Small", PriceCents: 999})
	if err != nil {
		t.Fatalf("AddVariant() error = %v", err)
	}
	if vid == uuid.Nil {
		t.Fatal("AddVariant() returned nil variant id")
	}

	if _, err := svc.ChangeVariantPrice(ctx, created.ID(), vid, 899); err != nil {
		t.Fatalf("ChangeVariantPrice() error = %v", err)
	}

	got, err := svc.GetItem(ctx, created.ID())
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	v := got.Variant(vid)
	if v == nil || v.PriceCents != 899 {
		t.Fatalf("replayed variant = %+v, want price 899", v)
	}

	_, _, err = svc.AddVariant(ctx, created.ID(), ports.NewVariant{SKU: "w-s", Name: "Dup", PriceCents: 1})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("AddVariant(duplicate sku) error = %v, want ErrConflict", err)
	}

	_, err = svc.ChangeVariantPrice(ctx, created.ID(), uuid.New(), 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ChangeVariantPrice(unknown) error = %v, want ErrNotFound", err)
	}
}

// --- RetireItem / History ---

func TestCatalogService_RetireAndHistory(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	ctx := context.Background()
	created, err := svc.CreateItem(ctx, "I1", "Widget")
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}

	retired, err := svc.RetireItem(ctx, created.ID(), "discontinued")
	if err != nil {
		t.Fatalf("RetireItem() error = %v", err)
	}
	if !retired.Retired {
		t.Error("Retired = false, want true")
	}

	if _, err := svc.UpdateItem(ctx, created.ID(), ports.ItemUpdate{BasePriceCents: int64Ptr(5)}); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("UpdateItem(retired) error = %v, want ErrConflict", err)
	}

	history, err := svc.History(ctx, created.ID())
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	want := []string{"ItemCreated", "ItemRetired"}
	if len(history) != len(want) {
		t.Fatalf("len(History()) = %d, want %d", len(history), len(want))
	}
	for i, evt := range history {
		if got := aggregate.EventName(evt); got != want[i] {
			t.Errorf("History()[%d] = %s, want %s", i, got, want[i])
		}
		if evt.Meta().Sequence != uint64(i+1) {
			t.Errorf("History()[%d].Sequence = %d, want %d", i, evt.Meta().Sequence, i+1)
		}
	}
}

func TestCatalogService_History_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	_, err := svc.History(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("History() error = %v, want ErrNotFound", err)
	}
}

// --- Store failures ---

func TestCatalogService_StoreErrorsPropagate(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	store := mocks.NewMockEventStore(t)
	store.EXPECT().Load(mock.Anything, id).Return(nil, domain.ErrUnavailable)

	svc := NewCatalogService(store, nil, nil, discardLogger())
	ctx := context.Background()

	if _, err := svc.GetItem(ctx, id); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetItem() error = %v, want ErrUnavailable", err)
	}
	if _, err := svc.History(ctx, id); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("History() error = %v, want ErrUnavailable", err)
	}
	if _, err := svc.RetireItem(ctx, id, "x"); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("RetireItem() error = %v, want ErrUnavailable", err)
	}
}

func TestCatalogService_ConcurrentWriterConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inner := memory.New(newRegistry(t))
	svc := NewCatalogService(inner, nil, nil, discardLogger())
	created, err := svc.CreateItem(ctx, "I1", "Widget")
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	history, err := inner.Load(ctx, created.ID())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// The store hands out the stale history while another writer has
	// already moved the stream on.
	store := mocks.NewMockEventStore(t)
	store.EXPECT().Load(mock.Anything, created.ID()).Return(history, nil).Once()
	store.EXPECT().Append(mock.Anything, created.ID(), uint64(1), mock.Anything).
		Return(domain.ErrConflict).Once()

	stale := NewCatalogService(store, nil, nil, discardLogger())
	_, err = stale.UpdateItem(ctx, created.ID(), ports.ItemUpdate{Description: strPtr("Other")})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("UpdateItem() error = %v, want ErrConflict", err)
	}
}
