// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/app/uow"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/aggregate"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/domain/shop"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/eventsourced-catalog/internal/ports"
)

// Compile-time check that CatalogService implements ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService implements ports.CatalogService. Each mutating use case runs
// in its own unit of work: replay the item, run one domain command, persist
// the raised events, then notify the publishers. Business rules live on
// shop.Item; this type handles orchestration and structured logging.
type CatalogService struct {
	store      ports.EventStore
	publishers []ports.EventPublisher
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// NewCatalogService creates a CatalogService over the given store. Publishers
// receive every committed batch; metrics may be nil. A nil logger discards
// output.
func NewCatalogService(
	store ports.EventStore,
	publishers []ports.EventPublisher,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CatalogService{
		store:      store,
		publishers: publishers,
		metrics:    metrics,
		logger:     logger,
	}
}

// CreateItem validates and creates a new item.
func (s *CatalogService) CreateItem(ctx context.Context, itemID, description string) (*shop.Item, error) {
	s.logger.InfoContext(ctx, "creating item", slog.String("item_id", itemID))

	it, err := shop.NewItem(itemID, description)
	if err != nil {
		return nil, err
	}

	u := s.begin(ctx)
	if err := u.Track(it); err != nil {
		return nil, err
	}
	if err := u.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create item",
			slog.String("operation", "CreateItem"),
			slog.String("id", it.ID().String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return it, nil
}

// GetItem rebuilds an item from its history.
func (s *CatalogService) GetItem(ctx context.Context, id uuid.UUID) (*shop.Item, error) {
	s.logger.InfoContext(ctx, "fetching item", slog.String("id", id.String()))

	it, err := uow.GetOrLoad(s.begin(ctx), id, shop.Empty)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch item",
			slog.String("operation", "GetItem"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return it, nil
}

// History returns the stored events of an item in sequence order.
func (s *CatalogService) History(ctx context.Context, id uuid.UUID) ([]aggregate.Event, error) {
	s.logger.InfoContext(ctx, "fetching item history", slog.String("id", id.String()))

	events, err := s.store.Load(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch item history",
			slog.String("operation", "History"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	return events, nil
}

// UpdateItem changes the description and/or base price. At least one field
// must be set. Both changes are committed together.
func (s *CatalogService) UpdateItem(ctx context.Context, id uuid.UUID, update ports.ItemUpdate) (*shop.Item, error) {
	if update.Description == nil && update.BasePriceCents == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"body": "at least one of description or base_price_cents is required",
		}}
	}

	return s.mutate(ctx, "UpdateItem", id, func(it *shop.Item) error {
		if update.Description != nil {
			if err := it.ChangeDescription(*update.Description); err != nil {
				return err
			}
		}
		if update.BasePriceCents != nil {
			if err := it.SetBasePrice(*update.BasePriceCents); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddVariant adds a purchasable variant to an item.
func (s *CatalogService) AddVariant(ctx context.Context, id uuid.UUID, variant ports.NewVariant) (*shop.Item, uuid.UUID, error) {
	var variantID uuid.UUID
	it, err := s.mutate(ctx, "AddVariant", id, func(it *shop.Item) error {
		var err error
		variantID, err = it.AddVariant(variant.SKU, variant.Name, variant.PriceCents)
		return err
	})
	if err != nil {
		return nil, uuid.Nil, err
	}
	return it, variantID, nil
}

// ChangeVariantPrice reprices one variant of an item.
func (s *CatalogService) ChangeVariantPrice(ctx context.Context, id, variantID uuid.UUID, priceCents int64) (*shop.Item, error) {
	return s.mutate(ctx, "ChangeVariantPrice", id, func(it *shop.Item) error {
		return it.ChangeVariantPrice(variantID, priceCents)
	})
}

// RetireItem withdraws an item from sale.
func (s *CatalogService) RetireItem(ctx context.Context, id uuid.UUID, reason string) (*shop.Item, error) {
	return s.mutate(ctx, "RetireItem", id, func(it *shop.Item) error {
		return it.Retire(reason)
	})
}

func (s *CatalogService) begin(ctx context.Context) *uow.UnitOfWork {
	return uow.New(ctx, s.store, s.publishers...).WithMetrics(s.metrics)
}

// mutate runs command against the replayed item inside one unit of work.
// A command error aborts before anything is persisted.
func (s *CatalogService) mutate(ctx context.Context, op string, id uuid.UUID, command func(*shop.Item) error) (*shop.Item, error) {
	s.logger.InfoContext(ctx, "handling item command",
		slog.String("operation", op),
		slog.String("id", id.String()),
	)

	u := s.begin(ctx)
	it, err := uow.GetOrLoad(u, id, shop.Empty)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load item",
			slog.String("operation", op),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := command(it); err != nil {
		return nil, err
	}

	if err := u.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to commit item",
			slog.String("operation", op),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return it, nil
}
