// Package seeding loads a small demo dataset through the regular command
// handlers, so every seeded record passes the same validation and transaction
// path as production traffic.
package seeding

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/patch"
)

// Seeder writes the demo dataset: one worker, two inventory items and two
// completed orders (one on time, one late). Inventory goes through upsert so
// re-running the seeder never duplicates items; workers and orders are only
// created when the roster is still empty.
type Seeder struct {
	createWorkerHandler commands.CreateWorkerCommandHandler
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	upsertItemHandler   commands.UpsertInventoryItemCommandHandler
	getWorkersHandler   queries.GetAllWorkersQueryHandler
	logger              *slog.Logger
}

// NewSeeder creates a seeder wired to the given use case handlers.
func NewSeeder(
	createWorkerHandler commands.CreateWorkerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	upsertItemHandler commands.UpsertInventoryItemCommandHandler,
	getWorkersHandler queries.GetAllWorkersQueryHandler,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		createWorkerHandler: createWorkerHandler,
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		upsertItemHandler:   upsertItemHandler,
		getWorkersHandler:   getWorkersHandler,
		logger:              logger.With("component", "seeder"),
	}
}

// Seed loads the demo dataset.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedInventory(ctx); err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}

	workers, err := s.getWorkersHandler.Handle(ctx, queries.NewGetAllWorkersQuery())
	if err != nil {
		return fmt.Errorf("failed to check worker roster: %w", err)
	}
	if len(workers) > 0 {
		s.logger.InfoContext(ctx, "Workers already present, skipping worker and order seed")
		return nil
	}

	if err = s.seedWorkerAndOrders(ctx); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Demo data seeded")
	return nil
}

func (s *Seeder) seedInventory(ctx context.Context) error {
	items := []struct {
		sku      string
		name     string
		quantity int
		location string
	}{
		{"HD-1001", "Cordless Drill", 6, "Aisle 12"},
		{"HD-2002", "Work Gloves", 2, "Aisle 3"},
	}

	for _, item := range items {
		cmd, err := commands.NewUpsertInventoryItemCommand(item.sku, item.name, item.quantity, item.location)
		if err != nil {
			return err
		}
		if _, err = s.upsertItemHandler.Handle(ctx, cmd); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedWorkerAndOrders(ctx context.Context) error {
	workerCmd, err := commands.NewCreateWorkerCommand(kernel.NewUUID(), "Demo Worker", "", "")
	if err != nil {
		return fmt.Errorf("failed to build worker seed: %w", err)
	}

	demoWorker, err := s.createWorkerHandler.Handle(ctx, workerCmd)
	if err != nil {
		return fmt.Errorf("failed to seed worker: %w", err)
	}

	// One order picked within its promise, one over it.
	seeds := []struct {
		channel         order.Channel
		promisedMinutes int
		pickTimeMinutes int
	}{
		{order.ChannelPickup, 60, 38},
		{order.ChannelDelivery, 45, 50},
	}

	workerID := demoWorker.ID()
	for _, seed := range seeds {
		createCmd, cmdErr := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			seed.channel,
			seed.promisedMinutes,
			&workerID,
			time.Now().UTC(),
		)
		if cmdErr != nil {
			return fmt.Errorf("failed to build order seed: %w", cmdErr)
		}

		created, createErr := s.createOrderHandler.Handle(ctx, createCmd)
		if createErr != nil {
			return fmt.Errorf("failed to seed order: %w", createErr)
		}

		status := order.StatusReady
		updateCmd, cmdErr := commands.NewUpdateOrderCommand(
			created.ID(),
			&status,
			patch.Set(seed.pickTimeMinutes),
			patch.Field[kernel.UUID]{},
		)
		if cmdErr != nil {
			return fmt.Errorf("failed to build order completion seed: %w", cmdErr)
		}

		if _, updateErr := s.updateOrderHandler.Handle(ctx, updateCmd); updateErr != nil {
			return fmt.Errorf("failed to complete seeded order: %w", updateErr)
		}
	}

	return nil
}
