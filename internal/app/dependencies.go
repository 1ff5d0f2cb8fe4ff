package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/bookstore/internal/health"
	"github.com/vladislavdragonenkov/bookstore/internal/storage/memory"
	"github.com/vladislavdragonenkov/bookstore/internal/storage/postgres"
)

const storagePingTimeout = 2 * time.Second

// runtimeDependencies — сконструированный по конфигурации набор репозиториев.
type runtimeDependencies struct {
	books     domain.BookRepository
	customers domain.CustomerRepository
	addresses domain.AddressRepository
	reference domain.ReferenceDataRepository
	orders    domain.OrderRepository
	offers    domain.OfferRepository
	carts     domain.CartRepository
	placer    domain.OrderPlacer

	outboxRepo      domain.OutboxRepository
	timelineRepo    domain.TimelineRepository
	idempotencyRepo domain.IdempotencyRepository

	storageChecker healthcheck.Checker
	closeFn        func() error
}

// initRuntimeDependencies создаёт хранилище по cfg.StorageDriver.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		books := memory.NewBookRepository()
		orders := memory.NewOrderRepository()
		return runtimeDependencies{
			books:           books,
			customers:       memory.NewCustomerRepository(),
			addresses:       memory.NewAddressRepository(),
			reference:       memory.NewReferenceDataRepository(),
			orders:          orders,
			offers:          memory.NewOfferRepository(),
			carts:           memory.NewCartRepository(),
			placer:          memory.NewOrderPlacer(books, orders),
			outboxRepo:      memory.NewOutboxRepository(),
			timelineRepo:    memory.NewTimelineRepository(),
			idempotencyRepo: memory.NewIdempotencyRepository(),
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return runtimeDependencies{}, fmt.Errorf("postgres storage driver requires a DSN")
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return runtimeDependencies{}, fmt.Errorf("init postgres storage: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return runtimeDependencies{}, fmt.Errorf("apply postgres migrations: %w", err)
			}
			logger.Info("postgres schema is up to date")
		}

		return runtimeDependencies{
			books:           postgres.NewBookRepository(store),
			customers:       postgres.NewCustomerRepository(store),
			addresses:       postgres.NewAddressRepository(store),
			reference:       postgres.NewReferenceDataRepository(store),
			orders:          postgres.NewOrderRepository(store),
			offers:          postgres.NewOfferRepository(store),
			carts:           postgres.NewCartRepository(store),
			placer:          postgres.NewOrderPlacer(store),
			outboxRepo:      postgres.NewOutboxRepository(store),
			timelineRepo:    postgres.NewTimelineRepository(store),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			storageChecker: healthcheck.NewSimpleChecker("storage", func() error {
				pingCtx, cancel := context.WithTimeout(context.Background(), storagePingTimeout)
				defer cancel()
				return store.Ping(pingCtx)
			}),
			closeFn: store.Close,
		}, nil

	default:
		return runtimeDependencies{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// close освобождает ресурсы хранилища, если они есть.
func (d runtimeDependencies) close(logger *log.Entry) {
	if d.closeFn == nil {
		return
	}
	if err := d.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
	}
}
