package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/restaurant-backend/internal/config"
	"github.com/Lixing-Zhang/restaurant-backend/internal/database"
	"github.com/Lixing-Zhang/restaurant-backend/internal/handlers"
	"github.com/Lixing-Zhang/restaurant-backend/internal/repository"
)

// stores bundles the repositories selected by configuration
type stores struct {
	menu   repository.MenuRepository
	orders repository.OrderRepository
	pinger handlers.Pinger
	close  func()
}

func openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*stores, error) {
	switch cfg.Database.Driver {
	case config.StoreMemory:
		log.Warn("using in-memory store; data is lost on restart")
		return &stores{
			menu:   repository.NewInMemoryMenuRepository(),
			orders: repository.NewInMemoryOrderRepository(),
			close:  func() {},
		}, nil

	case config.StorePostgres:
		db, err := database.New(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Info("connected to postgres")

		if cfg.Database.AutoMigrate {
			applied, err := db.RunMigrations(ctx)
			if err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info("migrations complete", "applied", len(applied))
		}

		return &stores{
			menu:   repository.NewPostgresMenuRepository(db.Pool),
			orders: repository.NewPostgresOrderRepository(db.Pool),
			pinger: db,
			close:  db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Database.Driver)
	}
}
