package components

import (
	"storefront-inventory/internal/infra/cache"
	"storefront-inventory/internal/infra/db"
	"storefront-inventory/internal/infra/readstore"
	"storefront-inventory/internal/infra/repository"
	"storefront-inventory/internal/pkg/config"
	"storefront-inventory/internal/usecase/commands"
	"storefront-inventory/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
		),
		fx.Annotate(
			repository.NewAdjustmentRepository,
			fx.As(new(commands.AdjustmentRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		fx.Annotate(
			readstore.NewAdjustmentReadStore,
			fx.As(new(queries.AdjustmentReadStore)),
		),
		// Request deduplication
		fx.Annotate(
			NewIdempotencyGuard,
			fx.As(new(commands.IdempotencyGuard)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewIdempotencyGuard(client *redis.Client, cfg config.Config) *cache.IdempotencyGuard {
	return cache.NewIdempotencyGuard(client, cfg.Redis.IdempotencyTTL)
}
