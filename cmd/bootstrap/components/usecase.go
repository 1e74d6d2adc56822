package components

import (
	"storefront-inventory/internal/pkg/clock"
	"storefront-inventory/internal/usecase/commands"
	"storefront-inventory/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewInventoryCommands,
		queries.NewInventoryQueries,
	),
)
