package components

import (
	"storefront-inventory/internal/handler"
	"storefront-inventory/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInventoryHandler,
	),
	fx.Invoke(handler.NewRouter),
)
