package components

import (
	"table-reserve/internal/handler"
	"table-reserve/internal/handler/api"
	"table-reserve/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewStoreHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
