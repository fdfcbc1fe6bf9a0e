package components

import (
	"onvacation-backend/internal/handler"
	"onvacation-backend/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAgencyHandler,
		api.NewNotificationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
