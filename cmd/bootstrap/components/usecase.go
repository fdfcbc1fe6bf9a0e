package components

import (
	"onvacation-backend/internal/pkg/clock"
	"onvacation-backend/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewReservationUseCase,
		usecase.NewAgencyUseCase,
		usecase.NewNotificationUseCase,
		usecase.NewImportUseCase,
	),
)
