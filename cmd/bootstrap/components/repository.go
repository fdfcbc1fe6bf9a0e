package components

import (
	"onvacation-backend/internal/infra/excel"
	"onvacation-backend/internal/infra/mailer"
	repo_impl "onvacation-backend/internal/infra/repository"
	"onvacation-backend/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewAgencyRepository,
			fx.As(new(usecase.AgencyRepository)),
		),
		fx.Annotate(
			excel.NewReader,
			fx.As(new(usecase.SheetReader)),
		),
		mailer.NewGateway,
	),
)
