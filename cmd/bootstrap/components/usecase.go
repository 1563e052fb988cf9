package components

import (
	"neko-hotel/internal/domain/booking"
	"neko-hotel/internal/pkg/clock"
	"neko-hotel/internal/usecase/commands"
	"neko-hotel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewBookingUseCase,
		commands.NewPublicBookingUseCase,
		commands.NewCustomerUseCase,
		commands.NewRateUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCalendarQueries,
		queries.NewHistoryQueries,
		queries.NewCustomerQueries,
		queries.NewRateQueries,
	),
)
