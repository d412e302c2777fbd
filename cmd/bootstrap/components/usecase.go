package components

import (
	"stable-booking-api/internal/domain/booking"
	"stable-booking-api/internal/domain/care"
	"stable-booking-api/internal/pkg/clock"
	"stable-booking-api/internal/usecase/commands"
	"stable-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		booking.NewFactory,
		care.NewFactory,
	),
	commandsModule,
	queriesModule,
)

var commandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCareCommands,
		commands.NewReviewCommands,
		commands.NewUserCommands,
		commands.NewServiceCommands,
		commands.NewNotificationCommands,
	),
)

var queriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCareQueries,
		queries.NewServiceQueries,
		queries.NewNotificationQueries,
		queries.NewAdminQueries,
	),
)
