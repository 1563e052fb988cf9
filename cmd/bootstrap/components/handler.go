package components

import (
	"neko-hotel/internal/handler"
	"neko-hotel/internal/handler/api"
	"neko-hotel/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCalendarHandler,
		api.NewCustomerHandler,
		api.NewHistoryHandler,
		api.NewRateHandler,
		api.NewPublicHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	calendar *api.CalendarHandler,
	customer *api.CustomerHandler,
	history *api.HistoryHandler,
	rate *api.RateHandler,
	public *api.PublicHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Booking:  booking,
		Calendar: calendar,
		Customer: customer,
		History:  history,
		Rate:     rate,
		Public:   public,
	}
}
