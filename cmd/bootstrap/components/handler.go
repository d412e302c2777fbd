package components

import (
	"stable-booking-api/internal/handler"
	"stable-booking-api/internal/handler/api"
	"stable-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCareHandler,
		api.NewServiceHandler,
		api.NewNotificationHandler,
		api.NewAdminHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	care *api.CareHandler,
	service *api.ServiceHandler,
	notification *api.NotificationHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Booking:      booking,
		Care:         care,
		Service:      service,
		Notification: notification,
		Admin:        admin,
	}
}
