package routes

import (
	"go.uber.org/zap"

	"hotel-saas/controllers"
	"hotel-saas/services"
	"hotel-saas/store"
)

// NewControllers builds every service over one store and wraps each in its
// controller. The auth service is shared so the caller can also use it for
// the token middleware.
func NewControllers(s store.Store, auth *services.AuthService, log *zap.Logger) Controllers {
	hotelSvc := services.NewHotelService(s)
	reportSvc := services.NewReportService(s)

	return Controllers{
		Auth:        controllers.NewAuthController(auth),
		Hotel:       controllers.NewHotelController(hotelSvc),
		Room:        controllers.NewRoomController(services.NewRoomService(s)),
		Guest:       controllers.NewGuestController(services.NewGuestService(s)),
		Reservation: controllers.NewReservationController(services.NewReservationService(s)),
		Billing:     controllers.NewBillingController(services.NewBillingService(s, log.Named("billing"))),
		Inventory:   controllers.NewInventoryController(services.NewInventoryService(s)),
		Report:      controllers.NewReportController(reportSvc),
		SuperAdmin:  controllers.NewSuperAdminController(hotelSvc, reportSvc),
	}
}
