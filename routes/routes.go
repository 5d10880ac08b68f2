package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-saas/controllers"
	"hotel-saas/middleware"
	"hotel-saas/models"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Hotel       *controllers.HotelController
	Room        *controllers.RoomController
	Guest       *controllers.GuestController
	Reservation *controllers.ReservationController
	Billing     *controllers.BillingController
	Inventory   *controllers.InventoryController
	Report      *controllers.ReportController
	SuperAdmin  *controllers.SuperAdminController
}

// Role groups for write access. Super admins pass every role check.
var (
	owners      = []models.Role{models.RoleOwner}
	frontDesk   = []models.Role{models.RoleOwner, models.RoleReceptionist}
	roomKeepers = []models.Role{models.RoleOwner, models.RoleReceptionist, models.RoleHousekeeping}
	cashiers    = []models.Role{models.RoleOwner, models.RoleReceptionist, models.RoleAccountant}
	stockKeeper = []models.Role{models.RoleOwner, models.RoleChef, models.RoleAccountant}
	sellers     = []models.Role{models.RoleOwner, models.RoleReceptionist, models.RoleChef, models.RoleServer}
	reporters   = []models.Role{models.RoleOwner, models.RoleAccountant}
)

func SetupRouter(ctl Controllers, auth middleware.Authenticator, log *zap.Logger, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log), gin.Recovery())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", ctl.Auth.Register)
		authRoutes.POST("/login", ctl.Auth.Login)
		authRoutes.POST("/logout", middleware.Authenticate(auth), ctl.Auth.Logout)
	}

	private := api.Group("", middleware.Authenticate(auth))

	// Tenant-scoped collections: the path names the hotel.
	hotels := private.Group("/hotels/:hotelId", middleware.Tenant())
	{
		hotels.GET("", ctl.Hotel.Get)
		hotels.PATCH("", middleware.RequireRoles(owners...), ctl.Hotel.Update)

		hotels.GET("/users", middleware.RequireRoles(owners...), ctl.Hotel.ListUsers)
		hotels.POST("/users", middleware.RequireRoles(owners...), ctl.Hotel.CreateUser)

		hotels.GET("/rooms", ctl.Room.List)
		hotels.POST("/rooms", middleware.RequireRoles(owners...), ctl.Room.Create)

		hotels.GET("/guests", ctl.Guest.List)
		hotels.POST("/guests", middleware.RequireRoles(frontDesk...), ctl.Guest.Create)

		hotels.GET("/reservations", ctl.Reservation.List)
		hotels.POST("/reservations", middleware.RequireRoles(frontDesk...), ctl.Reservation.Create)

		hotels.GET("/payments", ctl.Billing.ListPayments)
		hotels.POST("/payments", middleware.RequireRoles(cashiers...), ctl.Billing.CreatePayment)
		hotels.GET("/invoices", ctl.Billing.ListInvoices)
		hotels.POST("/invoices", middleware.RequireRoles(cashiers...), ctl.Billing.CreateInvoice)

		hotels.GET("/products", ctl.Inventory.ListProducts)
		hotels.GET("/products/low-stock", ctl.Inventory.LowStock)
		hotels.POST("/products", middleware.RequireRoles(stockKeeper...), ctl.Inventory.CreateProduct)
		hotels.GET("/sales", ctl.Inventory.ListSales)
		hotels.POST("/sales", middleware.RequireRoles(sellers...), ctl.Inventory.CreateSale)
		hotels.GET("/employees/:employeeId/sales", ctl.Inventory.SalesByEmployee)
		hotels.GET("/purchases", ctl.Inventory.ListPurchases)
		hotels.POST("/purchases", middleware.RequireRoles(stockKeeper...), ctl.Inventory.CreatePurchase)
		hotels.GET("/suppliers", ctl.Inventory.ListSuppliers)
		hotels.POST("/suppliers", middleware.RequireRoles(stockKeeper...), ctl.Inventory.CreateSupplier)

		reports := hotels.Group("/reports", middleware.RequireRoles(reporters...))
		{
			reports.GET("/occupancy", ctl.Report.Occupancy)
			reports.GET("/revenue", ctl.Report.Revenue)
			reports.GET("/inventory", ctl.Report.Inventory)
		}
	}

	// Entity routes: the tenant comes from the token.
	entities := private.Group("", middleware.Tenant())
	{
		entities.GET("/rooms/:id", ctl.Room.Get)
		entities.PATCH("/rooms/:id", middleware.RequireRoles(roomKeepers...), ctl.Room.Update)
		entities.DELETE("/rooms/:id", middleware.RequireRoles(owners...), ctl.Room.Delete)

		entities.GET("/reservations/:id", ctl.Reservation.Get)
		entities.PATCH("/reservations/:id", middleware.RequireRoles(frontDesk...), ctl.Reservation.Update)
		entities.DELETE("/reservations/:id", middleware.RequireRoles(frontDesk...), ctl.Reservation.Delete)

		entities.GET("/guests/:id", ctl.Guest.Get)
		entities.PATCH("/guests/:id", middleware.RequireRoles(frontDesk...), ctl.Guest.Update)

		entities.GET("/payments/:id", ctl.Billing.GetPayment)
		entities.PATCH("/payments/:id", middleware.RequireRoles(cashiers...), ctl.Billing.UpdatePayment)
		entities.GET("/invoices/:id", ctl.Billing.GetInvoice)

		entities.GET("/products/:id", ctl.Inventory.GetProduct)
		entities.PATCH("/products/:id", middleware.RequireRoles(stockKeeper...), ctl.Inventory.UpdateProduct)
		entities.DELETE("/products/:id", middleware.RequireRoles(stockKeeper...), ctl.Inventory.DeleteProduct)
		entities.GET("/sales/:id", ctl.Inventory.GetSale)
		entities.GET("/purchases/:id", ctl.Inventory.GetPurchase)
		entities.PATCH("/suppliers/:id", middleware.RequireRoles(stockKeeper...), ctl.Inventory.UpdateSupplier)

		entities.PATCH("/users/:id", middleware.RequireRoles(owners...), ctl.Hotel.UpdateUser)
	}

	superadmin := private.Group("/superadmin", middleware.RequireRoles(models.RoleSuperAdmin))
	{
		superadmin.GET("/hotels", ctl.SuperAdmin.ListHotels)
		superadmin.GET("/hotels/:id", ctl.SuperAdmin.GetHotel)
		superadmin.PATCH("/hotels/:id", ctl.SuperAdmin.UpdateHotel)
		superadmin.DELETE("/hotels/:id", ctl.SuperAdmin.DeleteHotel)
		superadmin.GET("/analytics", ctl.SuperAdmin.Analytics)
	}

	return r
}
