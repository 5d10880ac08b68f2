// Package store is the persistence boundary. Every tenant-owned read or
// write takes the caller's hotel id and filters on it, so a row that
// belongs to another hotel is indistinguishable from a missing one.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"hotel-saas/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate value")
	ErrReferenced = errors.New("still referenced")
)

type Store interface {
	// Transaction runs fn against a Store bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// Platform level, not tenant scoped.
	CreateHotel(ctx context.Context, hotel *models.Hotel) error
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	GetHotelByEmail(ctx context.Context, email string) (*models.Hotel, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	UpdateHotel(ctx context.Context, id string, columns map[string]any) (*models.Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	GetUser(ctx context.Context, hotelID, id string) (*models.User, error)
	ListUsers(ctx context.Context, hotelID string) ([]models.User, error)
	UpdateUser(ctx context.Context, hotelID, id string, patch models.UserPatch) (*models.User, error)

	GetRoom(ctx context.Context, hotelID, id string) (*models.Room, error)
	// LockRoom reads the room and holds a write lock on it until the
	// surrounding transaction ends.
	LockRoom(ctx context.Context, hotelID, id string) (*models.Room, error)
	ListRooms(ctx context.Context, hotelID string) ([]models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) error
	UpdateRoom(ctx context.Context, hotelID, id string, patch models.RoomPatch) (*models.Room, error)
	DeleteRoom(ctx context.Context, hotelID, id string) error

	GetGuest(ctx context.Context, hotelID, id string) (*models.Guest, error)
	ListGuests(ctx context.Context, hotelID string) ([]models.Guest, error)
	CreateGuest(ctx context.Context, guest *models.Guest) error
	UpdateGuest(ctx context.Context, hotelID, id string, patch models.GuestPatch) (*models.Guest, error)

	GetReservation(ctx context.Context, hotelID, id string) (*models.Reservation, error)
	ListReservations(ctx context.Context, hotelID string) ([]models.Reservation, error)
	// ListReservationsForRoom returns every reservation of the room whose
	// [checkIn, checkOut) interval intersects [from, to), whatever its status.
	ListReservationsForRoom(ctx context.Context, hotelID, roomID string, from, to time.Time) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	UpdateReservation(ctx context.Context, hotelID, id string, patch models.ReservationPatch) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, hotelID, id string) error

	GetPayment(ctx context.Context, hotelID, id string) (*models.Payment, error)
	ListPayments(ctx context.Context, hotelID string) ([]models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
	UpdatePayment(ctx context.Context, hotelID, id string, patch models.PaymentPatch) (*models.Payment, error)

	GetInvoice(ctx context.Context, hotelID, id string) (*models.Invoice, error)
	ListInvoices(ctx context.Context, hotelID string) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, invoice *models.Invoice) error

	GetProduct(ctx context.Context, hotelID, id string) (*models.Product, error)
	// LockProduct reads the product and holds a write lock on it until the
	// surrounding transaction ends.
	LockProduct(ctx context.Context, hotelID, id string) (*models.Product, error)
	ListProducts(ctx context.Context, hotelID string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, hotelID, id string, patch models.ProductPatch) (*models.Product, error)
	SetProductStock(ctx context.Context, hotelID, id string, stock decimal.Decimal) error
	DeleteProduct(ctx context.Context, hotelID, id string) error

	GetSale(ctx context.Context, hotelID, id string) (*models.Sale, error)
	ListSales(ctx context.Context, hotelID string) ([]models.Sale, error)
	ListSalesByEmployee(ctx context.Context, hotelID, employeeID string) ([]models.Sale, error)
	CreateSale(ctx context.Context, sale *models.Sale) error

	GetPurchase(ctx context.Context, hotelID, id string) (*models.Purchase, error)
	ListPurchases(ctx context.Context, hotelID string) ([]models.Purchase, error)
	CreatePurchase(ctx context.Context, purchase *models.Purchase) error

	GetSupplier(ctx context.Context, hotelID, id string) (*models.Supplier, error)
	ListSuppliers(ctx context.Context, hotelID string) ([]models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier *models.Supplier) error
	UpdateSupplier(ctx context.Context, hotelID, id string, patch models.SupplierPatch) (*models.Supplier, error)
}
