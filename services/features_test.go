package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"hotel-saas/models"
	"hotel-saas/store"
)

type hotelTestContext struct {
	store        *store.MemoryStore
	hotel        *models.Hotel
	rooms        map[string]*models.Room
	guest        *models.Guest
	products     map[string]*models.Product
	reservations *ReservationService
	inventory    *InventoryService
	last         *models.Reservation
	err          error
}

func (c *hotelTestContext) reset() error {
	c.store = store.NewMemoryStore()
	c.hotel = &models.Hotel{Name: "Hotel Montana", Email: "desk@montana.ht", Currency: "HTG", Plan: models.PlanTrial, Status: models.HotelTrial}
	c.rooms = map[string]*models.Room{}
	c.products = map[string]*models.Product{}
	c.guest = nil
	c.last = nil
	c.err = nil
	c.reservations = NewReservationService(c.store)
	c.inventory = NewInventoryService(c.store)
	return c.store.CreateHotel(context.Background(), c.hotel)
}

// ----------------------------------------------------
// Booking steps
// ----------------------------------------------------

func (c *hotelTestContext) aHotelWithRoomAtPerNight(number string, nightly int) error {
	room := &models.Room{
		HotelID:       c.hotel.ID,
		RoomNumber:    number,
		Type:          "double",
		PricePerNight: decimal.NewFromInt(int64(nightly)),
		Capacity:      2,
		Status:        models.RoomAvailable,
	}
	if err := c.store.CreateRoom(context.Background(), room); err != nil {
		return err
	}
	c.rooms[number] = room
	return nil
}

func (c *hotelTestContext) aGuestNamed(name string) error {
	c.guest = &models.Guest{HotelID: c.hotel.ID, Name: name}
	return c.store.CreateGuest(context.Background(), c.guest)
}

func (c *hotelTestContext) book(number, in, out string) (*models.Reservation, error) {
	room, ok := c.rooms[number]
	if !ok {
		return nil, fmt.Errorf("unknown room %s", number)
	}
	checkIn, err := parseDay(in)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDay(out)
	if err != nil {
		return nil, err
	}
	return c.reservations.Create(context.Background(), c.hotel.ID, ReservationInput{
		RoomID: room.ID, GuestID: c.guest.ID, CheckIn: checkIn, CheckOut: checkOut,
	})
}

func (c *hotelTestContext) roomIsBookedFromTo(number, in, out string) error {
	r, err := c.book(number, in, out)
	if err != nil {
		return err
	}
	c.last = r
	return nil
}

func (c *hotelTestContext) thatBookingIsCancelled() error {
	cancelled := models.ReservationCancelled
	_, err := c.reservations.Update(context.Background(), c.hotel.ID, c.last.ID, models.ReservationPatch{Status: &cancelled})
	return err
}

func (c *hotelTestContext) iBookRoomFromTo(number, in, out string) error {
	c.last, c.err = c.book(number, in, out)
	return nil
}

func (c *hotelTestContext) theBookingIsAccepted() error {
	if c.err != nil {
		return fmt.Errorf("expected booking to succeed, got %v", c.err)
	}
	return nil
}

func (c *hotelTestContext) theBookingIsRejectedAsAConflict() error {
	return expectErr(c.err, ErrBookingConflict)
}

func (c *hotelTestContext) theBookingIsRejectedAsAnInvalidRange() error {
	return expectErr(c.err, ErrInvalidRange)
}

func (c *hotelTestContext) roomHasReservations(number string, n int) error {
	all, err := c.reservations.List(context.Background(), c.hotel.ID)
	if err != nil {
		return err
	}
	count := 0
	for _, r := range all {
		if r.RoomID == c.rooms[number].ID {
			count++
		}
	}
	if count != n {
		return fmt.Errorf("expected %d reservations for room %s, got %d", n, number, count)
	}
	return nil
}

func (c *hotelTestContext) theBookingTotalIs(total int) error {
	if c.last == nil {
		return errors.New("no booking was made")
	}
	if !c.last.TotalAmount.Equal(decimal.NewFromInt(int64(total))) {
		return fmt.Errorf("expected total %d, got %s", total, c.last.TotalAmount)
	}
	return nil
}

// ----------------------------------------------------
// Inventory steps
// ----------------------------------------------------

func (c *hotelTestContext) aProductWithInStockAndAlertThreshold(name string, stock, threshold int) error {
	p := &models.Product{
		Name:           name,
		Category:       "drinks",
		Unit:           "bottle",
		UnitPrice:      decimal.NewFromInt(150),
		CurrentStock:   decimal.NewFromInt(int64(stock)),
		AlertThreshold: decimal.NewFromInt(int64(threshold)),
	}
	if err := c.inventory.CreateProduct(context.Background(), c.hotel.ID, p); err != nil {
		return err
	}
	c.products[name] = p
	return nil
}

func (c *hotelTestContext) unitsAreSold(qty int, name string) error {
	_, c.err = c.inventory.RecordSale(context.Background(), c.hotel.ID, SaleInput{
		ProductID:     c.products[name].ID,
		Quantity:      decimal.NewFromInt(int64(qty)),
		PaymentMethod: models.MethodCash,
	})
	return nil
}

func (c *hotelTestContext) unitsArePurchased(qty int, name string) error {
	_, err := c.inventory.RecordPurchase(context.Background(), c.hotel.ID, PurchaseInput{
		ProductID: c.products[name].ID,
		Quantity:  decimal.NewFromInt(int64(qty)),
		UnitCost:  decimal.NewFromInt(25),
	})
	return err
}

func (c *hotelTestContext) current(name string) (*models.Product, error) {
	return c.inventory.GetProduct(context.Background(), c.hotel.ID, c.products[name].ID)
}

func (c *hotelTestContext) hasInStock(name string, stock int) error {
	p, err := c.current(name)
	if err != nil {
		return err
	}
	if !p.CurrentStock.Equal(decimal.NewFromInt(int64(stock))) {
		return fmt.Errorf("expected %s to have %d in stock, got %s", name, stock, p.CurrentStock)
	}
	return nil
}

func (c *hotelTestContext) isLowOnStock(name string) error {
	p, err := c.current(name)
	if err != nil {
		return err
	}
	if !IsLowStock(*p) {
		return fmt.Errorf("expected %s to be low on stock", name)
	}
	return nil
}

func (c *hotelTestContext) isNotLowOnStock(name string) error {
	p, err := c.current(name)
	if err != nil {
		return err
	}
	if IsLowStock(*p) {
		return fmt.Errorf("expected %s not to be low on stock", name)
	}
	return nil
}

func (c *hotelTestContext) theSaleIsRefusedForInsufficientStock() error {
	return expectErr(c.err, ErrInsufficientStock)
}

func expectErr(got, want error) error {
	if !errors.Is(got, want) {
		return fmt.Errorf("expected %v, got %v", want, got)
	}
	return nil
}

func parseDay(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &hotelTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^a hotel with room "([^"]*)" at (\d+) per night$`, tc.aHotelWithRoomAtPerNight)
	ctx.Step(`^a guest named "([^"]*)"$`, tc.aGuestNamed)
	ctx.Step(`^room "([^"]*)" is booked from "([^"]*)" to "([^"]*)"$`, tc.roomIsBookedFromTo)
	ctx.Step(`^that booking is cancelled$`, tc.thatBookingIsCancelled)
	ctx.Step(`^a product "([^"]*)" with (\d+) in stock and alert threshold (\d+)$`, tc.aProductWithInStockAndAlertThreshold)

	// When steps
	ctx.Step(`^I book room "([^"]*)" from "([^"]*)" to "([^"]*)"$`, tc.iBookRoomFromTo)
	ctx.Step(`^(\d+) units of "([^"]*)" are sold$`, tc.unitsAreSold)
	ctx.Step(`^(\d+) units of "([^"]*)" are purchased$`, tc.unitsArePurchased)

	// Then steps
	ctx.Step(`^the booking is accepted$`, tc.theBookingIsAccepted)
	ctx.Step(`^the booking is rejected as a conflict$`, tc.theBookingIsRejectedAsAConflict)
	ctx.Step(`^the booking is rejected as an invalid range$`, tc.theBookingIsRejectedAsAnInvalidRange)
	ctx.Step(`^room "([^"]*)" has (\d+) reservations$`, tc.roomHasReservations)
	ctx.Step(`^the booking total is (\d+)$`, tc.theBookingTotalIs)
	ctx.Step(`^"([^"]*)" has (\d+) in stock$`, tc.hasInStock)
	ctx.Step(`^"([^"]*)" is low on stock$`, tc.isLowOnStock)
	ctx.Step(`^"([^"]*)" is not low on stock$`, tc.isNotLowOnStock)
	ctx.Step(`^the sale is refused for insufficient stock$`, tc.theSaleIsRefusedForInsufficientStock)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
