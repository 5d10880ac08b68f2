package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-saas/models"
)

func TestOccupancy(t *testing.T) {
	rooms := []models.Room{
		{Status: models.RoomOccupied},
		{Status: models.RoomOccupied},
		{Status: models.RoomAvailable},
		{Status: models.RoomCleaning},
	}
	r := Occupancy(rooms, make([]models.Reservation, 3))
	assert.Equal(t, 4, r.TotalRooms)
	assert.Equal(t, 2, r.OccupiedRooms)
	assert.Equal(t, 1, r.AvailableRooms)
	assert.Equal(t, 3, r.TotalReservations)
	assert.Equal(t, "50.00", r.OccupancyRate)

	assert.Equal(t, "0.00", Occupancy(nil, nil).OccupancyRate)
}

func TestRevenue(t *testing.T) {
	payments := []models.Payment{
		{Amount: dec("1000"), Status: models.PaymentCompleted},
		{Amount: dec("250.50"), Status: models.PaymentCompleted},
		{Amount: dec("999"), Status: models.PaymentPending},
		{Amount: dec("400"), Status: models.PaymentRefunded},
	}
	sales := []models.Sale{{Total: dec("150")}, {Total: dec("75.25")}}

	r := Revenue(payments, sales)
	assert.Equal(t, "1250.50", r.RoomRevenue)
	assert.Equal(t, "225.25", r.RestaurantRevenue)
	assert.Equal(t, "1475.75", r.TotalRevenue)
	assert.Equal(t, 4, r.TotalPayments)
	assert.Equal(t, 2, r.TotalSales)
}

func TestInventoryValuation(t *testing.T) {
	products := []models.Product{
		{Name: "rum", UnitPrice: dec("150"), CurrentStock: dec("2"), AlertThreshold: dec("5")},
		{Name: "water", UnitPrice: dec("25"), CurrentStock: dec("40"), AlertThreshold: dec("10")},
	}
	r := InventoryValuation(products)
	assert.Equal(t, 2, r.TotalProducts)
	assert.Equal(t, 1, r.LowStockItems)
	assert.Equal(t, "1300.00", r.TotalInventoryValue)
	require.Len(t, r.Products, 2)
	assert.True(t, r.Products[0].IsLowStock)
	assert.False(t, r.Products[1].IsLowStock)
}

func TestAnalytics(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -3, 0)
	recent := now.AddDate(0, 0, -5)
	hotel := func(plan models.HotelPlan, status models.HotelStatus, created time.Time) models.Hotel {
		h := models.Hotel{Plan: plan, Status: status}
		h.CreatedAt = created
		return h
	}

	hotels := []models.Hotel{
		hotel(models.PlanBasic, models.HotelActive, old),
		hotel(models.PlanPro, models.HotelActive, old),
		hotel(models.PlanEnterprise, models.HotelSuspended, old),
		hotel(models.PlanTrial, models.HotelTrial, old),
		hotel(models.PlanEnterprise, models.HotelActive, recent),
	}
	a := Analytics(hotels, now)
	assert.Equal(t, 5, a.TotalHotels)
	assert.Equal(t, 3, a.ActiveHotels)
	assert.Equal(t, 1, a.TrialHotels)
	assert.Equal(t, 1, a.SuspendedHotels)
	assert.True(t, a.MRR.Equal(dec("8000")), "800 + 2200 + 5000, suspended hotels excluded")
	assert.Equal(t, "25.00", a.GrowthRate)

	assert.Equal(t, "0.00", Analytics([]models.Hotel{hotel(models.PlanBasic, models.HotelActive, recent)}, now).GrowthRate)
}

func TestReportService_ScopedToHotel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.room(t, "101", "100")
	f.product(t, "rum", "2", "5")
	other := seedHotel(t, f.store, "Oloffson", "front@oloffson.ht")

	svc := NewReportService(f.store)
	occ, err := svc.Occupancy(ctx, f.hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, occ.TotalRooms)

	occ, err = svc.Occupancy(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, occ.TotalRooms)

	inv, err := svc.Inventory(ctx, f.hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, inv.LowStockItems)

	rev, err := svc.Revenue(ctx, f.hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", rev.TotalRevenue)

	svc.now = func() time.Time { return time.Now().Add(60 * 24 * time.Hour) }
	a, err := svc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, a.TotalHotels)
	assert.Equal(t, 2, a.TrialHotels)
}
