package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hotel-saas/models"
	"hotel-saas/store"
)

// Monthly subscription price per plan, in platform currency.
var planPrices = map[models.HotelPlan]decimal.Decimal{
	models.PlanTrial:      decimal.Zero,
	models.PlanBasic:      decimal.NewFromInt(800),
	models.PlanPro:        decimal.NewFromInt(2200),
	models.PlanEnterprise: decimal.NewFromInt(5000),
}

const growthWindow = 30 * 24 * time.Hour

var hundred = decimal.NewFromInt(100)

type OccupancyReport struct {
	TotalRooms        int    `json:"totalRooms"`
	OccupiedRooms     int    `json:"occupiedRooms"`
	AvailableRooms    int    `json:"availableRooms"`
	OccupancyRate     string `json:"occupancyRate"`
	TotalReservations int    `json:"totalReservations"`
}

type RevenueReport struct {
	RoomRevenue       string `json:"roomRevenue"`
	RestaurantRevenue string `json:"restaurantRevenue"`
	TotalRevenue      string `json:"totalRevenue"`
	TotalPayments     int    `json:"totalPayments"`
	TotalSales        int    `json:"totalSales"`
}

type ProductStockLine struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CurrentStock   decimal.Decimal `json:"currentStock"`
	AlertThreshold decimal.Decimal `json:"alertThreshold"`
	IsLowStock     bool            `json:"isLowStock"`
}

type InventoryReport struct {
	TotalProducts       int                `json:"totalProducts"`
	LowStockItems       int                `json:"lowStockItems"`
	TotalInventoryValue string             `json:"totalInventoryValue"`
	Products            []ProductStockLine `json:"products"`
}

type PlatformAnalytics struct {
	TotalHotels     int             `json:"totalHotels"`
	ActiveHotels    int             `json:"activeHotels"`
	TrialHotels     int             `json:"trialHotels"`
	SuspendedHotels int             `json:"suspendedHotels"`
	MRR             decimal.Decimal `json:"mrr"`
	GrowthRate      string          `json:"growthRate"`
}

// Occupancy counts rooms by their current status.
func Occupancy(rooms []models.Room, reservations []models.Reservation) OccupancyReport {
	r := OccupancyReport{TotalRooms: len(rooms), TotalReservations: len(reservations)}
	for _, room := range rooms {
		switch room.Status {
		case models.RoomOccupied:
			r.OccupiedRooms++
		case models.RoomAvailable:
			r.AvailableRooms++
		}
	}
	r.OccupancyRate = percent(int64(r.OccupiedRooms), int64(r.TotalRooms))
	return r
}

// Revenue sums completed payments as room revenue and every sale as
// restaurant revenue.
func Revenue(payments []models.Payment, sales []models.Sale) RevenueReport {
	room, restaurant := decimal.Zero, decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			room = room.Add(p.Amount)
		}
	}
	for _, s := range sales {
		restaurant = restaurant.Add(s.Total)
	}
	return RevenueReport{
		RoomRevenue:       room.StringFixed(2),
		RestaurantRevenue: restaurant.StringFixed(2),
		TotalRevenue:      room.Add(restaurant).StringFixed(2),
		TotalPayments:     len(payments),
		TotalSales:        len(sales),
	}
}

// InventoryValuation values stock at unit price.
func InventoryValuation(products []models.Product) InventoryReport {
	r := InventoryReport{TotalProducts: len(products), Products: make([]ProductStockLine, 0, len(products))}
	value := decimal.Zero
	for _, p := range products {
		low := IsLowStock(p)
		if low {
			r.LowStockItems++
		}
		value = value.Add(p.CurrentStock.Mul(p.UnitPrice))
		r.Products = append(r.Products, ProductStockLine{
			ID:             p.ID,
			Name:           p.Name,
			CurrentStock:   p.CurrentStock,
			AlertThreshold: p.AlertThreshold,
			IsLowStock:     low,
		})
	}
	r.TotalInventoryValue = value.StringFixed(2)
	return r
}

// Analytics summarises the platform. MRR counts active hotels only.
// GrowthRate compares hotels created in the last 30 days with those that
// existed before; it is 0 when there were none before.
func Analytics(hotels []models.Hotel, now time.Time) PlatformAnalytics {
	a := PlatformAnalytics{TotalHotels: len(hotels), MRR: decimal.Zero}
	windowStart := now.Add(-growthWindow)
	var recent, before int64
	for _, h := range hotels {
		switch h.Status {
		case models.HotelActive:
			a.ActiveHotels++
			a.MRR = a.MRR.Add(planPrices[h.Plan])
		case models.HotelTrial:
			a.TrialHotels++
		case models.HotelSuspended:
			a.SuspendedHotels++
		}
		if h.CreatedAt.Before(windowStart) {
			before++
		} else {
			recent++
		}
	}
	a.GrowthRate = percent(recent, before)
	return a
}

func percent(part, whole int64) string {
	if whole == 0 {
		return decimal.Zero.StringFixed(2)
	}
	return decimal.NewFromInt(part).Mul(hundred).Div(decimal.NewFromInt(whole)).StringFixed(2)
}

type ReportService struct {
	Store store.Store
	now   func() time.Time
}

func NewReportService(s store.Store) *ReportService {
	return &ReportService{Store: s, now: time.Now}
}

func (s *ReportService) Occupancy(ctx context.Context, hotelID string) (OccupancyReport, error) {
	rooms, err := s.Store.ListRooms(ctx, hotelID)
	if err != nil {
		return OccupancyReport{}, err
	}
	reservations, err := s.Store.ListReservations(ctx, hotelID)
	if err != nil {
		return OccupancyReport{}, err
	}
	return Occupancy(rooms, reservations), nil
}

func (s *ReportService) Revenue(ctx context.Context, hotelID string) (RevenueReport, error) {
	payments, err := s.Store.ListPayments(ctx, hotelID)
	if err != nil {
		return RevenueReport{}, err
	}
	sales, err := s.Store.ListSales(ctx, hotelID)
	if err != nil {
		return RevenueReport{}, err
	}
	return Revenue(payments, sales), nil
}

func (s *ReportService) Inventory(ctx context.Context, hotelID string) (InventoryReport, error) {
	products, err := s.Store.ListProducts(ctx, hotelID)
	if err != nil {
		return InventoryReport{}, err
	}
	return InventoryValuation(products), nil
}

func (s *ReportService) Analytics(ctx context.Context) (PlatformAnalytics, error) {
	hotels, err := s.Store.ListHotels(ctx)
	if err != nil {
		return PlatformAnalytics{}, err
	}
	return Analytics(hotels, s.now()), nil
}
