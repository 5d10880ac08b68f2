package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"hotel-saas/models"
)

// ApplySale returns the stock left after selling qty units. Overselling is
// rejected rather than recorded as negative stock.
func ApplySale(stock, qty decimal.Decimal) (decimal.Decimal, error) {
	if !qty.IsPositive() {
		return stock, fmt.Errorf("quantity must be greater than zero, got %s", qty)
	}
	next := stock.Sub(qty)
	if next.IsNegative() {
		return stock, fmt.Errorf("%w: %s in stock, %s requested", ErrInsufficientStock, stock, qty)
	}
	return next, nil
}

// ApplyPurchase returns the stock after receiving qty units.
func ApplyPurchase(stock, qty decimal.Decimal) (decimal.Decimal, error) {
	if !qty.IsPositive() {
		return stock, fmt.Errorf("quantity must be greater than zero, got %s", qty)
	}
	return stock.Add(qty), nil
}

func IsLowStock(p models.Product) bool {
	return p.CurrentStock.LessThan(p.AlertThreshold)
}

func FilterLowStock(products []models.Product) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}
