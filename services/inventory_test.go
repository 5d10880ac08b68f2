package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-saas/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplySale(t *testing.T) {
	next, err := ApplySale(dec("5"), dec("3"))
	require.NoError(t, err)
	assert.True(t, next.Equal(dec("2")))

	next, err = ApplySale(dec("2.5"), dec("2.5"))
	require.NoError(t, err)
	assert.True(t, next.IsZero())
}

func TestApplySale_Oversell(t *testing.T) {
	next, err := ApplySale(dec("2"), dec("3"))
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.True(t, next.Equal(dec("2")), "stock is returned unchanged")
}

func TestApplySale_NonPositiveQuantity(t *testing.T) {
	_, err := ApplySale(dec("5"), decimal.Zero)
	assert.Error(t, err)
	_, err = ApplySale(dec("5"), dec("-1"))
	assert.Error(t, err)
}

func TestApplyPurchase(t *testing.T) {
	next, err := ApplyPurchase(dec("5"), dec("10"))
	require.NoError(t, err)
	assert.True(t, next.Equal(dec("15")))

	_, err = ApplyPurchase(dec("5"), decimal.Zero)
	assert.Error(t, err)
}

func TestIsLowStock(t *testing.T) {
	p := models.Product{CurrentStock: dec("9"), AlertThreshold: dec("10")}
	assert.True(t, IsLowStock(p))

	p.CurrentStock = dec("10")
	assert.False(t, IsLowStock(p), "equal to the threshold is not low")
}

func TestFilterLowStock(t *testing.T) {
	products := []models.Product{
		{Name: "rum", CurrentStock: dec("1"), AlertThreshold: dec("5")},
		{Name: "water", CurrentStock: dec("50"), AlertThreshold: dec("10")},
		{Name: "coffee", CurrentStock: dec("0"), AlertThreshold: dec("2")},
	}
	low := FilterLowStock(products)
	require.Len(t, low, 2)
	assert.Equal(t, "rum", low[0].Name)
	assert.Equal(t, "coffee", low[1].Name)

	assert.NotNil(t, FilterLowStock(nil))
}
