package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hotel-saas/models"
	"hotel-saas/store"
)

// InventoryService owns restaurant products and the stock ledger. Stock
// never changes except through RecordSale and RecordPurchase, and both lock
// the product row for the read-modify-write.
type InventoryService struct {
	Store store.Store
}

func NewInventoryService(s store.Store) *InventoryService {
	return &InventoryService{Store: s}
}

type SaleInput struct {
	ProductID     string
	EmployeeID    *string
	RoomID        *string
	Quantity      decimal.Decimal
	Total         *decimal.Decimal
	PaymentMethod models.PaymentMethod
}

type PurchaseInput struct {
	ProductID    string
	SupplierID   *string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	Total        *decimal.Decimal
	PurchaseDate *time.Time
}

func (s *InventoryService) ListProducts(ctx context.Context, hotelID string) ([]models.Product, error) {
	return s.Store.ListProducts(ctx, hotelID)
}

func (s *InventoryService) GetProduct(ctx context.Context, hotelID, id string) (*models.Product, error) {
	return s.Store.GetProduct(ctx, hotelID, id)
}

func (s *InventoryService) CreateProduct(ctx context.Context, hotelID string, p *models.Product) error {
	p.HotelID = hotelID
	if err := p.Validate(); err != nil {
		return err
	}
	return s.Store.CreateProduct(ctx, p)
}

func (s *InventoryService) UpdateProduct(ctx context.Context, hotelID, id string, patch models.ProductPatch) (*models.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdateProduct(ctx, hotelID, id, patch)
}

func (s *InventoryService) DeleteProduct(ctx context.Context, hotelID, id string) error {
	return s.Store.DeleteProduct(ctx, hotelID, id)
}

// LowStock lists the hotel's products whose stock is below their alert
// threshold.
func (s *InventoryService) LowStock(ctx context.Context, hotelID string) ([]models.Product, error) {
	products, err := s.Store.ListProducts(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	return FilterLowStock(products), nil
}

// RecordSale decrements the product's stock and records the sale in one
// transaction. The total defaults to unit price times quantity.
func (s *InventoryService) RecordSale(ctx context.Context, hotelID string, in SaleInput) (*models.Sale, error) {
	sale := &models.Sale{
		HotelID:       hotelID,
		ProductID:     in.ProductID,
		EmployeeID:    in.EmployeeID,
		RoomID:        in.RoomID,
		Quantity:      in.Quantity,
		PaymentMethod: in.PaymentMethod,
	}
	if in.Total != nil {
		sale.Total = *in.Total
	}
	if err := sale.Validate(); err != nil {
		return nil, err
	}

	err := s.Store.Transaction(ctx, func(tx store.Store) error {
		product, err := tx.LockProduct(ctx, hotelID, sale.ProductID)
		if err != nil {
			return fmt.Errorf("product %s: %w", sale.ProductID, err)
		}
		if sale.RoomID != nil {
			if _, err := tx.GetRoom(ctx, hotelID, *sale.RoomID); err != nil {
				return fmt.Errorf("room %s: %w", *sale.RoomID, err)
			}
		}
		if sale.EmployeeID != nil {
			if _, err := tx.GetUser(ctx, hotelID, *sale.EmployeeID); err != nil {
				return fmt.Errorf("employee %s: %w", *sale.EmployeeID, err)
			}
		}

		stock, err := ApplySale(product.CurrentStock, sale.Quantity)
		if err != nil {
			return err
		}
		if err := tx.SetProductStock(ctx, hotelID, product.ID, stock); err != nil {
			return err
		}
		if in.Total == nil {
			sale.Total = product.UnitPrice.Mul(sale.Quantity)
		}
		return tx.CreateSale(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// RecordPurchase increments the product's stock and records the purchase
// in one transaction.
func (s *InventoryService) RecordPurchase(ctx context.Context, hotelID string, in PurchaseInput) (*models.Purchase, error) {
	purchase := &models.Purchase{
		HotelID:    hotelID,
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		Total:      in.UnitCost.Mul(in.Quantity),
	}
	if in.Total != nil {
		purchase.Total = *in.Total
	}
	purchase.PurchaseDate = time.Now().UTC()
	if in.PurchaseDate != nil {
		purchase.PurchaseDate = *in.PurchaseDate
	}
	if err := purchase.Validate(); err != nil {
		return nil, err
	}

	err := s.Store.Transaction(ctx, func(tx store.Store) error {
		product, err := tx.LockProduct(ctx, hotelID, purchase.ProductID)
		if err != nil {
			return fmt.Errorf("product %s: %w", purchase.ProductID, err)
		}
		if purchase.SupplierID != nil {
			if _, err := tx.GetSupplier(ctx, hotelID, *purchase.SupplierID); err != nil {
				return fmt.Errorf("supplier %s: %w", *purchase.SupplierID, err)
			}
		}
		stock, err := ApplyPurchase(product.CurrentStock, purchase.Quantity)
		if err != nil {
			return err
		}
		if err := tx.SetProductStock(ctx, hotelID, product.ID, stock); err != nil {
			return err
		}
		return tx.CreatePurchase(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (s *InventoryService) ListSales(ctx context.Context, hotelID string) ([]models.Sale, error) {
	return s.Store.ListSales(ctx, hotelID)
}

func (s *InventoryService) GetSale(ctx context.Context, hotelID, id string) (*models.Sale, error) {
	return s.Store.GetSale(ctx, hotelID, id)
}

func (s *InventoryService) SalesByEmployee(ctx context.Context, hotelID, employeeID string) ([]models.Sale, error) {
	return s.Store.ListSalesByEmployee(ctx, hotelID, employeeID)
}

func (s *InventoryService) ListPurchases(ctx context.Context, hotelID string) ([]models.Purchase, error) {
	return s.Store.ListPurchases(ctx, hotelID)
}

func (s *InventoryService) GetPurchase(ctx context.Context, hotelID, id string) (*models.Purchase, error) {
	return s.Store.GetPurchase(ctx, hotelID, id)
}

func (s *InventoryService) ListSuppliers(ctx context.Context, hotelID string) ([]models.Supplier, error) {
	return s.Store.ListSuppliers(ctx, hotelID)
}

func (s *InventoryService) CreateSupplier(ctx context.Context, hotelID string, sup *models.Supplier) error {
	sup.HotelID = hotelID
	if err := sup.Validate(); err != nil {
		return err
	}
	return s.Store.CreateSupplier(ctx, sup)
}

func (s *InventoryService) UpdateSupplier(ctx context.Context, hotelID, id string, patch models.SupplierPatch) (*models.Supplier, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdateSupplier(ctx, hotelID, id, patch)
}
