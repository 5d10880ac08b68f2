package store

import (
	"context"

	"github.com/shopspring/decimal"

	"hotel-saas/models"
)

func (s *GormStore) GetProduct(ctx context.Context, hotelID, id string) (*models.Product, error) {
	return first[models.Product](ctx, s.db, hotelID, id)
}

func (s *GormStore) LockProduct(ctx context.Context, hotelID, id string) (*models.Product, error) {
	return lockFirst[models.Product](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListProducts(ctx context.Context, hotelID string) ([]models.Product, error) {
	return list[models.Product](ctx, s.db, hotelID, "name ASC")
}

func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	return create(ctx, s.db, product)
}

func (s *GormStore) UpdateProduct(ctx context.Context, hotelID, id string, patch models.ProductPatch) (*models.Product, error) {
	return update[models.Product](ctx, s.db, hotelID, id, patch.Columns())
}

func (s *GormStore) SetProductStock(ctx context.Context, hotelID, id string, stock decimal.Decimal) error {
	res := scoped(ctx, s.db, hotelID).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("current_stock", stock)
	return translate(res.Error)
}

func (s *GormStore) DeleteProduct(ctx context.Context, hotelID, id string) error {
	return remove[models.Product](ctx, s.db, hotelID, id)
}

func (s *GormStore) GetSale(ctx context.Context, hotelID, id string) (*models.Sale, error) {
	return first[models.Sale](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListSales(ctx context.Context, hotelID string) ([]models.Sale, error) {
	return list[models.Sale](ctx, s.db, hotelID, "created_at DESC")
}

func (s *GormStore) ListSalesByEmployee(ctx context.Context, hotelID, employeeID string) ([]models.Sale, error) {
	out := []models.Sale{}
	err := scoped(ctx, s.db, hotelID).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (s *GormStore) CreateSale(ctx context.Context, sale *models.Sale) error {
	return create(ctx, s.db, sale)
}

func (s *GormStore) GetPurchase(ctx context.Context, hotelID, id string) (*models.Purchase, error) {
	return first[models.Purchase](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListPurchases(ctx context.Context, hotelID string) ([]models.Purchase, error) {
	return list[models.Purchase](ctx, s.db, hotelID, "created_at DESC")
}

func (s *GormStore) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	return create(ctx, s.db, purchase)
}

func (s *GormStore) GetSupplier(ctx context.Context, hotelID, id string) (*models.Supplier, error) {
	return first[models.Supplier](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListSuppliers(ctx context.Context, hotelID string) ([]models.Supplier, error) {
	return list[models.Supplier](ctx, s.db, hotelID, "name ASC")
}

func (s *GormStore) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	return create(ctx, s.db, supplier)
}

func (s *GormStore) UpdateSupplier(ctx context.Context, hotelID, id string, patch models.SupplierPatch) (*models.Supplier, error) {
	return update[models.Supplier](ctx, s.db, hotelID, id, patch.Columns())
}
