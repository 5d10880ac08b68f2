package store

import (
	"context"

	"hotel-saas/models"
)

func (s *GormStore) GetPayment(ctx context.Context, hotelID, id string) (*models.Payment, error) {
	return first[models.Payment](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListPayments(ctx context.Context, hotelID string) ([]models.Payment, error) {
	return list[models.Payment](ctx, s.db, hotelID, "created_at DESC")
}

func (s *GormStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return create(ctx, s.db, payment)
}

func (s *GormStore) UpdatePayment(ctx context.Context, hotelID, id string, patch models.PaymentPatch) (*models.Payment, error) {
	return update[models.Payment](ctx, s.db, hotelID, id, patch.Columns())
}

func (s *GormStore) GetInvoice(ctx context.Context, hotelID, id string) (*models.Invoice, error) {
	return first[models.Invoice](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListInvoices(ctx context.Context, hotelID string) ([]models.Invoice, error) {
	return list[models.Invoice](ctx, s.db, hotelID, "created_at DESC")
}

func (s *GormStore) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	return create(ctx, s.db, invoice)
}
