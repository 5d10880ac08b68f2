package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"hotel-saas/models"
	"hotel-saas/store"
	"hotel-saas/utils"
)

const invoiceNumberAttempts = 5

type BillingService struct {
	Store store.Store
	Log   *zap.Logger
	// NextInvoiceNumber is swapped out in tests.
	NextInvoiceNumber func(now time.Time) (string, error)
}

func NewBillingService(s store.Store, log *zap.Logger) *BillingService {
	return &BillingService{Store: s, Log: log, NextInvoiceNumber: utils.GenerateInvoiceNumber}
}

type InvoiceInput struct {
	PaymentID *string
	PdfURL    *string
}

func (s *BillingService) ListPayments(ctx context.Context, hotelID string) ([]models.Payment, error) {
	return s.Store.ListPayments(ctx, hotelID)
}

func (s *BillingService) GetPayment(ctx context.Context, hotelID, id string) (*models.Payment, error) {
	return s.Store.GetPayment(ctx, hotelID, id)
}

// CreatePayment records a payment. Currency falls back to the hotel's.
func (s *BillingService) CreatePayment(ctx context.Context, hotelID string, p *models.Payment) error {
	p.HotelID = hotelID
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	if p.Currency == "" {
		hotel, err := s.Store.GetHotel(ctx, hotelID)
		if err != nil {
			return fmt.Errorf("hotel %s: %w", hotelID, err)
		}
		p.Currency = hotel.Currency
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ReservationID != nil {
		if _, err := s.Store.GetReservation(ctx, hotelID, *p.ReservationID); err != nil {
			return fmt.Errorf("reservation %s: %w", *p.ReservationID, err)
		}
	}
	return s.Store.CreatePayment(ctx, p)
}

func (s *BillingService) UpdatePayment(ctx context.Context, hotelID, id string, patch models.PaymentPatch) (*models.Payment, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdatePayment(ctx, hotelID, id, patch)
}

func (s *BillingService) ListInvoices(ctx context.Context, hotelID string) ([]models.Invoice, error) {
	return s.Store.ListInvoices(ctx, hotelID)
}

func (s *BillingService) GetInvoice(ctx context.Context, hotelID, id string) (*models.Invoice, error) {
	return s.Store.GetInvoice(ctx, hotelID, id)
}

// CreateInvoice issues an invoice with a fresh number, retrying when the
// generated number is already taken. The linked payment, if any, is copied
// into Details as it stands now.
func (s *BillingService) CreateInvoice(ctx context.Context, hotelID string, in InvoiceInput) (*models.Invoice, error) {
	invoice := &models.Invoice{HotelID: hotelID, PaymentID: in.PaymentID, PdfURL: in.PdfURL}

	if in.PaymentID != nil {
		payment, err := s.Store.GetPayment(ctx, hotelID, *in.PaymentID)
		if err != nil {
			return nil, fmt.Errorf("payment %s: %w", *in.PaymentID, err)
		}
		snapshot, err := json.Marshal(payment)
		if err != nil {
			return nil, fmt.Errorf("snapshot payment: %w", err)
		}
		invoice.Details = datatypes.JSON(snapshot)
	}

	var createErr error
	for attempt := 0; attempt < invoiceNumberAttempts; attempt++ {
		number, err := s.NextInvoiceNumber(time.Now())
		if err != nil {
			return nil, fmt.Errorf("generate invoice number: %w", err)
		}
		invoice.ID = ""
		invoice.InvoiceNumber = number

		createErr = s.Store.CreateInvoice(ctx, invoice)
		if createErr == nil {
			return invoice, nil
		}
		if !errors.Is(createErr, store.ErrDuplicate) {
			return nil, createErr
		}
		s.Log.Warn("invoice number collision, retrying",
			zap.String("invoiceNumber", number), zap.Int("attempt", attempt+1))
	}
	return nil, fmt.Errorf("create invoice after %d attempts: %w", invoiceNumberAttempts, createErr)
}
