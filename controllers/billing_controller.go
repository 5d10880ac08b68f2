package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-saas/middleware"
	"hotel-saas/models"
	"hotel-saas/services"
)

type BillingController struct {
	BillingSvc *services.BillingService
}

func NewBillingController(svc *services.BillingService) *BillingController {
	return &BillingController{BillingSvc: svc}
}

type createPaymentRequest struct {
	ReservationID *string              `json:"reservationId"`
	Amount        *decimal.Decimal     `json:"amount" binding:"required"`
	Currency      string               `json:"currency"`
	Method        models.PaymentMethod `json:"method" binding:"required"`
	Status        models.PaymentStatus `json:"status"`
	Notes         *string              `json:"notes"`
}

type createInvoiceRequest struct {
	PaymentID *string `json:"paymentId"`
	PdfURL    *string `json:"pdfUrl"`
}

func (c *BillingController) ListPayments(ctx *gin.Context) {
	payments, err := c.BillingSvc.ListPayments(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payments)
}

func (c *BillingController) CreatePayment(ctx *gin.Context) {
	var req createPaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}
	payment := &models.Payment{
		ReservationID: req.ReservationID,
		Amount:        *req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		Status:        req.Status,
		Notes:         req.Notes,
	}
	if err := c.BillingSvc.CreatePayment(ctx.Request.Context(), middleware.HotelID(ctx), payment); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, payment)
}

func (c *BillingController) GetPayment(ctx *gin.Context) {
	payment, err := c.BillingSvc.GetPayment(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payment)
}

func (c *BillingController) UpdatePayment(ctx *gin.Context) {
	var patch models.PaymentPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	payment, err := c.BillingSvc.UpdatePayment(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payment)
}

func (c *BillingController) ListInvoices(ctx *gin.Context) {
	invoices, err := c.BillingSvc.ListInvoices(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, invoices)
}

// CreateInvoice (POST /api/hotels/:hotelId/invoices). The invoice number
// is always generated here; a client supplied one is ignored.
func (c *BillingController) CreateInvoice(ctx *gin.Context) {
	var req createInvoiceRequest
	if !bindJSON(ctx, &req) {
		return
	}
	invoice, err := c.BillingSvc.CreateInvoice(ctx.Request.Context(), middleware.HotelID(ctx), services.InvoiceInput{
		PaymentID: req.PaymentID,
		PdfURL:    req.PdfURL,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, invoice)
}

func (c *BillingController) GetInvoice(ctx *gin.Context) {
	invoice, err := c.BillingSvc.GetInvoice(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, invoice)
}
