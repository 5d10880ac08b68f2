package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-saas/middleware"
	"hotel-saas/models"
	"hotel-saas/services"
	"hotel-saas/utils"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// Dates are accepted as YYYY-MM-DD or RFC3339.
type createReservationRequest struct {
	RoomID        string                   `json:"roomId" binding:"required"`
	GuestID       string                   `json:"guestId" binding:"required"`
	CheckIn       string                   `json:"checkIn" binding:"required"`
	CheckOut      string                   `json:"checkOut" binding:"required"`
	Status        models.ReservationStatus `json:"status"`
	TotalAmount   *decimal.Decimal         `json:"totalAmount"`
	PaymentStatus models.PaymentStatus     `json:"paymentStatus"`
}

type updateReservationRequest struct {
	RoomID        *string                   `json:"roomId"`
	GuestID       *string                   `json:"guestId"`
	CheckIn       *string                   `json:"checkIn"`
	CheckOut      *string                   `json:"checkOut"`
	Status        *models.ReservationStatus `json:"status"`
	TotalAmount   *decimal.Decimal          `json:"totalAmount"`
	PaymentStatus *models.PaymentStatus     `json:"paymentStatus"`
}

func (c *ReservationController) List(ctx *gin.Context) {
	reservations, err := c.ReservationSvc.List(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reservations)
}

// Create (POST /api/hotels/:hotelId/reservations) rejects stays that
// overlap an active reservation of the same room with 409.
func (c *ReservationController) Create(ctx *gin.Context) {
	var req createReservationRequest
	if !bindJSON(ctx, &req) {
		return
	}
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		validationFailed(ctx, "checkIn", err.Error())
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		validationFailed(ctx, "checkOut", err.Error())
		return
	}

	in := services.ReservationInput{
		RoomID:        req.RoomID,
		GuestID:       req.GuestID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        req.Status,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: req.PaymentStatus,
	}
	if claims := middleware.CurrentClaims(ctx); claims != nil && claims.Role != models.RoleSuperAdmin {
		in.CreatedBy = &claims.UserID
	}

	res, err := c.ReservationSvc.Create(ctx.Request.Context(), middleware.HotelID(ctx), in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

func (c *ReservationController) Get(ctx *gin.Context) {
	res, err := c.ReservationSvc.Get(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (c *ReservationController) Update(ctx *gin.Context) {
	var req updateReservationRequest
	if !bindJSON(ctx, &req) {
		return
	}
	checkIn, err := utils.ParseOptionalDate(req.CheckIn)
	if err != nil {
		validationFailed(ctx, "checkIn", err.Error())
		return
	}
	checkOut, err := utils.ParseOptionalDate(req.CheckOut)
	if err != nil {
		validationFailed(ctx, "checkOut", err.Error())
		return
	}

	patch := models.ReservationPatch{
		RoomID:        req.RoomID,
		GuestID:       req.GuestID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        req.Status,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: req.PaymentStatus,
	}
	res, err := c.ReservationSvc.Update(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (c *ReservationController) Delete(ctx *gin.Context) {
	if err := c.ReservationSvc.Delete(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
