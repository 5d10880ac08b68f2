package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotel-saas/middleware"
	"hotel-saas/models"
	"hotel-saas/services"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type createRoomRequest struct {
	RoomNumber    string            `json:"roomNumber" binding:"required"`
	Type          string            `json:"type" binding:"required"`
	PricePerNight *decimal.Decimal  `json:"pricePerNight" binding:"required"`
	Capacity      int               `json:"capacity" binding:"required"`
	Status        models.RoomStatus `json:"status"`
	Notes         *string           `json:"notes"`
}

// ----------------------------------------------------
// GET /api/hotels/:hotelId/rooms
// ----------------------------------------------------
func (c *RoomController) List(ctx *gin.Context) {
	rooms, err := c.RoomSvc.List(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// POST /api/hotels/:hotelId/rooms
// ----------------------------------------------------
func (c *RoomController) Create(ctx *gin.Context) {
	var req createRoomRequest
	if !bindJSON(ctx, &req) {
		return
	}
	room := &models.Room{
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		PricePerNight: *req.PricePerNight,
		Capacity:      req.Capacity,
		Status:        req.Status,
		Notes:         req.Notes,
	}
	if err := c.RoomSvc.Create(ctx.Request.Context(), middleware.HotelID(ctx), room); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// GET /api/rooms/:id
// ----------------------------------------------------
func (c *RoomController) Get(ctx *gin.Context) {
	room, err := c.RoomSvc.Get(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /api/rooms/:id
// ----------------------------------------------------
func (c *RoomController) Update(ctx *gin.Context) {
	var patch models.RoomPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	room, err := c.RoomSvc.Update(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// DELETE /api/rooms/:id
// ----------------------------------------------------
func (c *RoomController) Delete(ctx *gin.Context) {
	if err := c.RoomSvc.Delete(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
