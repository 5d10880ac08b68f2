package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-saas/middleware"
	"hotel-saas/models"
	"hotel-saas/services"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

type createGuestRequest struct {
	Name   string  `json:"name" binding:"required"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	IDCard *string `json:"idCard"`
}

func (c *GuestController) List(ctx *gin.Context) {
	guests, err := c.GuestSvc.List(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, guests)
}

func (c *GuestController) Create(ctx *gin.Context) {
	var req createGuestRequest
	if !bindJSON(ctx, &req) {
		return
	}
	guest := &models.Guest{Name: req.Name, Phone: req.Phone, Email: req.Email, IDCard: req.IDCard}
	if err := c.GuestSvc.Create(ctx.Request.Context(), middleware.HotelID(ctx), guest); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, guest)
}

func (c *GuestController) Get(ctx *gin.Context) {
	guest, err := c.GuestSvc.Get(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, guest)
}

func (c *GuestController) Update(ctx *gin.Context) {
	var patch models.GuestPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	guest, err := c.GuestSvc.Update(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, guest)
}
