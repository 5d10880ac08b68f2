package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-saas/models"
	"hotel-saas/services"
)

// SuperAdminController manages tenants across the platform.
type SuperAdminController struct {
	HotelSvc  *services.HotelService
	ReportSvc *services.ReportService
}

func NewSuperAdminController(hotels *services.HotelService, reports *services.ReportService) *SuperAdminController {
	return &SuperAdminController{HotelSvc: hotels, ReportSvc: reports}
}

func (c *SuperAdminController) ListHotels(ctx *gin.Context) {
	hotels, err := c.HotelSvc.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hotels)
}

func (c *SuperAdminController) GetHotel(ctx *gin.Context) {
	hotel, err := c.HotelSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hotel)
}

func (c *SuperAdminController) UpdateHotel(ctx *gin.Context) {
	var patch models.PlatformHotelPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	hotel, err := c.HotelSvc.UpdatePlatform(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hotel)
}

func (c *SuperAdminController) DeleteHotel(ctx *gin.Context) {
	if err := c.HotelSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *SuperAdminController) Analytics(ctx *gin.Context) {
	analytics, err := c.ReportSvc.Analytics(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}
