package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-saas/middleware"
	"hotel-saas/services"
)

type ReportController struct {
	ReportSvc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{ReportSvc: svc}
}

func (c *ReportController) Occupancy(ctx *gin.Context) {
	report, err := c.ReportSvc.Occupancy(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func (c *ReportController) Revenue(ctx *gin.Context) {
	report, err := c.ReportSvc.Revenue(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func (c *ReportController) Inventory(ctx *gin.Context) {
	report, err := c.ReportSvc.Inventory(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
