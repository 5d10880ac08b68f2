package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-saas/middleware"
	"hotel-saas/models"
	"hotel-saas/services"
)

// HotelController serves a tenant's own settings and its staff accounts.
type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

type createUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role"`
}

func (c *HotelController) Get(ctx *gin.Context) {
	hotel, err := c.HotelSvc.Get(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hotel)
}

func (c *HotelController) Update(ctx *gin.Context) {
	var patch models.HotelPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	hotel, err := c.HotelSvc.Update(ctx.Request.Context(), middleware.HotelID(ctx), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hotel)
}

func (c *HotelController) ListUsers(ctx *gin.Context) {
	users, err := c.HotelSvc.ListUsers(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (c *HotelController) CreateUser(ctx *gin.Context) {
	var req createUserRequest
	if !bindJSON(ctx, &req) {
		return
	}
	user, err := c.HotelSvc.CreateUser(ctx.Request.Context(), middleware.HotelID(ctx), services.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (c *HotelController) UpdateUser(ctx *gin.Context) {
	var patch models.UserPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	user, err := c.HotelSvc.UpdateUser(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
