package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-saas/middleware"
	"hotel-saas/services"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type registerRequest struct {
	HotelName string  `json:"hotelName" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Currency  string  `json:"currency"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register (POST /api/auth/register)
func (c *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if !bindJSON(ctx, &req) {
		return
	}
	hotel, user, err := c.AuthSvc.Register(ctx.Request.Context(), services.RegisterInput{
		HotelName: req.HotelName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
		Currency:  req.Currency,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Hotel registered successfully",
		"hotel":   gin.H{"id": hotel.ID, "name": hotel.Name},
		"user":    gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// Login (POST /api/auth/login)
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if !bindJSON(ctx, &req) {
		return
	}
	res, err := c.AuthSvc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var hotel gin.H
	if res.Hotel != nil {
		hotel = gin.H{
			"id":       res.Hotel.ID,
			"name":     res.Hotel.Name,
			"currency": res.Hotel.Currency,
			"plan":     res.Hotel.Plan,
		}
	}
	ctx.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":      res.User.ID,
			"name":    res.User.Name,
			"email":   res.User.Email,
			"role":    res.User.Role,
			"hotelId": res.User.HotelID,
		},
		"hotel": hotel,
		"token": res.Token,
	})
}

// Logout (POST /api/auth/logout)
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthSvc.Logout(ctx.Request.Context(), middleware.CurrentClaims(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
