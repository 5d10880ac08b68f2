package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-saas/middleware"
	"hotel-saas/models"
	"hotel-saas/services"
	"hotel-saas/store"
	"hotel-saas/utils"
)

// respondError maps service and store errors onto HTTP responses. Anything
// unrecognised is logged and answered with a generic 500.
func respondError(ctx *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONValidationError(ctx, http.StatusBadRequest, verr.Fields)
	case errors.Is(err, services.ErrInvalidRange):
		utils.JSONValidationError(ctx, http.StatusBadRequest, []models.FieldError{
			{Field: "checkOut", Message: err.Error()},
		})
	case errors.Is(err, store.ErrNotFound):
		utils.JSONError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrBookingConflict),
		errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrDuplicate):
		utils.JSONError(ctx, http.StatusConflict, "a record with the same unique value already exists")
	case errors.Is(err, store.ErrReferenced):
		utils.JSONError(ctx, http.StatusConflict, "record is still referenced by other records")
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		utils.JSONError(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(ctx, http.StatusForbidden, err.Error())
	default:
		middleware.LoggerFrom(ctx).Error("request failed", zap.Error(err))
		utils.JSONError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

// bindJSON binds the body and answers 400 itself on failure.
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		utils.JSONValidationError(ctx, http.StatusBadRequest, utils.BindingErrors(err))
		return false
	}
	return true
}

func validationFailed(ctx *gin.Context, field, message string) {
	utils.JSONValidationError(ctx, http.StatusBadRequest, []models.FieldError{{Field: field, Message: message}})
}
