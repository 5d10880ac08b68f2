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

type InventoryController struct {
	InventorySvc *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{InventorySvc: svc}
}

type createProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Category       string           `json:"category" binding:"required"`
	UnitPrice      *decimal.Decimal `json:"unitPrice" binding:"required"`
	CurrentStock   *decimal.Decimal `json:"currentStock"`
	AlertThreshold *decimal.Decimal `json:"alertThreshold"`
	Unit           string           `json:"unit" binding:"required"`
}

type createSaleRequest struct {
	ProductID     string               `json:"productId" binding:"required"`
	EmployeeID    *string              `json:"employeeId"`
	RoomID        *string              `json:"roomId"`
	Quantity      *decimal.Decimal     `json:"quantity" binding:"required"`
	Total         *decimal.Decimal     `json:"total"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
}

type createPurchaseRequest struct {
	ProductID    string           `json:"productId" binding:"required"`
	SupplierID   *string          `json:"supplierId"`
	Quantity     *decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost     *decimal.Decimal `json:"unitCost" binding:"required"`
	Total        *decimal.Decimal `json:"total"`
	PurchaseDate *string          `json:"purchaseDate"`
}

type createSupplierRequest struct {
	Name    string  `json:"name" binding:"required"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// ----------------------------------------------------
// Products
// ----------------------------------------------------

func (c *InventoryController) ListProducts(ctx *gin.Context) {
	products, err := c.InventorySvc.ListProducts(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *InventoryController) LowStock(ctx *gin.Context) {
	products, err := c.InventorySvc.LowStock(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *InventoryController) CreateProduct(ctx *gin.Context) {
	var req createProductRequest
	if !bindJSON(ctx, &req) {
		return
	}
	product := &models.Product{
		Name:           req.Name,
		Category:       req.Category,
		UnitPrice:      *req.UnitPrice,
		AlertThreshold: models.DefaultAlertThreshold,
		Unit:           req.Unit,
	}
	if req.CurrentStock != nil {
		product.CurrentStock = *req.CurrentStock
	}
	if req.AlertThreshold != nil {
		product.AlertThreshold = *req.AlertThreshold
	}
	if err := c.InventorySvc.CreateProduct(ctx.Request.Context(), middleware.HotelID(ctx), product); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

func (c *InventoryController) GetProduct(ctx *gin.Context) {
	product, err := c.InventorySvc.GetProduct(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// UpdateProduct cannot touch stock; ProductPatch has no stock field.
func (c *InventoryController) UpdateProduct(ctx *gin.Context) {
	var patch models.ProductPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	product, err := c.InventorySvc.UpdateProduct(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *InventoryController) DeleteProduct(ctx *gin.Context) {
	if err := c.InventorySvc.DeleteProduct(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ----------------------------------------------------
// Sales and purchases
// ----------------------------------------------------

func (c *InventoryController) ListSales(ctx *gin.Context) {
	sales, err := c.InventorySvc.ListSales(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sales)
}

func (c *InventoryController) SalesByEmployee(ctx *gin.Context) {
	sales, err := c.InventorySvc.SalesByEmployee(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("employeeId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sales)
}

// CreateSale records the sale against the caller unless another employee
// is named.
func (c *InventoryController) CreateSale(ctx *gin.Context) {
	var req createSaleRequest
	if !bindJSON(ctx, &req) {
		return
	}
	in := services.SaleInput{
		ProductID:     req.ProductID,
		EmployeeID:    req.EmployeeID,
		RoomID:        req.RoomID,
		Quantity:      *req.Quantity,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
	}
	if claims := middleware.CurrentClaims(ctx); in.EmployeeID == nil && claims != nil && claims.Role != models.RoleSuperAdmin {
		in.EmployeeID = &claims.UserID
	}
	sale, err := c.InventorySvc.RecordSale(ctx.Request.Context(), middleware.HotelID(ctx), in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, sale)
}

func (c *InventoryController) GetSale(ctx *gin.Context) {
	sale, err := c.InventorySvc.GetSale(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sale)
}

func (c *InventoryController) ListPurchases(ctx *gin.Context) {
	purchases, err := c.InventorySvc.ListPurchases(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, purchases)
}

func (c *InventoryController) CreatePurchase(ctx *gin.Context) {
	var req createPurchaseRequest
	if !bindJSON(ctx, &req) {
		return
	}
	date, err := utils.ParseOptionalDate(req.PurchaseDate)
	if err != nil {
		validationFailed(ctx, "purchaseDate", err.Error())
		return
	}
	purchase, err := c.InventorySvc.RecordPurchase(ctx.Request.Context(), middleware.HotelID(ctx), services.PurchaseInput{
		ProductID:    req.ProductID,
		SupplierID:   req.SupplierID,
		Quantity:     *req.Quantity,
		UnitCost:     *req.UnitCost,
		Total:        req.Total,
		PurchaseDate: date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, purchase)
}

func (c *InventoryController) GetPurchase(ctx *gin.Context) {
	purchase, err := c.InventorySvc.GetPurchase(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, purchase)
}

// ----------------------------------------------------
// Suppliers
// ----------------------------------------------------

func (c *InventoryController) ListSuppliers(ctx *gin.Context) {
	suppliers, err := c.InventorySvc.ListSuppliers(ctx.Request.Context(), middleware.HotelID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, suppliers)
}

func (c *InventoryController) CreateSupplier(ctx *gin.Context) {
	var req createSupplierRequest
	if !bindJSON(ctx, &req) {
		return
	}
	sup := &models.Supplier{Name: req.Name, Contact: req.Contact, Address: req.Address}
	if err := c.InventorySvc.CreateSupplier(ctx.Request.Context(), middleware.HotelID(ctx), sup); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, sup)
}

func (c *InventoryController) UpdateSupplier(ctx *gin.Context) {
	var patch models.SupplierPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	sup, err := c.InventorySvc.UpdateSupplier(ctx.Request.Context(), middleware.HotelID(ctx), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sup)
}
