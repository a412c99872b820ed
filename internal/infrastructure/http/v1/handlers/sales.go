package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stokado/internal/core/apperror"
	"stokado/internal/core/id"
	"stokado/internal/domain"
	"stokado/internal/domain/documents/sales"
	"stokado/internal/infrastructure/http/v1/dto"
)

// SalesHandler provides HTTP handlers for sales transactions.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(base *BaseHandler, service *sales.Service) *SalesHandler {
	return &SalesHandler{BaseHandler: base, service: service}
}

// List handles GET /sales.
func (h *SalesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Status = c.Query("status")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, t := range result.Items {
		items[i] = dto.FromSales(t)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /sales/:id.
func (h *SalesHandler) Get(c *gin.Context) {
	txID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), txID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSales(t))
}

// GetByNumber handles GET /sales/by-number/:number.
func (h *SalesHandler) GetByNumber(c *gin.Context) {
	t, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSales(t))
}

// Create handles POST /sales.
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSalesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(c.Request.Context(), t); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSales(t))
}

// Update handles PUT /sales/:id.
func (h *SalesHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	txID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateSalesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, txID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(existing); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Update(ctx, existing); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSales(existing))
}

// Confirm handles POST /sales/:id/confirm.
func (h *SalesHandler) Confirm(c *gin.Context) {
	h.transition(c, h.service.Confirm)
}

// Complete handles POST /sales/:id/complete.
func (h *SalesHandler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

// Cancel handles POST /sales/:id/cancel.
func (h *SalesHandler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

func (h *SalesHandler) transition(c *gin.Context, apply func(ctx context.Context, txID id.ID) (*sales.Transaction, error)) {
	txID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	t, err := apply(c.Request.Context(), txID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSales(t))
}

// RegisterRoutes wires sales routes onto a group.
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/by-number/:number", h.GetByNumber)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/confirm", h.Confirm)
	rg.POST("/:id/complete", h.Complete)
	rg.POST("/:id/cancel", h.Cancel)
}
