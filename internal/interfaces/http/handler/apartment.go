package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	propertyapp "github.com/predio/backend/internal/application/property"
	rentapp "github.com/predio/backend/internal/application/rent"
	"github.com/predio/backend/internal/interfaces/http/dto"
	"github.com/predio/backend/internal/interfaces/http/middleware"
)

// ApartmentHandler handles unit administration and rent transitions
type ApartmentHandler struct {
	BaseHandler
	propertyService *propertyapp.Service
	rentService     *rentapp.Service
}

// NewApartmentHandler creates an ApartmentHandler
func NewApartmentHandler(propertyService *propertyapp.Service, rentService *rentapp.Service) *ApartmentHandler {
	return &ApartmentHandler{
		propertyService: propertyService,
		rentService:     rentService,
	}
}

// RegisterRoutes registers apartment routes. Everything except the plain
// list is admin-only.
func (h *ApartmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/apartments", h.List)
	rg.GET("/apartments/:number", h.Get)

	admin := rg.Group("", middleware.RequireAdmin())
	admin.GET("/dashboard", h.Dashboard)
	admin.PUT("/apartments/:number/rent", h.SetRent)
	admin.PUT("/apartments/:number/rent-status", h.SetRentStatus)
	admin.POST("/admin/rent/sweep-overdue", h.SweepOverdue)
}

// List returns every unit
func (h *ApartmentHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	apartments, err := h.propertyService.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, apartments)
}

// Get returns one unit by number
func (h *ApartmentHandler) Get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		h.BadRequest(c, "Invalid apartment number")
		return
	}

	apartment, err := h.propertyService.Get(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, apartment)
}

// Dashboard returns the admin landing-page summary
func (h *ApartmentHandler) Dashboard(c *gin.Context) {
	summary, err := h.propertyService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// SetRent changes the monthly rent of a unit
func (h *ApartmentHandler) SetRent(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		h.BadRequest(c, "Invalid apartment number")
		return
	}

	var req propertyapp.SetRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	apartment, err := h.propertyService.SetRent(c.Request.Context(), number, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, apartment)
}

// SetRentStatus applies an admin rent-status transition
func (h *ApartmentHandler) SetRentStatus(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		h.BadRequest(c, "Invalid apartment number")
		return
	}

	var req rentapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	status, err := h.rentService.SetStatus(c.Request.Context(), number, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// SweepOverdue marks past-due pending units as overdue
func (h *ApartmentHandler) SweepOverdue(c *gin.Context) {
	swept, err := h.rentService.SweepOverdue(c.Request.Context(), timeNow())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"swept": swept})
}
