package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/predio/backend/internal/application/finance"
	"github.com/predio/backend/internal/interfaces/http/dto"
	"github.com/predio/backend/internal/interfaces/http/middleware"
)

// FinanceHandler handles the ledger and payment requests, all admin-only
type FinanceHandler struct {
	BaseHandler
	financeService *financeapp.Service
}

// NewFinanceHandler creates a FinanceHandler
func NewFinanceHandler(financeService *financeapp.Service) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// RegisterRoutes registers finance routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("", middleware.RequireAdmin())
	admin.GET("/transactions", h.ListTransactions)
	admin.POST("/transactions", h.CreateTransaction)
	admin.PUT("/transactions/:id", h.UpdateTransaction)
	admin.DELETE("/transactions/:id", h.DeleteTransaction)
	admin.GET("/finance/summary", h.MonthlySummary)
	admin.GET("/payment-requests", h.ListPaymentRequests)
	admin.PUT("/payment-requests/:id/acknowledge", h.AcknowledgePaymentRequest)
}

// ListTransactions returns ledger entries
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	transactions, err := h.financeService.ListTransactions(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transactions)
}

// CreateTransaction records a manual ledger entry
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req financeapp.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.financeService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, transaction)
}

// UpdateTransaction corrects an existing ledger entry
func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction id")
		return
	}

	var req financeapp.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.financeService.UpdateTransaction(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transaction)
}

// DeleteTransaction removes a ledger entry
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction id")
		return
	}

	if err := h.financeService.DeleteTransaction(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// MonthlySummary sums the ledger for one calendar month. Defaults to the
// current month when year/month are absent.
func (h *FinanceHandler) MonthlySummary(c *gin.Context) {
	now := timeNow()
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil || month < 1 || month > 12 {
		h.BadRequest(c, "Invalid month")
		return
	}

	summary, err := h.financeService.MonthlySummary(c.Request.Context(), year, time.Month(month))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// ListPaymentRequests returns requests awaiting acknowledgement
func (h *FinanceHandler) ListPaymentRequests(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	requests, err := h.financeService.ListPendingPaymentRequests(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, requests)
}

// AcknowledgePaymentRequest marks a request as seen
func (h *FinanceHandler) AcknowledgePaymentRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment request id")
		return
	}

	request, err := h.financeService.AcknowledgePaymentRequest(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
