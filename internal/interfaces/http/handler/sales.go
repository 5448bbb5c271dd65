package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	salesapp "github.com/odiedo/PesaTrackAdmin/internal/application/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/dto"
)

// PurchaseRecorder records checkouts
type PurchaseRecorder interface {
	RecordPurchase(ctx context.Context, items []salesapp.LineItemInput) (sales.TransactionID, error)
}

// SalesReader answers sales history queries
type SalesReader interface {
	ListRecentTransactions(ctx context.Context, limit int) ([]salesapp.TransactionSummaryResponse, error)
	GetTransactionDetail(ctx context.Context, id string) ([]salesapp.DetailLineResponse, error)
}

// SalesHandler serves the till's checkout and sales history endpoints
type SalesHandler struct {
	BaseHandler
	purchases PurchaseRecorder
	reader    SalesReader
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(purchases PurchaseRecorder, reader SalesReader) *SalesHandler {
	return &SalesHandler{purchases: purchases, reader: reader}
}

// CompletePurchase handles POST /completePurchase.
// The body is {"purchaseItems":[{"id","quantity","price"}]}; the reply
// carries the new transaction id as customerNumber.
func (h *SalesHandler) CompletePurchase(c *gin.Context) {
	var req dto.CompletePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	txID, err := h.purchases.RecordPurchase(c.Request.Context(), req.ToLineItemInputs())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.CompletePurchaseResponse{
		Status:         dto.StatusSuccess,
		CustomerNumber: txID.String(),
	})
}

// RecentSales handles GET /recent-sales
func (h *SalesHandler) RecentSales(c *gin.Context) {
	var q dto.RecentSalesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return
	}

	summaries, err := h.reader.ListRecentTransactions(c.Request.Context(), q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summaries)
}

// SalesDetails handles GET /sales-details/:transactionId.
// An unknown id answers 200 with an empty list.
func (h *SalesHandler) SalesDetails(c *gin.Context) {
	lines, err := h.reader.GetTransactionDetail(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}
