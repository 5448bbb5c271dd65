package sales

import (
	"github.com/odiedo/PesaTrackAdmin/internal/domain/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LineItemInput is one cart entry as submitted by the till.
// A nil UnitPrice means the price was missing.
type LineItemInput struct {
	ItemID    int64
	Quantity  int
	UnitPrice *decimal.Decimal
}

// TransactionSummaryResponse is one row of the recent sales listing
type TransactionSummaryResponse struct {
	CustomerNumber string             `json:"customer_number"`
	TotalItems     int64              `json:"total_items"`
	TotalAmount    valueobject.Amount `json:"total_amount"`
}

// DetailLineResponse is one item of a transaction's detail
type DetailLineResponse struct {
	ItemID      int64              `json:"item_id"`
	Quantity    int                `json:"quantity"`
	Price       valueobject.Amount `json:"price"`
	ProductName string             `json:"product_name"`
}

// ToTransactionSummaryResponses converts domain summaries to responses
func ToTransactionSummaryResponses(summaries []sales.TransactionSummary) []TransactionSummaryResponse {
	out := make([]TransactionSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = TransactionSummaryResponse{
			CustomerNumber: s.TransactionID.String(),
			TotalItems:     s.ItemCount,
			TotalAmount:    valueobject.NewAmount(s.TotalAmount),
		}
	}
	return out
}

// ToDetailLineResponses converts domain detail lines to responses
func ToDetailLineResponses(lines []sales.DetailLine) []DetailLineResponse {
	out := make([]DetailLineResponse, len(lines))
	for i, l := range lines {
		out[i] = DetailLineResponse{
			ItemID:      l.ItemID,
			Quantity:    l.Quantity,
			Price:       valueobject.NewAmount(l.UnitPrice),
			ProductName: l.ProductName,
		}
	}
	return out
}
