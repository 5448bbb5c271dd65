package dto

import (
	salesapp "github.com/odiedo/PesaTrackAdmin/internal/application/sales"
	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared/valueobject"
)

// CompletePurchaseRequest is the till's checkout payload.
// Item rules are enforced by the sales domain so that an invalid cart
// gets a message naming the offending line by its 1-based position.
type CompletePurchaseRequest struct {
	PurchaseItems []PurchaseItemRequest `json:"purchaseItems"`
}

// PurchaseItemRequest is one cart line. Price may be a JSON number or a
// string such as "Kshs. 120".
type PurchaseItemRequest struct {
	ID       int64               `json:"id"`
	Quantity int                 `json:"quantity"`
	Price    *valueobject.Amount `json:"price"`
}

// ToLineItemInputs converts the request to service input
func (r CompletePurchaseRequest) ToLineItemInputs() []salesapp.LineItemInput {
	out := make([]salesapp.LineItemInput, len(r.PurchaseItems))
	for i, item := range r.PurchaseItems {
		out[i] = salesapp.LineItemInput{ItemID: item.ID, Quantity: item.Quantity}
		if item.Price != nil {
			d := item.Price.Decimal()
			out[i].UnitPrice = &d
		}
	}
	return out
}

// CompletePurchaseResponse acknowledges a recorded purchase
type CompletePurchaseResponse struct {
	Status         string `json:"status"`
	CustomerNumber string `json:"customerNumber"`
}

// RecentSalesQuery holds the recent sales listing parameters.
// A missing or zero limit means the configured default.
type RecentSalesQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
