package dto

import catalogapp "github.com/odiedo/PesaTrackAdmin/internal/application/catalog"

// ProductListResponse wraps the catalog listing
type ProductListResponse struct {
	Products []catalogapp.ProductResponse `json:"products"`
}

// ProductEnvelope wraps a single product write result
type ProductEnvelope struct {
	Status  string                     `json:"status"`
	Product catalogapp.ProductResponse `json:"product"`
}

// SyncProductsResponse reports a snapshot sync
type SyncProductsResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ProductIDRequest binds the product path parameter
type ProductIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
