package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/odiedo/PesaTrackAdmin/internal/application/catalog"
	"github.com/odiedo/PesaTrackAdmin/internal/interfaces/http/dto"
)

// ProductManager maintains the catalog and its offline snapshot
type ProductManager interface {
	ListProducts(ctx context.Context) ([]catalogapp.ProductResponse, error)
	CreateProduct(ctx context.Context, req catalogapp.ProductRequest) (*catalogapp.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req catalogapp.ProductRequest) (*catalogapp.ProductResponse, error)
	SyncSnapshot(ctx context.Context) (int, error)
	GetSnapshot(ctx context.Context) (json.RawMessage, error)
}

// ProductHandler handles product-related endpoints
type ProductHandler struct {
	BaseHandler
	products ProductManager
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products ProductManager) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ProductListResponse{Products: products})
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ProductEnvelope{Status: dto.StatusSuccess, Product: *product})
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var uri dto.ProductIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BindError(c, err)
		return
	}

	var req catalogapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), uri.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ProductEnvelope{Status: dto.StatusSuccess, Product: *product})
}

// Snapshot handles GET /products-json, serving the last synced export verbatim
func (h *ProductHandler) Snapshot(c *gin.Context) {
	data, err := h.products.GetSnapshot(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Sync handles POST /sync-products
func (h *ProductHandler) Sync(c *gin.Context) {
	count, err := h.products.SyncSnapshot(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.SyncProductsResponse{Status: dto.StatusSuccess, Count: count})
}
