package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/view"
)

// ListProductTypes handles the GET /api/products request.
func (h *Handler) ListProductTypes(c *gin.Context) {
	types, err := h.store.ListProductTypes(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

type createProductTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateProductType handles the POST /api/products request.
func (h *Handler) CreateProductType(c *gin.Context) {
	var req createProductTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.CreateProductType(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteProductType handles the DELETE /api/products/{name} request. The
// in-use check runs against the machine list as it is now, not as it was
// when the products page rendered.
func (h *Handler) DeleteProductType(c *gin.Context) {
	if err := h.store.DeleteProductType(c.Request.Context(), c.Param("name")); err != nil {
		abortStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProductNames handles the GET /api/products/names request: the sorted
// union of product-type names and names machines reference, used to fill
// the product dropdown.
func (h *Handler) ListProductNames(c *gin.Context) {
	types, err := h.store.ListProductTypes(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	machines, err := h.store.ListMachines(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.CombinedProductNames(types, machines))
}

// ProductOverview handles the GET /api/products/overview request.
func (h *Handler) ProductOverview(c *gin.Context) {
	types, err := h.store.ListProductTypes(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	machines, err := h.store.ListMachines(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ProductOverview(types, machines))
}
