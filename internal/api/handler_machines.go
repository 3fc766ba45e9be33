package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/view"
)

// ListMachines handles the GET /api/machines request.
func (h *Handler) ListMachines(c *gin.Context) {
	machines, err := h.store.ListMachines(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, machines)
}

type upsertMachineRequest struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" binding:"required"`
	Product    string `json:"product"`
	NewProduct string `json:"newProduct"`
}

// UpsertMachine handles the POST /api/machines request. An id of zero
// creates a machine; a non-zero id updates that machine's name and product.
func (h *Handler) UpsertMachine(c *gin.Context) {
	var req upsertMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	machine, err := h.store.UpsertMachine(c.Request.Context(), store.MachineInput{
		ID:         req.ID,
		Name:       req.Name,
		Product:    req.Product,
		NewProduct: req.NewProduct,
	})
	if err != nil {
		abortStoreError(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, machine)
}

// DeleteMachine handles the DELETE /api/machines/{id} request.
func (h *Handler) DeleteMachine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}
	if err := h.store.DeleteMachine(c.Request.Context(), id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProductTotals handles the GET /api/totals request.
func (h *Handler) ProductTotals(c *gin.Context) {
	machines, err := h.store.ListMachines(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ProductTotals(machines))
}
