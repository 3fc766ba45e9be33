package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

// ListStations handles the GET /api/stations request.
func (h *Handler) ListStations(c *gin.Context) {
	stations, err := h.store.ListStations(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stations)
}

type upsertStationRequest struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name" binding:"required"`
	EmployeeNames []string `json:"employeeNames" binding:"required"`
}

// UpsertStation handles the POST /api/stations request. The employee name
// list is positional: retained positions keep their box counts, new ones
// start at zero.
func (h *Handler) UpsertStation(c *gin.Context) {
	var req upsertStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station, err := h.store.UpsertStation(c.Request.Context(), store.StationInput{
		ID:            req.ID,
		Name:          req.Name,
		EmployeeNames: req.EmployeeNames,
	})
	if err != nil {
		abortStoreError(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, station)
}

// DeleteStation handles the DELETE /api/stations/{id} request.
func (h *Handler) DeleteStation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid station ID"})
		return
	}
	if err := h.store.DeleteStation(c.Request.Context(), id); err != nil {
		abortStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
