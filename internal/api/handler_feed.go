package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type setCountRequest struct {
	Count *int `json:"count" binding:"required"`
}

// FeedSetMachineCount handles PUT /api/feed/machines/{id}/count, the count
// feed's write path for machine unit counts.
func (h *Handler) FeedSetMachineCount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid machine ID"})
		return
	}

	var req setCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	machine, err := h.feed.ApplyMachineCount(c.Request.Context(), id, *req.Count)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, machine)
}

type setBoxesRequest struct {
	Boxes *int `json:"boxes" binding:"required"`
}

// FeedSetEmployeeBoxes handles
// PUT /api/feed/stations/{id}/employees/{position}/boxes. Position is the
// 0-based index within the station's employee sequence.
func (h *Handler) FeedSetEmployeeBoxes(c *gin.Context) {
	stationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid station ID"})
		return
	}
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid employee position"})
		return
	}

	var req setBoxesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station, err := h.feed.ApplyEmployeeBoxes(c.Request.Context(), stationID, position, *req.Boxes)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, station)
}
