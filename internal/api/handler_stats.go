package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/stats"
)

// Statistics handles the GET /api/statistics?period= request. Series are
// built for the products machines currently reference; period defaults to
// daily.
func (h *Handler) Statistics(c *gin.Context) {
	period := stats.Period(c.DefaultQuery("period", string(stats.PeriodDaily)))

	machines, err := h.store.ListMachines(c.Request.Context())
	if err != nil {
		abortStoreError(c, err)
		return
	}

	seen := make(map[string]struct{})
	products := []string{}
	for _, m := range machines {
		if _, ok := seen[m.Product]; !ok {
			seen[m.Product] = struct{}{}
			products = append(products, m.Product)
		}
	}

	report, err := h.stats.Build(products, period)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
