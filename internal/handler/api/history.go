package api

import (
	"net/http"
	"strconv"

	"neko-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyQueries queries.HistoryQueries
}

func NewHistoryHandler(historyQueries queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{historyQueries: historyQueries}
}

// @Summary Booking history
// @Description Recent audit entries, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} queries.HistoryEntryView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /history [get]
func (h *HistoryHandler) RecentEntries(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	views, err := h.historyQueries.RecentEntries(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
