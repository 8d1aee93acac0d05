package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
	"github.com/Raular78/taxi-cash-register-sub000/internal/middleware"
)

// getUnifiedExpenses godoc
// @Summary Get the unified expense aggregation
// @Description Merges fixed ledger rows, daily-record operational spend and variable expenses into category buckets for a date range
// @Tags expenses
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.UnifiedExpensesResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to aggregate expenses"
// @Security BearerAuth
// @Router /expenses/unified [get]
func (h *expenseHandler) getUnifiedExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to query parameters are required"})
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		return
	}

	report, err := h.aggregatorService.UnifiedExpenses(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to aggregate unified expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUnifiedExpensesResponse(report))
}
