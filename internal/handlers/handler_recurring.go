package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
	"github.com/Raular78/taxi-cash-register-sub000/internal/middleware"
)

// recurringHandler handles HTTP requests for the recurring-expense generator.
type recurringHandler struct {
	recurringService portssvc.RecurringExpenseSvc
}

// newRecurringHandler creates a new recurringHandler.
func newRecurringHandler(rs portssvc.RecurringExpenseSvc) *recurringHandler {
	return &recurringHandler{
		recurringService: rs,
	}
}

// registerRecurringRoutes registers routes for the recurring-expense generator.
func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringExpenseSvc, generateLimiter *limiter.Limiter) {
	h := newRecurringHandler(recurringService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("/generate-recurring", middleware.RateLimit(generateLimiter), h.generateRecurring)
		expenses.GET("/pending-recurring", h.pendingRecurring)
	}
}

// generateRecurring godoc
// @Summary Generate due recurring expenses
// @Description Materializes every recurring template whose next due date falls within the look-ahead window and advances each template
// @Tags recurring
// @Produce  json
// @Success 200 {object} dto.GenerateRecurringResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate recurring expenses"
// @Security BearerAuth
// @Router /expenses/generate-recurring [post]
func (h *recurringHandler) generateRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.recurringService.GenerateDueExpenses(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to generate recurring expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recurring expenses"})
		return
	}

	logger.Info("Recurring generation run completed", slog.Int("generated", len(result.Generated)))
	c.JSON(http.StatusOK, dto.ToGenerateRecurringResponse(result))
}

// pendingRecurring godoc
// @Summary List pending recurring templates
// @Description Returns the templates that would be materialized by the next generation run, without generating anything
// @Tags recurring
// @Produce  json
// @Success 200 {object} dto.PendingRecurringResponse
// @Failure 500 {object} map[string]string "Failed to list pending templates"
// @Security BearerAuth
// @Router /expenses/pending-recurring [get]
func (h *recurringHandler) pendingRecurring(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	templates, err := h.recurringService.ListPendingTemplates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list pending templates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPendingRecurringResponse(templates))
}
