package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
	"github.com/Raular78/taxi-cash-register-sub000/internal/middleware"
)

// fuelExpenseHandler handles HTTP requests for the fuel ledger.
type fuelExpenseHandler struct {
	fuelService portssvc.FuelExpenseSvcFacade
}

// newFuelExpenseHandler creates a new fuelExpenseHandler.
func newFuelExpenseHandler(fs portssvc.FuelExpenseSvcFacade) *fuelExpenseHandler {
	return &fuelExpenseHandler{
		fuelService: fs,
	}
}

// registerFuelExpenseRoutes registers routes related to fuel expenses.
func registerFuelExpenseRoutes(rg *gin.RouterGroup, fuelService portssvc.FuelExpenseSvcFacade) {
	h := newFuelExpenseHandler(fuelService)

	fuels := rg.Group("/fuel-expenses")
	{
		fuels.POST("", h.createFuelExpense)
		fuels.GET("", h.listFuelExpenses)
		fuels.GET("/:id", h.getFuelExpenseByID)
		fuels.DELETE("/:id", h.deleteFuelExpense)
	}
}

// createFuelExpense godoc
// @Summary Create a fuel expense
// @Description Adds an entry to the dedicated fuel-purchase ledger
// @Tags fuel-expenses
// @Accept  json
// @Produce  json
// @Param   fuel body dto.CreateFuelExpenseRequest true "Fuel purchase details"
// @Success 201 {object} dto.FuelExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create fuel expense"
// @Security BearerAuth
// @Router /fuel-expenses [post]
func (h *fuelExpenseHandler) createFuelExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFuelExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFuelExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fuel, err := h.fuelService.CreateFuelExpense(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create fuel expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fuel expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFuelExpenseResponse(fuel))
}

// listFuelExpenses godoc
// @Summary List fuel expenses
// @Description Retrieves fuel ledger entries within a date range
// @Tags fuel-expenses
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListFuelExpensesResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to list fuel expenses"
// @Security BearerAuth
// @Router /fuel-expenses [get]
func (h *fuelExpenseHandler) listFuelExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
		return
	}

	fuels, err := h.fuelService.ListFuelExpenses(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list fuel expenses", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fuel expenses"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListFuelExpensesResponse{FuelExpenses: dto.ToListFuelExpenseResponse(fuels)})
}

// getFuelExpenseByID godoc
// @Summary Get a fuel expense by ID
// @Tags fuel-expenses
// @Produce  json
// @Param   id path string true "Fuel expense ID"
// @Success 200 {object} dto.FuelExpenseResponse
// @Failure 404 {object} map[string]string "Fuel expense not found"
// @Failure 500 {object} map[string]string "Failed to retrieve fuel expense"
// @Security BearerAuth
// @Router /fuel-expenses/{id} [get]
func (h *fuelExpenseHandler) getFuelExpenseByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fuelExpenseID := c.Param("id")

	fuel, err := h.fuelService.GetFuelExpenseByID(c.Request.Context(), fuelExpenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fuel expense not found"})
		} else {
			logger.Error("Failed to get fuel expense", slog.String("fuel_expense_id", fuelExpenseID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fuel expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFuelExpenseResponse(fuel))
}

// deleteFuelExpense godoc
// @Summary Delete a fuel expense
// @Tags fuel-expenses
// @Produce  json
// @Param   id path string true "Fuel expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Fuel expense not found"
// @Failure 500 {object} map[string]string "Failed to delete fuel expense"
// @Security BearerAuth
// @Router /fuel-expenses/{id} [delete]
func (h *fuelExpenseHandler) deleteFuelExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fuelExpenseID := c.Param("id")

	if err := h.fuelService.DeleteFuelExpense(c.Request.Context(), fuelExpenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fuel expense not found"})
		} else {
			logger.Error("Failed to delete fuel expense", slog.String("fuel_expense_id", fuelExpenseID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fuel expense"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
