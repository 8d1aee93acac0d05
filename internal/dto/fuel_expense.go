package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// CreateFuelExpenseRequest defines the data for one fuel-ledger entry.
type CreateFuelExpenseRequest struct {
	Date    time.Time       `json:"date" binding:"required"`
	Liters  decimal.Decimal `json:"liters"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Station string          `json:"station"`
	Notes   string          `json:"notes"`
}

// FuelExpenseResponse mirrors domain.FuelExpense.
type FuelExpenseResponse struct {
	FuelExpenseID string          `json:"fuelExpenseID"`
	Date          string          `json:"date"`
	Liters        decimal.Decimal `json:"liters"`
	Amount        decimal.Decimal `json:"amount"`
	Station       string          `json:"station,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToFuelExpenseResponse converts a domain.FuelExpense to its DTO.
func ToFuelExpenseResponse(f *domain.FuelExpense) FuelExpenseResponse {
	return FuelExpenseResponse{
		FuelExpenseID: f.FuelExpenseID,
		Date:          f.Date.Format(dateLayout),
		Liters:        f.Liters,
		Amount:        f.Amount,
		Station:       f.Station,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
	}
}

// ToListFuelExpenseResponse converts a slice of domain.FuelExpense to DTOs.
func ToListFuelExpenseResponse(fuels []domain.FuelExpense) []FuelExpenseResponse {
	res := make([]FuelExpenseResponse, len(fuels))
	for i := range fuels {
		res[i] = ToFuelExpenseResponse(&fuels[i])
	}
	return res
}

// ListFuelExpensesResponse wraps the list of fuel-ledger entries.
type ListFuelExpensesResponse struct {
	FuelExpenses []FuelExpenseResponse `json:"fuelExpenses"`
}
