package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// CreateDailyRecordRequest defines the data for logging one driver shift.
type CreateDailyRecordRequest struct {
	DriverID      string          `json:"driverID" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Kilometers    decimal.Decimal `json:"kilometers"`
	CashIncome    decimal.Decimal `json:"cashIncome"`
	CardIncome    decimal.Decimal `json:"cardIncome"`
	InvoiceIncome decimal.Decimal `json:"invoiceIncome"`
	FuelExpense   decimal.Decimal `json:"fuelExpense"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	Notes         string          `json:"notes"`
}

// UpdateDailyRecordRequest defines the data allowed for updating a shift record.
type UpdateDailyRecordRequest struct {
	Kilometers    *decimal.Decimal `json:"kilometers"`
	CashIncome    *decimal.Decimal `json:"cashIncome"`
	CardIncome    *decimal.Decimal `json:"cardIncome"`
	InvoiceIncome *decimal.Decimal `json:"invoiceIncome"`
	FuelExpense   *decimal.Decimal `json:"fuelExpense"`
	OtherExpenses *decimal.Decimal `json:"otherExpenses"`
	Notes         *string          `json:"notes"`
}

// DailyRecordResponse mirrors domain.DailyRecord.
type DailyRecordResponse struct {
	RecordID      string          `json:"recordID"`
	DriverID      string          `json:"driverID"`
	Date          string          `json:"date"`
	Kilometers    decimal.Decimal `json:"kilometers"`
	CashIncome    decimal.Decimal `json:"cashIncome"`
	CardIncome    decimal.Decimal `json:"cardIncome"`
	InvoiceIncome decimal.Decimal `json:"invoiceIncome"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	FuelExpense   decimal.Decimal `json:"fuelExpense"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToDailyRecordResponse converts a domain.DailyRecord to its DTO.
func ToDailyRecordResponse(r *domain.DailyRecord) DailyRecordResponse {
	return DailyRecordResponse{
		RecordID:      r.RecordID,
		DriverID:      r.DriverID,
		Date:          r.Date.Format(dateLayout),
		Kilometers:    r.Kilometers,
		CashIncome:    r.CashIncome,
		CardIncome:    r.CardIncome,
		InvoiceIncome: r.InvoiceIncome,
		TotalIncome:   r.TotalIncome(),
		FuelExpense:   r.FuelExpense,
		OtherExpenses: r.OtherExpenses,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// ToListDailyRecordResponse converts a slice of domain.DailyRecord to DTOs.
func ToListDailyRecordResponse(records []domain.DailyRecord) []DailyRecordResponse {
	res := make([]DailyRecordResponse, len(records))
	for i := range records {
		res[i] = ToDailyRecordResponse(&records[i])
	}
	return res
}

// ListDailyRecordsResponse wraps the list of shift records.
type ListDailyRecordsResponse struct {
	Records []DailyRecordResponse `json:"records"`
}
