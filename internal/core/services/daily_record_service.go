package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
)

// dailyRecordService implements the DailyRecordSvcFacade interface.
type dailyRecordService struct {
	BaseService
	recordRepo portsrepo.DailyRecordRepository
}

// NewDailyRecordService creates the daily shift record service.
func NewDailyRecordService(repo portsrepo.DailyRecordRepository) portssvc.DailyRecordSvcFacade {
	return &dailyRecordService{recordRepo: repo}
}

var _ portssvc.DailyRecordSvcFacade = (*dailyRecordService)(nil)

func (s *dailyRecordService) CreateDailyRecord(ctx context.Context, req dto.CreateDailyRecordRequest, userID string) (*domain.DailyRecord, error) {
	for name, v := range map[string]decimal.Decimal{
		"kilometers":     req.Kilometers,
		"cash income":    req.CashIncome,
		"card income":    req.CardIncome,
		"invoice income": req.InvoiceIncome,
		"fuel expense":   req.FuelExpense,
		"other expenses": req.OtherExpenses,
	} {
		if v.IsNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, name)
		}
	}

	now := time.Now()
	record := domain.DailyRecord{
		RecordID:      uuid.NewString(),
		DriverID:      req.DriverID,
		Date:          req.Date,
		Kilometers:    req.Kilometers,
		CashIncome:    req.CashIncome,
		CardIncome:    req.CardIncome,
		InvoiceIncome: req.InvoiceIncome,
		FuelExpense:   req.FuelExpense,
		OtherExpenses: req.OtherExpenses,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.recordRepo.SaveDailyRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save daily record", slog.String("record_id", record.RecordID))
		return nil, err
	}

	s.LogInfo(ctx, "Daily record created", slog.String("record_id", record.RecordID), slog.String("driver_id", record.DriverID))
	return &record, nil
}

func (s *dailyRecordService) GetDailyRecordByID(ctx context.Context, recordID string) (*domain.DailyRecord, error) {
	record, err := s.recordRepo.FindDailyRecordByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find daily record", slog.String("record_id", recordID))
		}
		return nil, err
	}
	return record, nil
}

func (s *dailyRecordService) ListDailyRecords(ctx context.Context, from, to time.Time) ([]domain.DailyRecord, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	records, err := s.recordRepo.ListDailyRecords(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily records")
		return nil, fmt.Errorf("failed to list daily records: %w", err)
	}
	return records, nil
}

func (s *dailyRecordService) UpdateDailyRecord(ctx context.Context, recordID string, req dto.UpdateDailyRecordRequest, userID string) (*domain.DailyRecord, error) {
	record, err := s.recordRepo.FindDailyRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	for name, v := range map[string]*decimal.Decimal{
		"kilometers":     req.Kilometers,
		"cash income":    req.CashIncome,
		"card income":    req.CardIncome,
		"invoice income": req.InvoiceIncome,
		"fuel expense":   req.FuelExpense,
		"other expenses": req.OtherExpenses,
	} {
		if v != nil && v.IsNegative() {
			return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, name)
		}
	}

	if req.Kilometers != nil {
		record.Kilometers = *req.Kilometers
	}
	if req.CashIncome != nil {
		record.CashIncome = *req.CashIncome
	}
	if req.CardIncome != nil {
		record.CardIncome = *req.CardIncome
	}
	if req.InvoiceIncome != nil {
		record.InvoiceIncome = *req.InvoiceIncome
	}
	if req.FuelExpense != nil {
		record.FuelExpense = *req.FuelExpense
	}
	if req.OtherExpenses != nil {
		record.OtherExpenses = *req.OtherExpenses
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = userID

	if err := s.recordRepo.UpdateDailyRecord(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update daily record", slog.String("record_id", recordID))
		return nil, err
	}

	s.LogInfo(ctx, "Daily record updated", slog.String("record_id", recordID))
	return record, nil
}

func (s *dailyRecordService) DeleteDailyRecord(ctx context.Context, recordID string) error {
	if err := s.recordRepo.DeleteDailyRecord(ctx, recordID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete daily record", slog.String("record_id", recordID))
		}
		return err
	}
	s.LogInfo(ctx, "Daily record deleted", slog.String("record_id", recordID))
	return nil
}
