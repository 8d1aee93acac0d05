package services

import (
	"context"
	"time"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
)

// DailyRecordSvcFacade defines CRUD operations over driver shift records.
type DailyRecordSvcFacade interface {
	CreateDailyRecord(ctx context.Context, req dto.CreateDailyRecordRequest, userID string) (*domain.DailyRecord, error)
	GetDailyRecordByID(ctx context.Context, recordID string) (*domain.DailyRecord, error)
	ListDailyRecords(ctx context.Context, from, to time.Time) ([]domain.DailyRecord, error)
	UpdateDailyRecord(ctx context.Context, recordID string, req dto.UpdateDailyRecordRequest, userID string) (*domain.DailyRecord, error)
	DeleteDailyRecord(ctx context.Context, recordID string) error
}
