package services

import (
	"context"
	"fmt"
	"time"

	"fitcircle/internal/models"
	"fitcircle/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxDelta          = 1_000_000
	maxHistoryDays    = 93
	maxWeightKg       = 500
	defaultWeightLogs = 7
	maxWeightLogs     = 100
)

// ProgressService owns the per-day counters and the weight log.
type ProgressService struct {
	progressRepo repository.DailyProgressRepository
	weightRepo   repository.WeightLogRepository
	logger       *zap.Logger
}

func NewProgressService(progressRepo repository.DailyProgressRepository, weightRepo repository.WeightLogRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		weightRepo:   weightRepo,
		logger:       logger,
	}
}

// ApplyDelta adds delta to one counter of the user's row for date and returns
// the new total of that counter.
func (s *ProgressService) ApplyDelta(ctx context.Context, userID uuid.UUID, date time.Time, field models.ProgressField, delta int) (int, error) {
	if !field.Valid() {
		return 0, validationError(fmt.Sprintf("unknown progress field %q", field))
	}
	if delta < 0 {
		return 0, validationError("amount must not be negative")
	}
	if delta > maxDelta {
		return 0, validationError("amount is too large")
	}

	progress, err := s.progressRepo.Increment(ctx, userID, date, field, delta)
	if err != nil {
		s.logger.Error("progress increment failed",
			zap.String("user_id", userID.String()),
			zap.String("field", string(field)),
			zap.Error(err))
		return 0, storeFailure("failed to log progress", err)
	}

	total := progress.Value(field)
	s.logger.Debug("progress updated",
		zap.String("user_id", userID.String()),
		zap.String("field", string(field)),
		zap.Int("delta", delta),
		zap.Int("total", total))
	return total, nil
}

// GetDaily returns the user's row for date, or an all-zero row when none exists.
func (s *ProgressService) GetDaily(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyProgress, error) {
	progress, err := s.progressRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if repository.IsNotFound(err) {
			return &models.DailyProgress{UserID: userID, Date: date}, nil
		}
		return nil, storeFailure("failed to load progress", err)
	}
	return progress, nil
}

func (s *ProgressService) History(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.DailyProgress, error) {
	if to.Before(from) {
		return nil, validationError("'to' must not be before 'from'")
	}
	if to.Sub(from) > maxHistoryDays*24*time.Hour {
		return nil, validationError(fmt.Sprintf("history range is limited to %d days", maxHistoryDays))
	}

	rows, err := s.progressRepo.FindByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, storeFailure("failed to load progress history", err)
	}
	return rows, nil
}

// LogWeight always appends a new entry and overwrites the profile's current weight.
func (s *ProgressService) LogWeight(ctx context.Context, userID uuid.UUID, weightKg float64, notes *string, now time.Time) (*models.WeightLog, error) {
	if weightKg <= 0 || weightKg > maxWeightKg {
		return nil, validationError(fmt.Sprintf("weight must be between 0 and %d kg", maxWeightKg))
	}

	entry := &models.WeightLog{
		UserID:   userID,
		WeightKg: weightKg,
		LoggedAt: now,
		Notes:    notes,
	}
	if err := s.weightRepo.CreateAndMirror(ctx, entry); err != nil {
		s.logger.Error("weight log failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, storeFailure("failed to log weight", err)
	}
	return entry, nil
}

func (s *ProgressService) RecentWeights(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightLog, error) {
	if limit <= 0 {
		limit = defaultWeightLogs
	}
	if limit > maxWeightLogs {
		limit = maxWeightLogs
	}

	logs, err := s.weightRepo.FindRecentByUserID(ctx, userID, limit)
	if err != nil {
		return nil, storeFailure("failed to load weight history", err)
	}
	return logs, nil
}
