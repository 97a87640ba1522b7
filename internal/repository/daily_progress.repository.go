package repository

import (
	"context"
	"fmt"
	"time"

	"fitcircle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyProgressRepository interface {
	Increment(ctx context.Context, userID uuid.UUID, date time.Time, field models.ProgressField, delta int) (*models.DailyProgress, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyProgress, error)
	FindByUsersAndDate(ctx context.Context, userIDs []uuid.UUID, date time.Time) ([]models.DailyProgress, error)
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.DailyProgress, error)
}

type dailyProgressRepository struct {
	db *gorm.DB
}

func NewDailyProgressRepository(db *gorm.DB) DailyProgressRepository {
	return &dailyProgressRepository{db}
}

// Increment adds delta to one counter of the (user, date) row in a single
// statement, creating the row when absent. The store does the addition, so
// concurrent increments do not overwrite each other.
func (r *dailyProgressRepository) Increment(ctx context.Context, userID uuid.UUID, date time.Time, field models.ProgressField, delta int) (*models.DailyProgress, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("unknown progress field %q", field)
	}

	return incrementTx(r.db.WithContext(ctx), userID, date, field, delta)
}

func incrementTx(db *gorm.DB, userID uuid.UUID, date time.Time, field models.ProgressField, delta int) (*models.DailyProgress, error) {
	now := db.NowFunc()
	progress := &models.DailyProgress{
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	progress.Set(field, delta)

	if err := db.Clauses(incrementClauses(field, delta, now)...).Create(progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// incrementClauses renders
// ON CONFLICT (user_id, date) DO UPDATE SET col = daily_progress.col + delta RETURNING *.
func incrementClauses(field models.ProgressField, delta int, now time.Time) []clause.Expression {
	column := string(field)
	return []clause.Expression{
		clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				column:       gorm.Expr("? + ?", clause.Column{Table: models.DailyProgress{}.TableName(), Name: column}, delta),
				"updated_at": now,
			}),
		},
		clause.Returning{},
	}
}

func (r *dailyProgressRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyProgress, error) {
	var progress models.DailyProgress
	err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *dailyProgressRepository) FindByUsersAndDate(ctx context.Context, userIDs []uuid.UUID, date time.Time) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	if len(userIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).Where("user_id IN ? AND date = ?", userIDs, date).Find(&rows).Error
	return rows, err
}

func (r *dailyProgressRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}
