package database

import (
	"fmt"

	"fitcircle/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table owned by fitcircle, in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.Profile{},
		&models.DietaryPreferences{},
		&models.DailyProgress{},
		&models.WeightLog{},
		&models.WorkoutExercise{},
		&models.FamilyCircle{},
		&models.FamilyMember{},
		&models.WeeklyChallenge{},
		&models.Meal{},
	}
}

func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	if err := db.AutoMigrate(Models()...); err != nil {
		log.Error("migration failed", zap.Error(err))
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}
