//go:generate mockery --name AchievementRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"skillscape/internal/middleware"
	"skillscape/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	Create(ctx context.Context, tx *gorm.DB, achievement *model.Achievement) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Achievement, error)
	FindByUserAndSkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) ([]*model.Achievement, error)
}

type gormAchievementRepository struct{}

func NewGormAchievementRepository() AchievementRepository {
	return &gormAchievementRepository{}
}

func (r *gormAchievementRepository) Create(ctx context.Context, tx *gorm.DB, achievement *model.Achievement) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(achievement)
	if result.Error != nil {
		logger.Error("Error creating achievement in DB",
			"error", result.Error,
			"user_id", achievement.UserID.String(),
			"skill_id", achievement.SkillID.String(),
		)
		return fmt.Errorf("gormAchievementRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAchievementRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Achievement, error) {
	logger := middleware.GetLogger(ctx)
	var achievements []*model.Achievement
	result := db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&achievements)
	if result.Error != nil {
		logger.Error("Error finding achievements in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormAchievementRepository.FindByUser: %w", result.Error)
	}
	return achievements, nil
}

func (r *gormAchievementRepository) FindByUserAndSkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) ([]*model.Achievement, error) {
	logger := middleware.GetLogger(ctx)
	var achievements []*model.Achievement
	result := db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Order("level_reached DESC").
		Find(&achievements)
	if result.Error != nil {
		logger.Error("Error finding achievements for skill in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"skill_id", skillID.String(),
		)
		return nil, fmt.Errorf("gormAchievementRepository.FindByUserAndSkill: %w", result.Error)
	}
	return achievements, nil
}
