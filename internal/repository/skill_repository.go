//go:generate mockery --name SkillRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"skillscape/internal/middleware"
	"skillscape/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillRepository はスキルカタログへの読み取りアクセスを提供します。
// スキルはシードで投入される管理データなので書き込み系は持たない。
type SkillRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (*model.Skill, error)
	FindActive(ctx context.Context, db *gorm.DB) ([]*model.Skill, error)
}

type gormSkillRepository struct{}

func NewGormSkillRepository() SkillRepository {
	return &gormSkillRepository{}
}

func (r *gormSkillRepository) FindByID(ctx context.Context, db *gorm.DB, skillID uuid.UUID) (*model.Skill, error) {
	logger := middleware.GetLogger(ctx)
	var skill model.Skill
	result := db.WithContext(ctx).Where("skill_id = ?", skillID).First(&skill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding skill by ID in DB", "error", result.Error, "skill_id", skillID.String())
		return nil, fmt.Errorf("gormSkillRepository.FindByID: %w", result.Error)
	}
	return &skill, nil
}

func (r *gormSkillRepository) FindActive(ctx context.Context, db *gorm.DB) ([]*model.Skill, error) {
	logger := middleware.GetLogger(ctx)
	var skills []*model.Skill
	result := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, name ASC").
		Find(&skills)
	if result.Error != nil {
		logger.Error("Error finding active skills in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSkillRepository.FindActive: %w", result.Error)
	}
	return skills, nil
}
