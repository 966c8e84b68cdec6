//go:generate mockery --name UserSkillRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"skillscape/internal/middleware"
	"skillscape/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UserSkillTotals はダッシュボード用の集計値
type UserSkillTotals struct {
	TotalLevel    int64
	TotalXP       int64
	SkillsTracked int64
}

type UserSkillRepository interface {
	Create(ctx context.Context, tx *gorm.DB, userSkill *model.UserSkill) error
	FindByUserAndSkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkill, error)
	FindByID(ctx context.Context, db *gorm.DB, userSkillID uuid.UUID) (*model.UserSkill, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserSkill, error)
	FindTopByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.UserSkill, error)
	Update(ctx context.Context, tx *gorm.DB, userSkill *model.UserSkill) error
	Delete(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) error
	Totals(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*UserSkillTotals, error)
}

type gormUserSkillRepository struct{}

func NewGormUserSkillRepository() UserSkillRepository {
	return &gormUserSkillRepository{}
}

func (r *gormUserSkillRepository) Create(ctx context.Context, tx *gorm.DB, userSkill *model.UserSkill) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(userSkill)
	if result.Error != nil {
		// 複合ユニーク制約 (user_id, skill_id) 違反はErrConflictに変換し、
		// 呼び出し元の get-or-create で既存レコードの再取得に回す
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating user skill in DB",
			"error", result.Error,
			"user_id", userSkill.UserID.String(),
			"skill_id", userSkill.SkillID.String(),
		)
		return fmt.Errorf("gormUserSkillRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserSkillRepository) FindByUserAndSkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkill, error) {
	logger := middleware.GetLogger(ctx)
	var userSkill model.UserSkill
	result := db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&userSkill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user skill in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"skill_id", skillID.String(),
		)
		return nil, fmt.Errorf("gormUserSkillRepository.FindByUserAndSkill: %w", result.Error)
	}
	return &userSkill, nil
}

func (r *gormUserSkillRepository) FindByID(ctx context.Context, db *gorm.DB, userSkillID uuid.UUID) (*model.UserSkill, error) {
	logger := middleware.GetLogger(ctx)
	var userSkill model.UserSkill
	result := db.WithContext(ctx).Preload("Skill").Where("user_skill_id = ?", userSkillID).First(&userSkill)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user skill by ID in DB", "error", result.Error, "user_skill_id", userSkillID.String())
		return nil, fmt.Errorf("gormUserSkillRepository.FindByID: %w", result.Error)
	}
	return &userSkill, nil
}

func (r *gormUserSkillRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.UserSkill, error) {
	logger := middleware.GetLogger(ctx)
	var userSkills []*model.UserSkill
	result := db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("level DESC, experience DESC").
		Find(&userSkills)
	if result.Error != nil {
		logger.Error("Error finding user skills in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserSkillRepository.FindByUser: %w", result.Error)
	}
	return userSkills, nil
}

func (r *gormUserSkillRepository) FindTopByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.UserSkill, error) {
	logger := middleware.GetLogger(ctx)
	var userSkills []*model.UserSkill
	result := db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("level DESC, experience DESC").
		Limit(limit).
		Find(&userSkills)
	if result.Error != nil {
		logger.Error("Error finding top user skills in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserSkillRepository.FindTopByUser: %w", result.Error)
	}
	return userSkills, nil
}

func (r *gormUserSkillRepository) Update(ctx context.Context, tx *gorm.DB, userSkill *model.UserSkill) error {
	logger := middleware.GetLogger(ctx)
	// Saveは主キーに基づくUpdate。存在確認は呼び出し元(Service)が行う前提。
	result := tx.WithContext(ctx).Save(userSkill)
	if result.Error != nil {
		logger.Error("Error updating user skill in DB",
			"error", result.Error,
			"user_skill_id", userSkill.UserSkillID.String(),
		)
		return fmt.Errorf("gormUserSkillRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormUserSkillRepository) Delete(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_skill_id = ?", userSkillID).Delete(&model.UserSkill{})
	if result.Error != nil {
		logger.Error("Error deleting user skill in DB", "error", result.Error, "user_skill_id", userSkillID.String())
		return fmt.Errorf("gormUserSkillRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserSkillRepository) Totals(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*UserSkillTotals, error) {
	logger := middleware.GetLogger(ctx)
	var totals UserSkillTotals
	result := db.WithContext(ctx).
		Model(&model.UserSkill{}).
		Select("COALESCE(SUM(level), 0) AS total_level, COALESCE(SUM(experience), 0) AS total_xp, COUNT(*) AS skills_tracked").
		Where("user_id = ?", userID).
		Scan(&totals)
	if result.Error != nil {
		logger.Error("Error aggregating user skill totals in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserSkillRepository.Totals: %w", result.Error)
	}
	return &totals, nil
}
