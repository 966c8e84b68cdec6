//go:generate mockery --name TimeEntryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillscape/internal/middleware"
	"skillscape/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// TimeEntryClosedStats は終了済みエントリの集計値
type TimeEntryClosedStats struct {
	TotalMinutes  int64
	TotalSessions int64
}

type TimeEntryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.TimeEntry) error
	Update(ctx context.Context, tx *gorm.DB, entry *model.TimeEntry) error
	FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.TimeEntry, error)
	FindActiveByUserAndSkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*model.TimeEntry, error)
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.TimeEntry, error)
	FindRecentByUserSkill(ctx context.Context, db *gorm.DB, userSkillID uuid.UUID, limit int) ([]*model.TimeEntry, error)
	// SumClosedMinutesInRange は ended_at が [from, to) に入る終了済み
	// エントリの duration_minutes を合計します（日次上限チェック用）。
	SumClosedMinutesInRange(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID, from, to time.Time) (int64, error)
	ClosedStats(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*TimeEntryClosedStats, error)
	DeleteByUserSkill(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) error
}

type gormTimeEntryRepository struct{}

func NewGormTimeEntryRepository() TimeEntryRepository {
	return &gormTimeEntryRepository{}
}

func (r *gormTimeEntryRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.TimeEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		// 部分ユニークインデックス idx_time_entries_active 違反:
		// 同時リクエストが両方ともアクティブセッションを作ろうとした場合
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		logger.Error("Error creating time entry in DB",
			"error", result.Error,
			"user_id", entry.UserID.String(),
			"skill_id", entry.SkillID.String(),
		)
		return fmt.Errorf("gormTimeEntryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTimeEntryRepository) Update(ctx context.Context, tx *gorm.DB, entry *model.TimeEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(entry)
	if result.Error != nil {
		logger.Error("Error updating time entry in DB",
			"error", result.Error,
			"time_entry_id", entry.TimeEntryID.String(),
		)
		return fmt.Errorf("gormTimeEntryRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormTimeEntryRepository) FindActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.TimeEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.TimeEntry
	result := db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ? AND ended_at IS NULL", userID).
		Order("started_at DESC").
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active time entry in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormTimeEntryRepository.FindActiveByUser: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormTimeEntryRepository) FindActiveByUserAndSkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*model.TimeEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.TimeEntry
	result := db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ? AND ended_at IS NULL", userID, skillID).
		Order("started_at DESC").
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active time entry for skill in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"skill_id", skillID.String(),
		)
		return nil, fmt.Errorf("gormTimeEntryRepository.FindActiveByUserAndSkill: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormTimeEntryRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.TimeEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.TimeEntry
	result := db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding recent time entries in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormTimeEntryRepository.FindRecentByUser: %w", result.Error)
	}
	return entries, nil
}

func (r *gormTimeEntryRepository) FindRecentByUserSkill(ctx context.Context, db *gorm.DB, userSkillID uuid.UUID, limit int) ([]*model.TimeEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.TimeEntry
	result := db.WithContext(ctx).
		Where("user_skill_id = ?", userSkillID).
		Order("started_at DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding recent time entries for user skill in DB",
			"error", result.Error,
			"user_skill_id", userSkillID.String(),
		)
		return nil, fmt.Errorf("gormTimeEntryRepository.FindRecentByUserSkill: %w", result.Error)
	}
	return entries, nil
}

func (r *gormTimeEntryRepository) SumClosedMinutesInRange(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID, from, to time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var total int64
	result := db.WithContext(ctx).
		Model(&model.TimeEntry{}).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Where("user_id = ? AND skill_id = ? AND ended_at IS NOT NULL AND ended_at >= ? AND ended_at < ?",
			userID, skillID, from, to).
		Scan(&total)
	if result.Error != nil {
		logger.Error("Error summing daily minutes in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"skill_id", skillID.String(),
		)
		return 0, fmt.Errorf("gormTimeEntryRepository.SumClosedMinutesInRange: %w", result.Error)
	}
	return total, nil
}

func (r *gormTimeEntryRepository) ClosedStats(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*TimeEntryClosedStats, error) {
	logger := middleware.GetLogger(ctx)
	var stats TimeEntryClosedStats
	result := db.WithContext(ctx).
		Model(&model.TimeEntry{}).
		Select("COALESCE(SUM(duration_minutes), 0) AS total_minutes, COUNT(*) AS total_sessions").
		Where("user_id = ? AND skill_id = ? AND ended_at IS NOT NULL", userID, skillID).
		Scan(&stats)
	if result.Error != nil {
		logger.Error("Error aggregating closed time entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"skill_id", skillID.String(),
		)
		return nil, fmt.Errorf("gormTimeEntryRepository.ClosedStats: %w", result.Error)
	}
	return &stats, nil
}

func (r *gormTimeEntryRepository) DeleteByUserSkill(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_skill_id = ?", userSkillID).Delete(&model.TimeEntry{})
	if result.Error != nil {
		logger.Error("Error deleting time entries for user skill in DB",
			"error", result.Error,
			"user_skill_id", userSkillID.String(),
		)
		return fmt.Errorf("gormTimeEntryRepository.DeleteByUserSkill: %w", result.Error)
	}
	return nil
}
