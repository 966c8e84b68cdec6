//go:generate mockery --name FlashcardRepository --output ./mocks --outpkg mocks --case=underscore
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

type FlashcardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, flashcard *model.Flashcard) error
	FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error)
	FindByUserSkill(ctx context.Context, db *gorm.DB, userSkillID uuid.UUID) ([]*model.Flashcard, error)
	Update(ctx context.Context, tx *gorm.DB, flashcard *model.Flashcard) error
	Delete(ctx context.Context, tx *gorm.DB, flashcardID uuid.UUID) error
	DeleteByUserSkill(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) error
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) Create(ctx context.Context, tx *gorm.DB, flashcard *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(flashcard)
	if result.Error != nil {
		logger.Error("Error creating flashcard in DB",
			"error", result.Error,
			"user_skill_id", flashcard.UserSkillID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) FindByID(ctx context.Context, db *gorm.DB, flashcardID uuid.UUID) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var flashcard model.Flashcard
	result := db.WithContext(ctx).Where("flashcard_id = ?", flashcardID).First(&flashcard)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard by ID in DB", "error", result.Error, "flashcard_id", flashcardID.String())
		return nil, fmt.Errorf("gormFlashcardRepository.FindByID: %w", result.Error)
	}
	return &flashcard, nil
}

func (r *gormFlashcardRepository) FindByUserSkill(ctx context.Context, db *gorm.DB, userSkillID uuid.UUID) ([]*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var flashcards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("user_skill_id = ?", userSkillID).
		Order("created_at ASC").
		Find(&flashcards)
	if result.Error != nil {
		logger.Error("Error finding flashcards in DB", "error", result.Error, "user_skill_id", userSkillID.String())
		return nil, fmt.Errorf("gormFlashcardRepository.FindByUserSkill: %w", result.Error)
	}
	return flashcards, nil
}

func (r *gormFlashcardRepository) Update(ctx context.Context, tx *gorm.DB, flashcard *model.Flashcard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(flashcard)
	if result.Error != nil {
		logger.Error("Error updating flashcard in DB",
			"error", result.Error,
			"flashcard_id", flashcard.FlashcardID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormFlashcardRepository) Delete(ctx context.Context, tx *gorm.DB, flashcardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("flashcard_id = ?", flashcardID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcard in DB", "error", result.Error, "flashcard_id", flashcardID.String())
		return fmt.Errorf("gormFlashcardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) DeleteByUserSkill(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_skill_id = ?", userSkillID).Delete(&model.Flashcard{})
	if result.Error != nil {
		logger.Error("Error deleting flashcards for user skill in DB",
			"error", result.Error,
			"user_skill_id", userSkillID.String(),
		)
		return fmt.Errorf("gormFlashcardRepository.DeleteByUserSkill: %w", result.Error)
	}
	return nil
}
