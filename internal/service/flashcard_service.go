// internal/service/flashcard_service.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"skillscape/internal/middleware"
	"skillscape/internal/model"
	"skillscape/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardService interface {
	ListFlashcards(ctx context.Context, userID, skillID uuid.UUID) ([]*model.FlashcardResponse, error)
	CreateFlashcard(ctx context.Context, userID, skillID uuid.UUID, req *model.StoreFlashcardRequest) (*model.FlashcardResponse, error)
	UpdateFlashcard(ctx context.Context, userID, skillID, flashcardID uuid.UUID, req *model.StoreFlashcardRequest) (*model.FlashcardResponse, error)
	DeleteFlashcard(ctx context.Context, userID, skillID, flashcardID uuid.UUID) error
	StudySet(ctx context.Context, userID, skillID uuid.UUID) ([]*model.FlashcardResponse, error)
	RecordAnswer(ctx context.Context, userID, skillID, flashcardID uuid.UUID, req *model.RecordAnswerRequest) (*model.FlashcardResponse, error)
}

type flashcardService struct {
	db            *gorm.DB
	userSkillRepo repository.UserSkillRepository
	flashcardRepo repository.FlashcardRepository
}

func NewFlashcardService(db *gorm.DB, userSkillRepo repository.UserSkillRepository, flashcardRepo repository.FlashcardRepository) FlashcardService {
	return &flashcardService{
		db:            db,
		userSkillRepo: userSkillRepo,
		flashcardRepo: flashcardRepo,
	}
}

// ListFlashcards はスキルの暗記カードを作成順で返します
func (s *flashcardService) ListFlashcards(ctx context.Context, userID, skillID uuid.UUID) ([]*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	userSkill, err := s.findUserSkill(ctx, s.db, userID, skillID)
	if err != nil {
		return nil, err
	}

	flashcards, err := s.flashcardRepo.FindByUserSkill(ctx, s.db, userSkill.UserSkillID)
	if err != nil {
		logger.Error("Failed to list flashcards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	return toFlashcardResponses(flashcards), nil
}

func (s *flashcardService) CreateFlashcard(ctx context.Context, userID, skillID uuid.UUID, req *model.StoreFlashcardRequest) (*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	var created *model.Flashcard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userSkill, err := s.findUserSkill(ctx, tx, userID, skillID)
		if err != nil {
			return err
		}

		flashcard := &model.Flashcard{
			FlashcardID: uuid.New(),
			UserSkillID: userSkill.UserSkillID,
			Question:    req.Question,
			Answer:      req.Answer,
		}
		if err := s.flashcardRepo.Create(ctx, tx, flashcard); err != nil {
			logger.Error("Failed to create flashcard", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the flashcard.", "", err)
		}
		created = flashcard
		return nil
	})

	if err != nil {
		return nil, err
	}
	return toFlashcardResponse(created), nil
}

func (s *flashcardService) UpdateFlashcard(ctx context.Context, userID, skillID, flashcardID uuid.UUID, req *model.StoreFlashcardRequest) (*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.Flashcard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flashcard, err := s.findOwnedFlashcard(ctx, tx, userID, skillID, flashcardID)
		if err != nil {
			return err
		}

		flashcard.Question = req.Question
		flashcard.Answer = req.Answer
		if err := s.flashcardRepo.Update(ctx, tx, flashcard); err != nil {
			logger.Error("Failed to update flashcard", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to update the flashcard.", "", err)
		}
		updated = flashcard
		return nil
	})

	if err != nil {
		return nil, err
	}
	return toFlashcardResponse(updated), nil
}

func (s *flashcardService) DeleteFlashcard(ctx context.Context, userID, skillID, flashcardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flashcard, err := s.findOwnedFlashcard(ctx, tx, userID, skillID, flashcardID)
		if err != nil {
			return err
		}

		if err := s.flashcardRepo.Delete(ctx, tx, flashcard.FlashcardID); err != nil {
			logger.Error("Failed to delete flashcard", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to delete the flashcard.", "", err)
		}
		return nil
	})
}

// StudySet は暗記カードをランダムな順序で返します
func (s *flashcardService) StudySet(ctx context.Context, userID, skillID uuid.UUID) ([]*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	userSkill, err := s.findUserSkill(ctx, s.db, userID, skillID)
	if err != nil {
		return nil, err
	}

	flashcards, err := s.flashcardRepo.FindByUserSkill(ctx, s.db, userSkill.UserSkillID)
	if err != nil {
		logger.Error("Failed to load flashcards for study", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	rand.Shuffle(len(flashcards), func(i, j int) {
		flashcards[i], flashcards[j] = flashcards[j], flashcards[i]
	})
	return toFlashcardResponses(flashcards), nil
}

// RecordAnswer は学習結果を記録しカウンタを更新します
func (s *flashcardService) RecordAnswer(ctx context.Context, userID, skillID, flashcardID uuid.UUID, req *model.RecordAnswerRequest) (*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	if req.Correct == nil {
		return nil, model.NewAppError("INVALID_INPUT", "The correct field is required.", "correct", model.ErrInvalidInput)
	}

	var updated *model.Flashcard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		flashcard, err := s.findOwnedFlashcard(ctx, tx, userID, skillID, flashcardID)
		if err != nil {
			return err
		}

		now := time.Now()
		flashcard.TimesStudied++
		if *req.Correct {
			flashcard.TimesCorrect++
		}
		flashcard.LastStudiedAt = &now

		if err := s.flashcardRepo.Update(ctx, tx, flashcard); err != nil {
			logger.Error("Failed to record flashcard answer", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to record the answer.", "", err)
		}
		updated = flashcard
		return nil
	})

	if err != nil {
		return nil, err
	}
	return toFlashcardResponse(updated), nil
}

// --- ヘルパー関数 ---

// findUserSkill はトラッキング中の進捗レコードを取得します。
// 無ければ NotFound（カード操作は先にスキル詳細を開いている前提）。
func (s *flashcardService) findUserSkill(ctx context.Context, db *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkill, error) {
	logger := middleware.GetLogger(ctx)

	userSkill, err := s.userSkillRepo.FindByUserAndSkill(ctx, db, userID, skillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_TRACKED", "You are not tracking this skill.", "skill_id", model.ErrNotFound)
		}
		logger.Error("Failed to find user skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}
	return userSkill, nil
}

// findOwnedFlashcard はカードを取得し、リクエストユーザーのスキルに
// 属していることを確認します。他ユーザーのカードはNotFound扱い。
func (s *flashcardService) findOwnedFlashcard(ctx context.Context, db *gorm.DB, userID, skillID, flashcardID uuid.UUID) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)

	userSkill, err := s.findUserSkill(ctx, db, userID, skillID)
	if err != nil {
		return nil, err
	}

	flashcard, err := s.flashcardRepo.FindByID(ctx, db, flashcardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "flashcard_id", model.ErrNotFound)
		}
		logger.Error("Failed to find flashcard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}
	if flashcard.UserSkillID != userSkill.UserSkillID {
		logger.Warn("Flashcard does not belong to the user skill",
			"flashcard_id", flashcardID.String(),
			"user_skill_id", userSkill.UserSkillID.String(),
		)
		return nil, model.NewAppError("FLASHCARD_NOT_FOUND", "Flashcard not found.", "flashcard_id", model.ErrNotFound)
	}
	return flashcard, nil
}

func toFlashcardResponse(f *model.Flashcard) *model.FlashcardResponse {
	return &model.FlashcardResponse{
		FlashcardID:   f.FlashcardID,
		Question:      f.Question,
		Answer:        f.Answer,
		TimesStudied:  f.TimesStudied,
		TimesCorrect:  f.TimesCorrect,
		Accuracy:      f.AccuracyPercentage(),
		LastStudiedAt: f.LastStudiedAt,
		CreatedAt:     f.CreatedAt,
	}
}

func toFlashcardResponses(flashcards []*model.Flashcard) []*model.FlashcardResponse {
	responses := make([]*model.FlashcardResponse, 0, len(flashcards))
	for _, f := range flashcards {
		responses = append(responses, toFlashcardResponse(f))
	}
	return responses
}
