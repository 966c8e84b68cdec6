// internal/service/skill_service.go
package service

import (
	"context"
	"errors"
	"math"

	"skillscape/internal/config"
	"skillscape/internal/leveling"
	"skillscape/internal/middleware"
	"skillscape/internal/model"
	"skillscape/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillService interface {
	ListSkills(ctx context.Context) ([]*model.Skill, error)
	GetSkillDetail(ctx context.Context, userID, skillID uuid.UUID) (*model.SkillDetailResponse, error)
	MySkills(ctx context.Context, userID uuid.UUID) ([]*model.UserSkillProgressResponse, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error)
	Untrack(ctx context.Context, userID, skillID uuid.UUID) error
}

type skillService struct {
	db            *gorm.DB
	skillRepo     repository.SkillRepository
	userSkillRepo repository.UserSkillRepository
	entryRepo     repository.TimeEntryRepository
	flashcardRepo repository.FlashcardRepository
	cfg           *config.Config
}

func NewSkillService(
	db *gorm.DB,
	skillRepo repository.SkillRepository,
	userSkillRepo repository.UserSkillRepository,
	entryRepo repository.TimeEntryRepository,
	flashcardRepo repository.FlashcardRepository,
	cfg *config.Config,
) SkillService {
	return &skillService{
		db:            db,
		skillRepo:     skillRepo,
		userSkillRepo: userSkillRepo,
		entryRepo:     entryRepo,
		flashcardRepo: flashcardRepo,
		cfg:           cfg,
	}
}

// ListSkills は有効なスキルカタログをカテゴリ・名前順で返します
func (s *skillService) ListSkills(ctx context.Context) ([]*model.Skill, error) {
	logger := middleware.GetLogger(ctx)

	skills, err := s.skillRepo.FindActive(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list skills", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}
	return skills, nil
}

// GetSkillDetail はスキル詳細と進捗を返します。進捗レコードが無ければ
// experience=0, level=1 で遅延作成します（初回閲覧 = トラッキング開始）。
func (s *skillService) GetSkillDetail(ctx context.Context, userID, skillID uuid.UUID) (*model.SkillDetailResponse, error) {
	logger := middleware.GetLogger(ctx)

	skill, err := s.skillRepo.FindByID(ctx, s.db, skillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "Skill not found.", "skill_id", model.ErrNotFound)
		}
		logger.Error("Failed to find skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	var detail *model.SkillDetailResponse

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userSkill, err := s.userSkillRepo.FindByUserAndSkill(ctx, tx, userID, skillID)
		if errors.Is(err, model.ErrNotFound) {
			userSkill = &model.UserSkill{
				UserSkillID: uuid.New(),
				UserID:      userID,
				SkillID:     skillID,
				Experience:  0,
				Level:       1,
			}
			if cerr := s.userSkillRepo.Create(ctx, tx, userSkill); cerr != nil {
				if errors.Is(cerr, model.ErrConflict) {
					userSkill, cerr = s.userSkillRepo.FindByUserAndSkill(ctx, tx, userID, skillID)
				}
				if cerr != nil {
					logger.Error("Failed to ensure user skill", "error", cerr)
					return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", cerr)
				}
			}
		} else if err != nil {
			logger.Error("Failed to find user skill", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}

		recent, err := s.entryRepo.FindRecentByUserSkill(ctx, tx, userSkill.UserSkillID, s.cfg.App.RecentSessionLimit)
		if err != nil {
			logger.Error("Failed to load recent sessions", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}

		active, err := s.entryRepo.FindActiveByUserAndSkill(ctx, tx, userID, skillID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check active session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}

		progress := buildProgress(userSkill)
		progress.RecentSessions = recent

		detail = &model.SkillDetailResponse{
			Skill:       skill,
			Progress:    progress,
			ActiveEntry: active, // 無ければnil
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return detail, nil
}

// MySkills はトラッキング中のスキル一覧をレベル順で返します
func (s *skillService) MySkills(ctx context.Context, userID uuid.UUID) ([]*model.UserSkillProgressResponse, error) {
	logger := middleware.GetLogger(ctx)

	userSkills, err := s.userSkillRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list user skills", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	responses := make([]*model.UserSkillProgressResponse, 0, len(userSkills))
	for _, us := range userSkills {
		responses = append(responses, buildProgress(us))
	}
	return responses, nil
}

// Dashboard は合計レベル・合計XP・上位スキル・直近セッションを返します
func (s *skillService) Dashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx)

	totals, err := s.userSkillRepo.Totals(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to aggregate user skill totals", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	topSkills, err := s.userSkillRepo.FindTopByUser(ctx, s.db, userID, s.cfg.App.RecentSessionLimit)
	if err != nil {
		logger.Error("Failed to load top skills", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	recent, err := s.entryRepo.FindRecentByUser(ctx, s.db, userID, s.cfg.App.RecentSessionLimit)
	if err != nil {
		logger.Error("Failed to load recent sessions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	top := make([]*model.UserSkillProgressResponse, 0, len(topSkills))
	for _, us := range topSkills {
		top = append(top, buildProgress(us))
	}

	return &model.DashboardResponse{
		TotalLevel:     totals.TotalLevel,
		TotalXP:        totals.TotalXP,
		SkillsTracked:  totals.SkillsTracked,
		TopSkills:      top,
		RecentSessions: recent,
	}, nil
}

// Untrack はスキルのトラッキングを解除します。進捗・タイムエントリ・
// フラッシュカードをまとめて削除する（取り消し不可）。
func (s *skillService) Untrack(ctx context.Context, userID, skillID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userSkill, err := s.userSkillRepo.FindByUserAndSkill(ctx, tx, userID, skillID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SKILL_NOT_TRACKED", "You are not tracking this skill.", "skill_id", model.ErrNotFound)
			}
			logger.Error("Failed to find user skill", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}

		if err := s.flashcardRepo.DeleteByUserSkill(ctx, tx, userSkill.UserSkillID); err != nil {
			logger.Error("Failed to delete flashcards", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to untrack the skill.", "", err)
		}
		if err := s.entryRepo.DeleteByUserSkill(ctx, tx, userSkill.UserSkillID); err != nil {
			logger.Error("Failed to delete time entries", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to untrack the skill.", "", err)
		}
		if err := s.userSkillRepo.Delete(ctx, tx, userSkill.UserSkillID); err != nil {
			logger.Error("Failed to delete user skill", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to untrack the skill.", "", err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	logger.Info("Skill untracked", "user_id", userID.String(), "skill_id", skillID.String())
	return nil
}

// buildProgress は進捗レコードから表示用のDTOを組み立てます。
// progress_percentage は現在レベル帯の中での到達率（0..100）。
func buildProgress(userSkill *model.UserSkill) *model.UserSkillProgressResponse {
	level := userSkill.Level
	exp := int(userSkill.Experience)

	currentThreshold := leveling.ExperienceForLevel(level)
	currentLevelXP := exp - currentThreshold

	resp := &model.UserSkillProgressResponse{
		UserSkillID:    userSkill.UserSkillID,
		Skill:          userSkill.Skill,
		Level:          level,
		Experience:     userSkill.Experience,
		CurrentLevelXP: currentLevelXP,
	}

	if level >= leveling.MaxLevel {
		resp.NextLevelTotalXP = currentThreshold
		resp.ProgressPercentage = 100
		return resp
	}

	nextThreshold := leveling.ExperienceForLevel(level + 1)
	resp.NextLevelTotalXP = nextThreshold
	resp.ExperienceToNextLevel = leveling.ExperienceToNextLevel(level, exp)

	span := nextThreshold - currentThreshold
	if span > 0 {
		resp.ProgressPercentage = math.Round(float64(currentLevelXP)/float64(span)*1000) / 10
	}
	return resp
}
