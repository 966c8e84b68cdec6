// internal/service/tracking_service.go
package service

import (
	"context"
	"errors"
	"math"
	"time"

	"skillscape/internal/config"
	"skillscape/internal/leveling"
	"skillscape/internal/middleware"
	"skillscape/internal/model"
	"skillscape/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// 手動記録1件あたりの上限（8時間）
	ManualEntryMaxMinutes = 480
	// 手動記録で遡れる日数
	ManualEntryWindowDays = 7
	// (ユーザー, スキル, 暦日) ごとの記録上限（12時間）
	DailySkillCapMinutes = 720
)

type TrackingService interface {
	StartSession(ctx context.Context, userID uuid.UUID, req *model.StartSessionRequest) (*model.TimeEntry, error)
	StopSession(ctx context.Context, userID uuid.UUID) (*model.SessionResult, error)
	LogManualEntry(ctx context.Context, userID uuid.UUID, req *model.LogManualEntryRequest) (*model.SessionResult, error)
	GetActiveSession(ctx context.Context, userID uuid.UUID) (*model.ActiveSessionResponse, error)
	GetSkillStats(ctx context.Context, userID, skillID uuid.UUID) (*model.SkillStatsResponse, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]*model.TimeEntry, error)
}

type trackingService struct {
	db              *gorm.DB
	skillRepo       repository.SkillRepository
	userSkillRepo   repository.UserSkillRepository
	entryRepo       repository.TimeEntryRepository
	achievementRepo repository.AchievementRepository
	cfg             *config.Config
}

func NewTrackingService(
	db *gorm.DB,
	skillRepo repository.SkillRepository,
	userSkillRepo repository.UserSkillRepository,
	entryRepo repository.TimeEntryRepository,
	achievementRepo repository.AchievementRepository,
	cfg *config.Config,
) TrackingService {
	return &trackingService{
		db:              db,
		skillRepo:       skillRepo,
		userSkillRepo:   userSkillRepo,
		entryRepo:       entryRepo,
		achievementRepo: achievementRepo,
		cfg:             cfg,
	}
}

// StartSession はライブセッションを開始します。
// アクティブなセッションはユーザーごとにシステム全体で1件まで
// （別スキルでも不可）。違反は ErrConflict として返します。
func (s *trackingService) StartSession(ctx context.Context, userID uuid.UUID, req *model.StartSessionRequest) (*model.TimeEntry, error) {
	logger := middleware.GetLogger(ctx)

	skill, err := s.findActiveSkill(ctx, req.SkillID)
	if err != nil {
		return nil, err
	}

	var created *model.TimeEntry

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 既存のアクティブセッションを確認（スキルを問わない）
		active, err := s.entryRepo.FindActiveByUser(ctx, tx, userID)
		if err == nil {
			logger.Warn("Session start rejected: session already active",
				"user_id", userID.String(),
				"active_entry_id", active.TimeEntryID.String(),
			)
			return model.NewAppError("SESSION_ALREADY_ACTIVE", "You already have an active session. Stop it before starting a new one.", "", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check active session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}

		userSkill, err := s.ensureUserSkill(ctx, tx, userID, skill.SkillID)
		if err != nil {
			return err
		}

		entry := &model.TimeEntry{
			TimeEntryID: uuid.New(),
			UserID:      userID,
			SkillID:     skill.SkillID,
			UserSkillID: userSkill.UserSkillID,
			StartedAt:   time.Now(),
			Notes:       req.Notes,
		}
		if err := s.entryRepo.Create(ctx, tx, entry); err != nil {
			// 部分ユニークインデックス違反: 同時リクエストに先を越された
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("SESSION_ALREADY_ACTIVE", "You already have an active session. Stop it before starting a new one.", "", model.ErrConflict)
			}
			logger.Error("Failed to create time entry", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to start the session.", "", err)
		}

		entry.Skill = skill
		created = entry
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Session started",
		"user_id", userID.String(),
		"skill_id", skill.SkillID.String(),
		"time_entry_id", created.TimeEntryID.String(),
	)
	return created, nil
}

// StopSession はアクティブなセッションを終了し、経過時間に応じた
// 経験値を付与します。duration は分単位で切り捨て。
func (s *trackingService) StopSession(ctx context.Context, userID uuid.UUID) (*model.SessionResult, error) {
	logger := middleware.GetLogger(ctx)

	var result *model.SessionResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.FindActiveByUser(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Session stop rejected: no active session", "user_id", userID.String())
				return model.NewAppError("NO_ACTIVE_SESSION", "No active session to stop.", "", model.ErrNotFound)
			}
			logger.Error("Failed to find active session", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}

		skill := entry.Skill
		if skill == nil {
			skill, err = s.skillRepo.FindByID(ctx, tx, entry.SkillID)
			if err != nil {
				logger.Error("Failed to load skill for active session", "error", err, "skill_id", entry.SkillID.String())
				return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
			}
		}

		now := time.Now()
		duration := int(now.Sub(entry.StartedAt).Minutes()) // 切り捨て
		if duration < 0 {
			duration = 0
		}
		gained := int64(duration) * int64(skill.XPRate)

		userSkill, err := s.userSkillRepo.FindByID(ctx, tx, entry.UserSkillID)
		if err != nil {
			logger.Error("Failed to load user skill for active session", "error", err, "user_skill_id", entry.UserSkillID.String())
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}

		levelUp, err := s.applyExperience(ctx, tx, userSkill, gained, skill)
		if err != nil {
			return err
		}

		entry.EndedAt = &now
		entry.DurationMinutes = duration
		entry.ExperienceGained = gained
		if err := s.entryRepo.Update(ctx, tx, entry); err != nil {
			logger.Error("Failed to close time entry", "error", err, "time_entry_id", entry.TimeEntryID.String())
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to stop the session.", "", err)
		}

		result = &model.SessionResult{
			TimeEntry:        entry,
			UserSkill:        userSkill,
			ExperienceGained: gained,
			NewLevel:         userSkill.Level,
			LevelUp:          levelUp,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Session stopped",
		"user_id", userID.String(),
		"time_entry_id", result.TimeEntry.TimeEntryID.String(),
		"duration_minutes", result.TimeEntry.DurationMinutes,
		"experience_gained", result.ExperienceGained,
	)
	return result, nil
}

// LogManualEntry は過去のアクティビティを手動で記録します。
// 4つの検証（時間上限・未来日時・7日ウィンドウ・日次上限）は
// それぞれ独立に失敗し、いずれも ErrInvalidInput (422) になります。
func (s *trackingService) LogManualEntry(ctx context.Context, userID uuid.UUID, req *model.LogManualEntryRequest) (*model.SessionResult, error) {
	logger := middleware.GetLogger(ctx)

	if req.DurationMinutes < 1 || req.DurationMinutes > ManualEntryMaxMinutes {
		return nil, model.NewAppError("INVALID_DURATION", "Duration must be between 1 and 480 minutes.", "duration_minutes", model.ErrInvalidInput)
	}

	now := time.Now()
	if req.CompletedAt.After(now) {
		return nil, model.NewAppError("COMPLETED_AT_IN_FUTURE", "Completed time cannot be in the future.", "completed_at", model.ErrInvalidInput)
	}
	if req.CompletedAt.Before(now.AddDate(0, 0, -ManualEntryWindowDays)) {
		return nil, model.NewAppError("ENTRY_TOO_OLD", "Entries older than 7 days cannot be logged.", "completed_at", model.ErrInvalidInput)
	}

	skill, err := s.findActiveSkill(ctx, req.SkillID)
	if err != nil {
		return nil, err
	}

	var result *model.SessionResult

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 日次上限: completed_at と同じ暦日（サーバーローカル）に終了した
		// 既存の終了済みエントリの合計に、今回分を足して判定する
		dayStart := startOfDay(req.CompletedAt)
		logged, err := s.entryRepo.SumClosedMinutesInRange(ctx, tx, userID, skill.SkillID, dayStart, dayStart.AddDate(0, 0, 1))
		if err != nil {
			logger.Error("Failed to sum daily minutes", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
		}
		if logged+int64(req.DurationMinutes) > DailySkillCapMinutes {
			logger.Warn("Manual entry rejected: daily limit exceeded",
				"user_id", userID.String(),
				"skill_id", skill.SkillID.String(),
				"already_logged_minutes", logged,
				"requested_minutes", req.DurationMinutes,
			)
			return model.NewAppError("DAILY_LIMIT_EXCEEDED", "Daily limit exceeded. You can only log up to 12 hours per skill per day.", "duration_minutes", model.ErrInvalidInput)
		}

		userSkill, err := s.ensureUserSkill(ctx, tx, userID, skill.SkillID)
		if err != nil {
			return err
		}

		gained := int64(req.DurationMinutes) * int64(skill.XPRate)
		completedAt := req.CompletedAt
		entry := &model.TimeEntry{
			TimeEntryID:      uuid.New(),
			UserID:           userID,
			SkillID:          skill.SkillID,
			UserSkillID:      userSkill.UserSkillID,
			StartedAt:        completedAt.Add(-time.Duration(req.DurationMinutes) * time.Minute),
			EndedAt:          &completedAt,
			DurationMinutes:  req.DurationMinutes,
			ExperienceGained: gained,
			Notes:            req.Notes,
		}
		if err := s.entryRepo.Create(ctx, tx, entry); err != nil {
			logger.Error("Failed to create manual time entry", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to log the entry.", "", err)
		}

		levelUp, err := s.applyExperience(ctx, tx, userSkill, gained, skill)
		if err != nil {
			return err
		}

		entry.Skill = skill
		result = &model.SessionResult{
			TimeEntry:        entry,
			UserSkill:        userSkill,
			ExperienceGained: gained,
			NewLevel:         userSkill.Level,
			LevelUp:          levelUp,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Manual entry logged",
		"user_id", userID.String(),
		"skill_id", skill.SkillID.String(),
		"duration_minutes", req.DurationMinutes,
		"experience_gained", result.ExperienceGained,
	)
	return result, nil
}

// GetActiveSession は進行中のセッションを返します。なければ
// ActiveEntry=nil のレスポンスを返します（404にはしない）。
func (s *trackingService) GetActiveSession(ctx context.Context, userID uuid.UUID) (*model.ActiveSessionResponse, error) {
	logger := middleware.GetLogger(ctx)

	entry, err := s.entryRepo.FindActiveByUser(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.ActiveSessionResponse{}, nil
		}
		logger.Error("Failed to find active session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	elapsed := int(time.Since(entry.StartedAt).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}
	return &model.ActiveSessionResponse{
		ActiveEntry:    entry,
		ElapsedMinutes: elapsed,
	}, nil
}

// GetSkillStats は終了済みエントリに基づくスキルごとの集計を返します
func (s *trackingService) GetSkillStats(ctx context.Context, userID, skillID uuid.UUID) (*model.SkillStatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	skill, err := s.skillRepo.FindByID(ctx, s.db, skillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_FOUND", "Skill not found.", "skill_id", model.ErrNotFound)
		}
		logger.Error("Failed to find skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	userSkill, err := s.userSkillRepo.FindByUserAndSkill(ctx, s.db, userID, skillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("SKILL_NOT_TRACKED", "You are not tracking this skill yet.", "skill_id", model.ErrNotFound)
		}
		logger.Error("Failed to find user skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	stats, err := s.entryRepo.ClosedStats(ctx, s.db, userID, skillID)
	if err != nil {
		logger.Error("Failed to aggregate closed entries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	resp := &model.SkillStatsResponse{
		Skill:         skill,
		UserSkill:     userSkill,
		TotalMinutes:  stats.TotalMinutes,
		TotalHours:    math.Round(float64(stats.TotalMinutes)/60*10) / 10,
		TotalSessions: stats.TotalSessions,
	}
	if stats.TotalSessions > 0 {
		resp.AverageSessionMinutes = math.Round(float64(stats.TotalMinutes)/float64(stats.TotalSessions)*10) / 10
	}
	return resp, nil
}

// ListEntries は直近のタイムエントリを新しい順に返します
func (s *trackingService) ListEntries(ctx context.Context, userID uuid.UUID) ([]*model.TimeEntry, error) {
	logger := middleware.GetLogger(ctx)

	entries, err := s.entryRepo.FindRecentByUser(ctx, s.db, userID, s.cfg.App.EntryListLimit)
	if err != nil {
		logger.Error("Failed to list time entries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}
	return entries, nil
}

// --- ヘルパー関数 ---

// findActiveSkill はスキルの存在と有効状態を確認します
func (s *trackingService) findActiveSkill(ctx context.Context, skillID uuid.UUID) (*model.Skill, error) {
	logger := middleware.GetLogger(ctx)

	skill, err := s.skillRepo.FindByID(ctx, s.db, skillID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Skill not found", "skill_id", skillID.String())
			return nil, model.NewAppError("SKILL_NOT_FOUND", "Skill not found.", "skill_id", model.ErrNotFound)
		}
		logger.Error("Failed to find skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}
	if !skill.IsActive {
		logger.Warn("Skill is not active", "skill_id", skillID.String())
		return nil, model.NewAppError("SKILL_NOT_AVAILABLE", "This skill is not available.", "skill_id", model.ErrInvalidInput)
	}
	return skill, nil
}

// ensureUserSkill は (ユーザー, スキル) の進捗レコードを取得し、
// 無ければ experience=0, level=1 で作成します。同時作成による
// ユニーク制約違反時は既存レコードを再取得します。
func (s *trackingService) ensureUserSkill(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (*model.UserSkill, error) {
	logger := middleware.GetLogger(ctx)

	userSkill, err := s.userSkillRepo.FindByUserAndSkill(ctx, tx, userID, skillID)
	if err == nil {
		return userSkill, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find user skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	userSkill = &model.UserSkill{
		UserSkillID: uuid.New(),
		UserID:      userID,
		SkillID:     skillID,
		Experience:  0,
		Level:       1,
	}
	if err := s.userSkillRepo.Create(ctx, tx, userSkill); err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 同時リクエストが先に作成した場合は既存を使う
			existing, ferr := s.userSkillRepo.FindByUserAndSkill(ctx, tx, userID, skillID)
			if ferr != nil {
				logger.Error("Failed to refetch user skill after conflict", "error", ferr)
				return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", ferr)
			}
			return existing, nil
		}
		logger.Error("Failed to create user skill", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}
	return userSkill, nil
}

// applyExperience は経験値を加算してレベルを再導出し、レベルアップ時には
// Achievement を記録して LevelUpEvent を返します。level は常に
// LevelFromExperience(experience) から導出し、単独では書き換えない。
func (s *trackingService) applyExperience(ctx context.Context, tx *gorm.DB, userSkill *model.UserSkill, gained int64, skill *model.Skill) (*model.LevelUpEvent, error) {
	logger := middleware.GetLogger(ctx)

	oldLevel := userSkill.Level
	userSkill.Experience += gained
	userSkill.Level = leveling.LevelFromExperience(int(userSkill.Experience))

	if err := s.userSkillRepo.Update(ctx, tx, userSkill); err != nil {
		logger.Error("Failed to update user skill", "error", err, "user_skill_id", userSkill.UserSkillID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	if userSkill.Level <= oldLevel {
		return nil, nil
	}

	achievement := &model.Achievement{
		AchievementID: uuid.New(),
		UserID:        userSkill.UserID,
		SkillID:       userSkill.SkillID,
		Type:          model.AchievementTypeLevelUp,
		LevelReached:  userSkill.Level,
		TotalXP:       userSkill.Experience,
		UnlockedAt:    time.Now(),
	}
	if err := s.achievementRepo.Create(ctx, tx, achievement); err != nil {
		logger.Error("Failed to create achievement", "error", err, "user_skill_id", userSkill.UserSkillID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Something went wrong.", "", err)
	}

	logger.Info("Level up",
		"user_id", userSkill.UserID.String(),
		"skill_id", userSkill.SkillID.String(),
		"old_level", oldLevel,
		"new_level", userSkill.Level,
	)
	return &model.LevelUpEvent{
		LeveledUp: true,
		OldLevel:  oldLevel,
		NewLevel:  userSkill.Level,
		Skill:     skill,
	}, nil
}

// startOfDay はサーバーローカルタイムゾーンでの暦日の開始時刻を返します
func startOfDay(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}
