// internal/service/skill_service_test.go
package service

import (
	"context"
	"testing"

	"skillscape/internal/config"
	"skillscape/internal/model"
	"skillscape/internal/repository"
	"skillscape/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBSkill() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

type skillMocks struct {
	skillRepo     *mocks.SkillRepository
	userSkillRepo *mocks.UserSkillRepository
	entryRepo     *mocks.TimeEntryRepository
	flashcardRepo *mocks.FlashcardRepository
}

func newSkillService(db *gorm.DB) (SkillService, *skillMocks) {
	m := &skillMocks{
		skillRepo:     new(mocks.SkillRepository),
		userSkillRepo: new(mocks.UserSkillRepository),
		entryRepo:     new(mocks.TimeEntryRepository),
		flashcardRepo: new(mocks.FlashcardRepository),
	}
	cfg := &config.Config{}
	cfg.App.EntryListLimit = 20
	cfg.App.RecentSessionLimit = 5
	svc := NewSkillService(db, m.skillRepo, m.userSkillRepo, m.entryRepo, m.flashcardRepo, cfg)
	return svc, m
}

// --- Test ListSkills ---
func Test_skillService_ListSkills(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()
	svc, m := newSkillService(db)

	skills := []*model.Skill{
		{SkillID: uuid.New(), Name: "Drawing", Category: "Creative", XPRate: 12, IsActive: true},
		{SkillID: uuid.New(), Name: "Running", Category: "Physical", XPRate: 10, IsActive: true},
	}
	m.skillRepo.On("FindActive", ctx, mock.AnythingOfType("*gorm.DB")).
		Return(skills, nil).Once()

	got, err := svc.ListSkills(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	m.skillRepo.AssertExpectations(t)
}

// --- Test GetSkillDetail ---
func Test_skillService_GetSkillDetail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()

	userID := uuid.New()
	skill := &model.Skill{SkillID: uuid.New(), Name: "Piano", Category: "Creative", XPRate: 15, IsActive: true}

	t.Run("正常系: 初回閲覧で進捗レコードが遅延作成される", func(t *testing.T) {
		svc, m := newSkillService(db)

		m.skillRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), skill.SkillID).
			Return(skill, nil).Once()
		m.userSkillRepo.On("FindByUserAndSkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skill.SkillID).
			Return(nil, model.ErrNotFound).Once()
		m.userSkillRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSkill")).
			Run(func(args mock.Arguments) {
				us := args.Get(2).(*model.UserSkill)
				assert.Equal(t, userID, us.UserID)
				assert.Equal(t, skill.SkillID, us.SkillID)
				assert.Equal(t, int64(0), us.Experience)
				assert.Equal(t, 1, us.Level)
			}).Return(nil).Once()
		m.entryRepo.On("FindRecentByUserSkill", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID"), 5).
			Return([]*model.TimeEntry{}, nil).Once()
		m.entryRepo.On("FindActiveByUserAndSkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skill.SkillID).
			Return(nil, model.ErrNotFound).Once()

		detail, err := svc.GetSkillDetail(ctx, userID, skill.SkillID)

		require.NoError(t, err)
		require.NotNil(t, detail.Progress)
		assert.Equal(t, 1, detail.Progress.Level)
		assert.Equal(t, int64(0), detail.Progress.Experience)
		// レベル2の閾値は83
		assert.Equal(t, 83, detail.Progress.ExperienceToNextLevel)
		assert.Equal(t, 83, detail.Progress.NextLevelTotalXP)
		assert.Nil(t, detail.ActiveEntry)

		m.skillRepo.AssertExpectations(t)
		m.userSkillRepo.AssertExpectations(t)
		m.entryRepo.AssertExpectations(t)
	})

	t.Run("正常系: 既存進捗の進捗率計算", func(t *testing.T) {
		svc, m := newSkillService(db)

		// exp=100, level=2: レベル2帯は83..173 (幅91)、帯内XPは17
		userSkill := &model.UserSkill{
			UserSkillID: uuid.New(),
			UserID:      userID,
			SkillID:     skill.SkillID,
			Experience:  100,
			Level:       2,
		}
		m.skillRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), skill.SkillID).
			Return(skill, nil).Once()
		m.userSkillRepo.On("FindByUserAndSkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skill.SkillID).
			Return(userSkill, nil).Once()
		m.entryRepo.On("FindRecentByUserSkill", ctx, mock.AnythingOfType("*gorm.DB"), userSkill.UserSkillID, 5).
			Return([]*model.TimeEntry{}, nil).Once()
		m.entryRepo.On("FindActiveByUserAndSkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skill.SkillID).
			Return(nil, model.ErrNotFound).Once()

		detail, err := svc.GetSkillDetail(ctx, userID, skill.SkillID)

		require.NoError(t, err)
		assert.Equal(t, 2, detail.Progress.Level)
		assert.Equal(t, 17, detail.Progress.CurrentLevelXP)
		assert.Equal(t, 74, detail.Progress.ExperienceToNextLevel) // 174 - 100
		assert.Equal(t, 174, detail.Progress.NextLevelTotalXP)
		assert.InDelta(t, 18.7, detail.Progress.ProgressPercentage, 0.001) // 17/91
	})

	t.Run("異常系: スキルが存在しない", func(t *testing.T) {
		svc, m := newSkillService(db)

		m.skillRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), skill.SkillID).
			Return(nil, model.ErrNotFound).Once()

		detail, err := svc.GetSkillDetail(ctx, userID, skill.SkillID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, detail)
	})
}

// --- Test Dashboard ---
func Test_skillService_Dashboard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()
	userID := uuid.New()

	svc, m := newSkillService(db)

	m.userSkillRepo.On("Totals", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(&repository.UserSkillTotals{TotalLevel: 14, TotalXP: 5000, SkillsTracked: 3}, nil).Once()
	m.userSkillRepo.On("FindTopByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, 5).
		Return([]*model.UserSkill{
			{UserSkillID: uuid.New(), UserID: userID, Experience: 4000, Level: 10},
		}, nil).Once()
	m.entryRepo.On("FindRecentByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID, 5).
		Return([]*model.TimeEntry{{TimeEntryID: uuid.New()}}, nil).Once()

	resp, err := svc.Dashboard(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(14), resp.TotalLevel)
	assert.Equal(t, int64(5000), resp.TotalXP)
	assert.Equal(t, int64(3), resp.SkillsTracked)
	require.Len(t, resp.TopSkills, 1)
	assert.Equal(t, 10, resp.TopSkills[0].Level)
	assert.Len(t, resp.RecentSessions, 1)

	m.userSkillRepo.AssertExpectations(t)
	m.entryRepo.AssertExpectations(t)
}

// --- Test Untrack ---
func Test_skillService_Untrack(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSkill()

	userID := uuid.New()
	skillID := uuid.New()
	userSkill := &model.UserSkill{
		UserSkillID: uuid.New(),
		UserID:      userID,
		SkillID:     skillID,
	}

	tests := []struct {
		name      string
		setupMock func(m *skillMocks)
		wantErr   error
	}{
		{
			name: "正常系: 進捗・エントリ・フラッシュカードを削除",
			setupMock: func(m *skillMocks) {
				m.userSkillRepo.On("FindByUserAndSkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(userSkill, nil).Once()
				m.flashcardRepo.On("DeleteByUserSkill", ctx, mock.AnythingOfType("*gorm.DB"), userSkill.UserSkillID).
					Return(nil).Once()
				m.entryRepo.On("DeleteByUserSkill", ctx, mock.AnythingOfType("*gorm.DB"), userSkill.UserSkillID).
					Return(nil).Once()
				m.userSkillRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), userSkill.UserSkillID).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: トラッキングしていないスキル",
			setupMock: func(m *skillMocks) {
				m.userSkillRepo.On("FindByUserAndSkill", ctx, mock.AnythingOfType("*gorm.DB"), userID, skillID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSkillService(db)
			tt.setupMock(m)

			err := svc.Untrack(ctx, userID, skillID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			m.userSkillRepo.AssertExpectations(t)
			m.entryRepo.AssertExpectations(t)
			m.flashcardRepo.AssertExpectations(t)
		})
	}
}
