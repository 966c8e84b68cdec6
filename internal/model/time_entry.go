// internal/model/time_entry.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry は1回のトラッキングセッション（ライブ／手動記録）を表します。
// EndedAt が NULL のレコードが「アクティブなセッション」。
// user_id への部分ユニークインデックスにより、ユーザーごとに
// アクティブなセッションはシステム全体で最大1件に制限される
// （スキル単位ではなくユーザー単位）。
type TimeEntry struct {
	TimeEntryID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"time_entry_id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_time_entries_active,unique,where:ended_at IS NULL" json:"user_id"`
	SkillID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"skill_id"`
	UserSkillID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_skill_id"`
	StartedAt        time.Time  `gorm:"not null" json:"started_at"`
	EndedAt          *time.Time `gorm:"index" json:"ended_at"` // NULL = アクティブ
	DurationMinutes  int        `json:"duration_minutes"`
	ExperienceGained int64      `json:"experience_gained"`
	Notes            string     `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// 関連 (Preload用)
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"skill,omitempty"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

// IsActive はセッションが進行中（終了していない）かを返します
func (e *TimeEntry) IsActive() bool {
	return e.EndedAt == nil
}

// StartSessionRequest はセッション開始リクエストのDTO
type StartSessionRequest struct {
	SkillID uuid.UUID `json:"skill_id" validate:"required"`
	Notes   string    `json:"notes" validate:"omitempty,max=500"`
}

// LogManualEntryRequest は手動記録リクエストのDTO。
// duration_minutes の上限・日付ウィンドウ・日次上限の検証は
// サービス層で行う（単項目の形式チェックのみvalidatorに任せる）。
type LogManualEntryRequest struct {
	SkillID         uuid.UUID `json:"skill_id" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required"`
	CompletedAt     time.Time `json:"completed_at" validate:"required"`
	Notes           string    `json:"notes" validate:"omitempty,max=500"`
}

// LevelUpEvent はレベルアップ発生時にレスポンスへ添付されるイベント
type LevelUpEvent struct {
	LeveledUp bool   `json:"leveled_up"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Skill     *Skill `json:"skill"`
}

// SessionResult はセッション終了／手動記録の結果
type SessionResult struct {
	TimeEntry        *TimeEntry    `json:"time_entry"`
	UserSkill        *UserSkill    `json:"user_skill"`
	ExperienceGained int64         `json:"experience_gained"`
	NewLevel         int           `json:"new_level"`
	LevelUp          *LevelUpEvent `json:"level_up,omitempty"`
}

// ActiveSessionResponse はアクティブセッション照会のレスポンス。
// ElapsedMinutes は now - started_at から算出する表示用の値で永続化しない。
type ActiveSessionResponse struct {
	ActiveEntry    *TimeEntry `json:"active_entry"`
	ElapsedMinutes int        `json:"elapsed_minutes,omitempty"`
}

// SkillStatsResponse はスキルごとの集計レスポンス（終了済みエントリのみ対象）
type SkillStatsResponse struct {
	Skill                 *Skill     `json:"skill"`
	UserSkill             *UserSkill `json:"user_skill"`
	TotalMinutes          int64      `json:"total_minutes"`
	TotalHours            float64    `json:"total_hours"`
	TotalSessions         int64      `json:"total_sessions"`
	AverageSessionMinutes float64    `json:"average_session_minutes"`
}
