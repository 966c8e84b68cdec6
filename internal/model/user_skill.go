// internal/model/user_skill.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSkill は (ユーザー, スキル) ごとの進捗レコードを表します。
// 複合ユニーク制約で1ペアにつき最大1レコード。
// 不変条件: level == leveling.LevelFromExperience(experience) が
// すべての更新後に成立すること（levelを単独で書き換えない）。
type UserSkill struct {
	UserSkillID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_skill_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_user_skill,unique" json:"user_id"`
	SkillID     uuid.UUID `gorm:"type:uuid;not null;index:idx_user_skill,unique" json:"skill_id"`
	Experience  int64     `gorm:"not null;default:0" json:"experience"`
	Level       int       `gorm:"not null;default:1" json:"level"` // 1..120
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"skill,omitempty"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}

// UserSkillProgressResponse は進捗表示用のレスポンスDTO
type UserSkillProgressResponse struct {
	UserSkillID           uuid.UUID    `json:"user_skill_id"`
	Skill                 *Skill       `json:"skill,omitempty"`
	Level                 int          `json:"level"`
	Experience            int64        `json:"experience"`
	ExperienceToNextLevel int          `json:"experience_to_next_level"`
	NextLevelTotalXP      int          `json:"next_level_total_xp"`
	CurrentLevelXP        int          `json:"current_level_xp"`
	ProgressPercentage    float64      `json:"progress_percentage"`
	RecentSessions        []*TimeEntry `json:"recent_sessions,omitempty"`
}

// DashboardResponse はダッシュボードの集計レスポンス
type DashboardResponse struct {
	TotalLevel     int64                        `json:"total_level"`
	TotalXP        int64                        `json:"total_xp"`
	SkillsTracked  int64                        `json:"skills_tracked"`
	TopSkills      []*UserSkillProgressResponse `json:"top_skills"`
	RecentSessions []*TimeEntry                 `json:"recent_sessions"`
}
