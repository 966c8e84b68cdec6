// internal/model/achievement.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const AchievementTypeLevelUp = "level_up"

// Achievement はレベルアップ時に作成される不変のイベントレコード。
// 追記専用で、エンジンからの更新・削除は行わない。
type Achievement struct {
	AchievementID uuid.UUID `gorm:"type:uuid;primaryKey" json:"achievement_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_achievements_user_skill" json:"user_id"`
	SkillID       uuid.UUID `gorm:"type:uuid;not null;index:idx_achievements_user_skill" json:"skill_id"`
	Type          string    `gorm:"not null;default:level_up" json:"type"`
	LevelReached  int       `gorm:"not null" json:"level_reached"`
	TotalXP       int64     `gorm:"column:total_xp;not null" json:"total_xp"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Skill *Skill `gorm:"foreignKey:SkillID;references:SkillID" json:"skill,omitempty"`
}

func (Achievement) TableName() string {
	return "achievements"
}
