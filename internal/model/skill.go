// internal/model/skill.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillResource はスキルに紐づく学習リソース（JSONカラムに格納）
type SkillResource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Skill はトラッキング対象となるスキルのテンプレートを表します。
// シード処理で投入される管理データであり、エンジン側からは不変。
type Skill struct {
	SkillID     uuid.UUID       `gorm:"type:uuid;primaryKey" json:"skill_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Category    string          `gorm:"not null;index" json:"category"`
	XPRate      int             `gorm:"column:xp_rate;not null" json:"xp_rate"` // 1分あたりの獲得XP
	Resources   []SkillResource `gorm:"serializer:json" json:"resources"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Skill) TableName() string {
	return "skills"
}

// SkillDetailResponse はスキル詳細ページのレスポンス。
// Progress は参照時に遅延作成されるため常に非nil。
type SkillDetailResponse struct {
	Skill       *Skill                     `json:"skill"`
	Progress    *UserSkillProgressResponse `json:"progress"`
	ActiveEntry *TimeEntry                 `json:"active_entry,omitempty"`
}
