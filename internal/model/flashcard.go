// internal/model/flashcard.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Flashcard はスキルごとの暗記カード。UserSkill に従属し、
// スキルのアントラックで一緒に削除される。
type Flashcard struct {
	FlashcardID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"flashcard_id"`
	UserSkillID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_skill_id"`
	Question      string     `gorm:"not null" json:"question"`
	Answer        string     `gorm:"not null" json:"answer"`
	TimesStudied  int        `gorm:"not null;default:0" json:"times_studied"`
	TimesCorrect  int        `gorm:"not null;default:0" json:"times_correct"`
	LastStudiedAt *time.Time `json:"last_studied_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// AccuracyPercentage は正答率（四捨五入した整数パーセント）を返します
func (f *Flashcard) AccuracyPercentage() int {
	if f.TimesStudied == 0 {
		return 0
	}
	return int(math.Round(float64(f.TimesCorrect) / float64(f.TimesStudied) * 100))
}

// 暗記カード作成・更新リクエストDTO
type StoreFlashcardRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
	Answer   string `json:"answer" validate:"required,max=1000"`
}

// RecordAnswerRequest は学習結果送信リクエストのDTO
type RecordAnswerRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// FlashcardResponse は一覧・学習画面向けのレスポンスDTO
type FlashcardResponse struct {
	FlashcardID   uuid.UUID  `json:"flashcard_id"`
	Question      string     `json:"question"`
	Answer        string     `json:"answer"`
	TimesStudied  int        `json:"times_studied"`
	TimesCorrect  int        `json:"times_correct"`
	Accuracy      int        `json:"accuracy"`
	LastStudiedAt *time.Time `json:"last_studied_at"`
	CreatedAt     time.Time  `json:"created_at"`
}
