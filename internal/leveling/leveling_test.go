// internal/leveling/leveling_test.go
package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceForLevel_KnownValues(t *testing.T) {
	// RuneScape式カーブの既知の値（PHP実装のテーブルと一致すること）
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 83},
		{3, 174},
		{4, 276},
		{5, 388},
		{10, 1154},
		{20, 4470},
		{30, 13363},
		{40, 37224},
		{50, 101333},
		{99, 13034431},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExperienceForLevel(tt.level), "level %d", tt.level)
	}
}

func TestExperienceForLevel_StrictlyIncreasing(t *testing.T) {
	prev := ExperienceForLevel(1)
	require.Equal(t, 0, prev)

	for l := 2; l <= MaxLevel; l++ {
		cur := ExperienceForLevel(l)
		require.Greater(t, cur, prev, "level %d must require more XP than level %d", l, l-1)
		prev = cur
	}
}

func TestLevelFromExperience_Boundaries(t *testing.T) {
	// 各レベルの閾値ちょうどでそのレベルに到達し、1手前では到達しない
	for l := 2; l <= MaxLevel; l++ {
		threshold := ExperienceForLevel(l)
		require.Equal(t, l, LevelFromExperience(threshold), "exact threshold of level %d", l)
		require.Equal(t, l-1, LevelFromExperience(threshold-1), "one XP below level %d", l)
	}
}

func TestLevelFromExperience_BelowLevel2(t *testing.T) {
	assert.Equal(t, 1, LevelFromExperience(0))
	assert.Equal(t, 1, LevelFromExperience(82))
	assert.Equal(t, 2, LevelFromExperience(83))
}

func TestLevelFromExperience_CapAt120(t *testing.T) {
	huge := ExperienceForLevel(MaxLevel) * 10
	assert.Equal(t, MaxLevel, LevelFromExperience(huge))
}

func TestLevelFromExperience_InverseProperty(t *testing.T) {
	// LevelFromExperience(e) == L ならば
	// e >= ExperienceForLevel(L) かつ (L == 120 または e < ExperienceForLevel(L+1))
	samples := []int{0, 1, 82, 83, 84, 1000, 5000, 101332, 101333, 13034430, 13034431}
	for _, e := range samples {
		l := LevelFromExperience(e)
		assert.GreaterOrEqual(t, e, ExperienceForLevel(l), "e=%d", e)
		if l < MaxLevel {
			assert.Less(t, e, ExperienceForLevel(l+1), "e=%d", e)
		}
	}
}

func TestExperienceToNextLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
		exp   int
		want  int
	}{
		{"レベル1・経験値0", 1, 0, 83},
		{"レベル1・途中まで", 1, 80, 3},
		{"レベル2の閾値直後", 2, 83, ExperienceForLevel(3) - 83},
		{"上限レベルでは常に0", MaxLevel, 99999999, 0},
		{"上限超過相当でも0", 121, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceToNextLevel(tt.level, tt.exp))
		})
	}
}
