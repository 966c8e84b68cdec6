// internal/leveling/leveling.go
package leveling

import "math"

// MaxLevel はレベルの上限（RuneScape式カーブの120キャップ）
const MaxLevel = 120

// ExperienceForLevel は指定レベルに到達するのに必要な累計経験値を返します。
// レベル1は常に0。それ以外は i=1..level-1 について
// floor(i + 300 * 2^(i/7)) を合計し、最後に floor(sum / 4) を返します。
// 切り捨て位置（各項と最終除算の2箇所）を変えると参照テーブルと
// 一致しなくなるため、閉形式への変形はしないこと。
func ExperienceForLevel(level int) int {
	if level <= 1 {
		return 0
	}

	var total int64
	for i := 1; i < level; i++ {
		term := math.Floor(float64(i) + 300*math.Pow(2, float64(i)/7.0))
		total += int64(term)
	}

	return int(total / 4)
}

// LevelFromExperience は累計経験値から現在レベルを導出します。
// experience >= ExperienceForLevel(L) を満たす最大の L (2..120) を返し、
// レベル2の閾値未満なら1を返します。閾値ちょうどはそのレベルに到達
// しているとみなします（境界は包含）。
func LevelFromExperience(experience int) int {
	level := 1

	for i := 2; i <= MaxLevel; i++ {
		if experience >= ExperienceForLevel(i) {
			level = i
		} else {
			break
		}
	}

	return level
}

// ExperienceToNextLevel は次のレベルまでに必要な残り経験値を返します。
// 上限レベル到達後は常に0。レベルは経験値の変更直後に必ず
// LevelFromExperience で再導出される前提なので、負値が外部に
// 見えることはありません。
func ExperienceToNextLevel(currentLevel, currentExperience int) int {
	if currentLevel >= MaxLevel {
		return 0
	}
	return ExperienceForLevel(currentLevel+1) - currentExperience
}
