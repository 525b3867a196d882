package service

import (
	"math"
	"time"

	"you_translator/internal/model"
)

// ApplyAttempt は1回分のスコアを反映したプロフィールを返します。引数は変更しません。
//
// ストリークは暦日 (UTC) の差で決まります。
//   - 前回の記録なし: 1
//   - 同じ日: 変化なし
//   - 翌日: +1
//   - 2日以上空いた: 1
func ApplyAttempt(profile model.UserProfile, score float64, now time.Time) model.UserProfile {
	n := float64(profile.ExercisesCompleted)
	profile.AverageScore = round1((profile.AverageScore*n + score) / (n + 1))
	profile.ExercisesCompleted++
	profile.Points = int(math.Round(float64(profile.Points) + score*10))

	today := calendarDay(now)
	if profile.LastExerciseDate == "" {
		profile.Streak = 1
	} else if last, err := time.Parse(model.LastExerciseDateLayout, profile.LastExerciseDate); err != nil {
		// 壊れた日付は記録なしと同じ扱い
		profile.Streak = 1
	} else {
		switch days := int(today.Sub(last).Hours() / 24); {
		case days == 0:
		case days == 1:
			profile.Streak++
		default:
			profile.Streak = 1
		}
	}
	profile.LastExerciseDate = today.Format(model.LastExerciseDateLayout)
	return profile
}

// calendarDay は時刻を UTC の 0 時に切り詰めます
func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
