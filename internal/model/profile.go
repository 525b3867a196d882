package model

import "fmt"

// Language はユーザーの母語です (翻訳元の言語)
type Language string

const (
	LanguagePortuguese Language = "Portuguese"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
)

func (l Language) Valid() bool {
	switch l {
	case LanguagePortuguese, LanguageSpanish, LanguageFrench:
		return true
	}
	return false
}

// Proficiency は学習レベルです
type Proficiency string

const (
	ProficiencyBasic        Proficiency = "Basic"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBasic, ProficiencyIntermediate, ProficiencyAdvanced:
		return true
	}
	return false
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// LastExerciseDateLayout は LastExerciseDate の書式 (暦日) です
const LastExerciseDateLayout = "2006-01-02"

// UserProfile は端末側 (ローカルストア) で保持する学習プロフィールです。
// AverageScore はこれまでの全回答スコアの平均で、Points は減少しません。
type UserProfile struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Avatar             string      `json:"avatar,omitempty"`
	NativeLanguage     Language    `json:"native_language"`
	Proficiency        Proficiency `json:"proficiency"`
	Points             int         `json:"points"`
	ExercisesCompleted int         `json:"exercises_completed"`
	AverageScore       float64     `json:"average_score"`
	Streak             int         `json:"streak"`
	LastExerciseDate   string      `json:"last_exercise_date,omitempty"`
	Theme              Theme       `json:"theme"`
}

// ProfileUpdate はプロフィールの部分更新です。nil のフィールドは変更しません。
type ProfileUpdate struct {
	Name           *string      `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	NativeLanguage *Language    `json:"native_language,omitempty"`
	Proficiency    *Proficiency `json:"proficiency,omitempty"`
	Theme          *Theme       `json:"theme,omitempty"`
	Avatar         *string      `json:"avatar,omitempty" validate:"omitempty,url"`
}

// Validate は列挙値のフィールドを個別に検証します
func (u ProfileUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return NewAppError("VALIDATION_ERROR", "O nome não pode ficar vazio.", "name", ErrInvalidInput)
	}
	if u.NativeLanguage != nil && !u.NativeLanguage.Valid() {
		return NewAppError("VALIDATION_ERROR", fmt.Sprintf("Idioma inválido: %s", *u.NativeLanguage), "native_language", ErrInvalidInput)
	}
	if u.Proficiency != nil && !u.Proficiency.Valid() {
		return NewAppError("VALIDATION_ERROR", fmt.Sprintf("Nível inválido: %s", *u.Proficiency), "proficiency", ErrInvalidInput)
	}
	if u.Theme != nil && !u.Theme.Valid() {
		return NewAppError("VALIDATION_ERROR", fmt.Sprintf("Tema inválido: %s", *u.Theme), "theme", ErrInvalidInput)
	}
	return nil
}

// Apply は検証済みの更新をプロフィールに反映した新しい値を返します
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.NativeLanguage != nil {
		p.NativeLanguage = *u.NativeLanguage
	}
	if u.Proficiency != nil {
		p.Proficiency = *u.Proficiency
	}
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	return p
}
