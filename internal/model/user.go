package model

import (
	"time"

	"github.com/google/uuid"
)

// 言語コード (users.mother_language)
const (
	LanguageCodePortuguese = "pt-BR"
	LanguageCodeSpanish    = "es-ES"
	LanguageCodeFrench     = "fr-FR"
)

// レベルコード (users.current_level)
const (
	LevelCodeBeginner     = "beginner"
	LevelCodeIntermediate = "intermediate"
	LevelCodeAdvanced     = "advanced"
)

var languageByCode = map[string]Language{
	LanguageCodePortuguese: LanguagePortuguese,
	LanguageCodeSpanish:    LanguageSpanish,
	LanguageCodeFrench:     LanguageFrench,
}

var proficiencyByLevelCode = map[string]Proficiency{
	LevelCodeBeginner:     ProficiencyBasic,
	LevelCodeIntermediate: ProficiencyIntermediate,
	LevelCodeAdvanced:     ProficiencyAdvanced,
}

// LanguageFromCode は pt-BR などのコードを Language に変換します。未知のコードは Portuguese になります。
func LanguageFromCode(code string) Language {
	if l, ok := languageByCode[code]; ok {
		return l
	}
	return LanguagePortuguese
}

// CodeFromLanguage は LanguageFromCode の逆変換です
func CodeFromLanguage(l Language) string {
	for code, lang := range languageByCode {
		if lang == l {
			return code
		}
	}
	return LanguageCodePortuguese
}

// ProficiencyFromLevelCode は beginner などのコードを Proficiency に変換します。未知のコードは Basic になります。
func ProficiencyFromLevelCode(code string) Proficiency {
	if p, ok := proficiencyByLevelCode[code]; ok {
		return p
	}
	return ProficiencyBasic
}

func LevelCodeFromProficiency(p Proficiency) string {
	for code, prof := range proficiencyByLevelCode {
		if prof == p {
			return code
		}
	}
	return LevelCodeBeginner
}

// User はバックエンドが正とするユーザーレコードです
type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	Name              string    `json:"name"`
	FirstName         string    `json:"first_name"`
	AvatarURL         string    `json:"avatar_url"`
	MotherLanguage    string    `json:"mother_language"`
	StudyLanguage     string    `gorm:"default:en-US" json:"study_language"`
	CurrentLevel      string    `json:"current_level"`
	XPScore           int       `gorm:"default:0" json:"xp_score"`
	TotalTranslations int       `gorm:"default:0" json:"total_translations"`
	HitPercentage     float64   `gorm:"default:0" json:"hit_percentage"`
	SubscriptionPlan  string    `gorm:"default:free" json:"subscription_plan"`
	Enabled           bool      `gorm:"not null" json:"enabled"`
	EmailConfirmed    bool      `gorm:"default:false" json:"email_confirmed"`
	PasswordHash      string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// NeedsOnboarding はオンボーディング必須項目が欠けているかを返します
func (u *User) NeedsOnboarding() bool {
	return u.FirstName == "" || u.MotherLanguage == "" || u.CurrentLevel == ""
}

// DisplayName はランキング等で使う表示名です
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Name
}

// UserUpdate はユーザーレコードの部分更新です。nil のフィールドは変更しません。
type UserUpdate struct {
	Name           *string `json:"name,omitempty"`
	FirstName      *string `json:"first_name,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	MotherLanguage *string `json:"mother_language,omitempty"`
	StudyLanguage  *string `json:"study_language,omitempty"`
	CurrentLevel   *string `json:"current_level,omitempty"`
}

// IsEmpty は更新対象が1つもないかを返します
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.FirstName == nil && u.AvatarURL == nil &&
		u.MotherLanguage == nil && u.StudyLanguage == nil && u.CurrentLevel == nil
}

// Validate はフィールドごとに値を検証します
func (u UserUpdate) Validate() error {
	if u.Name != nil && (len(*u.Name) == 0 || len(*u.Name) > 100) {
		return NewAppError("VALIDATION_ERROR", "O nome deve ter entre 1 e 100 caracteres.", "name", ErrInvalidInput)
	}
	if u.FirstName != nil && (len(*u.FirstName) == 0 || len(*u.FirstName) > 100) {
		return NewAppError("VALIDATION_ERROR", "O primeiro nome deve ter entre 1 e 100 caracteres.", "first_name", ErrInvalidInput)
	}
	if u.MotherLanguage != nil {
		if _, ok := languageByCode[*u.MotherLanguage]; !ok {
			return NewAppError("VALIDATION_ERROR", "Idioma nativo inválido.", "mother_language", ErrInvalidInput)
		}
	}
	if u.CurrentLevel != nil {
		if _, ok := proficiencyByLevelCode[*u.CurrentLevel]; !ok {
			return NewAppError("VALIDATION_ERROR", "Nível inválido.", "current_level", ErrInvalidInput)
		}
	}
	return nil
}

// Columns は gorm の Updates に渡すカラムマップを返します
func (u UserUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.FirstName != nil {
		cols["first_name"] = *u.FirstName
	}
	if u.AvatarURL != nil {
		cols["avatar_url"] = *u.AvatarURL
	}
	if u.MotherLanguage != nil {
		cols["mother_language"] = *u.MotherLanguage
	}
	if u.StudyLanguage != nil {
		cols["study_language"] = *u.StudyLanguage
	}
	if u.CurrentLevel != nil {
		cols["current_level"] = *u.CurrentLevel
	}
	return cols
}

// UserCounters は translations から再計算する集計値です
type UserCounters struct {
	XPScore           int
	TotalTranslations int
	HitPercentage     float64
}

// OnboardingRequest はオンボーディング完了APIのリクエストボディ
type OnboardingRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=1,max=100"`
	MotherLanguage string `json:"mother_language" validate:"required,oneof=pt-BR es-ES fr-FR"`
	CurrentLevel   string `json:"current_level" validate:"required,oneof=beginner intermediate advanced"`
}

// UpdateProfileRequest はプロフィール更新APIのリクエストボディ
type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	MotherLanguage *string `json:"mother_language,omitempty" validate:"omitempty,oneof=pt-BR es-ES fr-FR"`
	CurrentLevel   *string `json:"current_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Theme          *Theme  `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
}

// BootstrapResult はサインイン直後の初期化結果です
type BootstrapResult struct {
	NeedsOnboarding bool         `json:"needs_onboarding"`
	User            *User        `json:"user,omitempty"`
	Profile         *UserProfile `json:"profile,omitempty"`
}
