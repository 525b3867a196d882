package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR" // ポルトガル語(ブラジル)ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptbr_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// fieldNameTranslations は json タグ名をユーザー向けの表示名に変換します
var fieldNameTranslations = map[string]string{
	"name":             "nome",
	"first_name":       "primeiro nome",
	"email":            "email",
	"password":         "senha",
	"token":            "token",
	"mother_language":  "idioma nativo",
	"current_level":    "nível",
	"original_phrase":  "frase original",
	"user_translation": "tradução",
	"practice_mode":    "modo de prática",
	"theme":            "tema",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	var found bool
	Trans, found = uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ptbr_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// {0} はフィールドの表示名、{1} はタグのパラメータ
	overrides := map[string]string{
		"required": "O campo {0} é obrigatório.",
		"email":    "O campo {0} deve ser um email válido.",
		"min":      "O campo {0} deve ter pelo menos {1} caracteres.",
		"max":      "O campo {0} deve ter no máximo {1} caracteres.",
		"oneof":    "O campo {0} deve ser um de: {1}.",
	}
	for tag, msg := range overrides {
		tag, msg := tag, msg
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}
