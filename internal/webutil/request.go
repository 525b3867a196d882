package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"you_translator/internal/model"
)

// maxJSONBodyBytes を超えるボディは読み込みません
const maxJSONBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーになります。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição é obrigatório.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewAppError("INVALID_REQUEST_BODY", "O corpo da requisição é obrigatório.", "", model.ErrInvalidInput)
		}
		return model.NewAppError("INVALID_REQUEST_BODY", "O formato do corpo da requisição é inválido.", "", errors.Join(model.ErrInvalidInput, err))
	}
	return nil
}
