package helpers

import (
	"encoding/json"
	"net/http"
	"strings"

	"eventbooking/internal/domain"
)

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements domain.Validator, runs Validate(). On decode or validation
// failure it writes a 400 JSON error listing every violation and returns false.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	if v, ok := dest.(domain.Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}
