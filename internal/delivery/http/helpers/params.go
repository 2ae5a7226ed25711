package helpers

import (
	"fmt"
	"net/http"
	"strconv"
)

// PathID parses the positive integer path value name. On failure it writes a
// 400 JSON error and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, fmt.Sprintf("invalid %s: %q", name, raw))
		return 0, false
	}
	return id, true
}
