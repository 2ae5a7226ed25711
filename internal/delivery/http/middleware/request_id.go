package middleware

import (
	"net/http"

	"eventbooking/internal/requestid"
)

// RequestID reuses the inbound X-Request-ID or generates one, stores it in the
// request context for outbound peer calls and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" {
			id = requestid.New()
		}
		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
	})
}
