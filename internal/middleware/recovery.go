package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/userd/userd/internal/apperr"
)

// Recoverer is a middleware that recovers from panics.
// It logs the panic and returns the internal-error envelope, so clients
// always receive a JSON body.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						slog.String("request_id", GetRequestID(r.Context())),
						slog.Any("panic", rvr),
						slog.String("stack", string(debug.Stack())),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(apperr.Internal.Status)
					json.NewEncoder(w).Encode(map[string]string{"error": apperr.Internal.Message})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
