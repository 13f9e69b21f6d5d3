package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"learnroute/internal/model"
	"learnroute/internal/webutil"
)

// DevUserContextMiddleware trusts the X-User-ID header instead of a token.
// It is only mounted when auth.dev_mode is set, and by handler tests.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID header is required.", "", model.ErrUnauthorized))
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-User-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID is not a valid UUID.", "", model.ErrUnauthorized))
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
