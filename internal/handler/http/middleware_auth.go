package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It passes the incoming "Authorization" header to
// [service.AuthService.VerifyToken] and — on success — stores the caller's
// identity (the token's subject claim) in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Every rejection produces the same 401 response with no body detail: the
// concrete reason (missing header, malformed token, unknown signing key,
// expired token) is only logged, so callers cannot distinguish why a token
// was refused.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.VerifyToken(ctx, authHeader)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the caller identity in the context so that downstream
		// handlers can retrieve it without re-verifying the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.Identity.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
