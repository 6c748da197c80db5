package server

import (
	"net/http"

	"github.com/sketchwell/collabsync/internal/auth"
	"github.com/sketchwell/collabsync/internal/logger"
)

// withAuth enforces bearer-token authentication when a token sign key is
// configured. Without a key the storage API is open and the middleware
// passes every request through.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.auth.TokenSignKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := auth.ParseBearer(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if _, err = auth.Verify(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer); err != nil {
			log.Err(err).Msg("invalid bearer token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
