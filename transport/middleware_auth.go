package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/pempek-storefront/application/storefront"
	"github.com/muhammadheryan/pempek-storefront/constant"
	utilsContext "github.com/muhammadheryan/pempek-storefront/utils/context"
	"github.com/muhammadheryan/pempek-storefront/utils/errors"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	"go.uber.org/zap"
)

// SessionMiddleware resolves the session cookie to a storefront, opening a
// new session and setting the cookie when it is missing, invalid or expired.
// Public paths (swagger, internal) get no session.
func SessionMiddleware(registry *storefront.Registry, signer *storefront.SessionSigner, cookieName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			var sessionID string
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				id, err := signer.Parse(cookie.Value)
				if err != nil {
					logger.Debug("[SessionMiddleware] invalid session cookie", zap.String("error", err.Error()))
				}
				sessionID = id
			}

			sessionID, sf, created := registry.Resolve(r.Context(), sessionID)
			if created {
				token, err := signer.Sign(sessionID)
				if err != nil {
					logger.Error("[SessionMiddleware] err signer.Sign", zap.String("error", err.Error()))
					writeError(w, errors.SetCustomError(constant.ErrInternal))
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(signer.TTL()),
					MaxAge:   int(signer.TTL().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := utilsContext.WithSession(r.Context(), sessionID, sf)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware rejects admin actions unless the session holds an admin token.
func AdminMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sf, ok := utilsContext.GetStorefront(r.Context())
			if !ok || !sf.Admin().IsAuthenticated() {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// isPublicPath defines which endpoints need no storefront session
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/")
}
