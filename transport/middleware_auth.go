package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kishoregurjar/lyrics-web-backend-sub000/application/auth"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/constant"
	utilsContext "github.com/kishoregurjar/lyrics-web-backend-sub000/utils/context"
	"github.com/kishoregurjar/lyrics-web-backend-sub000/utils/errors"
)

// AuthMiddleware resolves the bearer token to a live identity and enforces
// the allowed roles. The Authorization header carries the raw signed token,
// not the "Bearer <token>" convention.
func AuthMiddleware(authApp auth.AuthApp, roles ...string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")
			if tokenString == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			identity, err := authApp.Authenticate(r.Context(), tokenString)
			if err != nil {
				writeError(w, err)
				return
			}

			if len(roles) > 0 && !roleAllowed(identity.Role, roles) {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithIdentity(r.Context(), identity)))
		})
	}
}

func roleAllowed(role string, roles []string) bool {
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}
