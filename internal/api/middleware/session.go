package middleware

import (
	"net/http"

	"github.com/avtoservice/admin-console/internal/infrastructure/session"
)

// RequireSession is the route guard: when the session store holds no
// token the request is redirected to the login page. The check runs on
// every request; the decision is never cached.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.Current().Authenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
