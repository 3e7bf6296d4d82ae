package transport

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/taskora/client-go/application/guard"
	"github.com/taskora/client-go/application/session"
	"github.com/taskora/client-go/constant"
	utilsContext "github.com/taskora/client-go/utils/context"
)

// GuardMiddleware gates a route group on session state. Unauthenticated
// requests redirect to the login view carrying the original destination;
// authenticated requests with an insufficient role redirect home. The SPA's
// history-replacing redirect has no HTTP equivalent, so both render as 303s.
// An empty role list admits any authenticated user.
func GuardMiddleware(sessions session.SessionApp, allowed ...constant.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := sessions.Snapshot()

			switch guard.Evaluate(state, allowed) {
			case guard.RedirectLogin:
				dest := "/login?redirect=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, dest, http.StatusSeeOther)
			case guard.RedirectHome:
				http.Redirect(w, r, "/", http.StatusSeeOther)
			default:
				ctx := utilsContext.WithSession(r.Context(), state)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}
