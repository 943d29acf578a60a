package facade

import (
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
)

// Navigation guards for server-rendered frontends that embed this
// client. They wrap Clerk's header authorization so page handlers can
// rely on the session state without re-checking it.

// RequireAuthenticated redirects to loginURL when the request has no
// valid session, and passes the request through (with session claims
// in context) when it does.
func RequireAuthenticated(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, loginURL, http.StatusSeeOther)
			})),
		)(next)
	}
}

// RedirectIfAuthenticated redirects to defaultURL when the request
// already carries a valid session, for login and sign-up pages that
// signed-in members should skip.
func RedirectIfAuthenticated(defaultURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(next),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := clerk.SessionClaimsFromContext(r.Context()); ok {
				http.Redirect(w, r, defaultURL, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
