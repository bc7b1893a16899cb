package api

import (
	"net/http"
	"strings"

	"github.com/altos-estudio/altos-backend/i18n"
	"github.com/go-chi/chi/v5"
)

const localeCookieName = "preferred_locale"

// preferredLocale returns the visitor's locale from the preference cookie,
// falling back to the default.
func preferredLocale(r *http.Request) string {
	if cookie, err := r.Cookie(localeCookieName); err == nil && i18n.IsValid(cookie.Value) {
		return cookie.Value
	}
	return i18n.DefaultLocale
}

// localeMiddleware validates the {locale} URL segment, remembers it in the
// preference cookie, and stores it on the request context. An unknown
// segment redirects to the same path under the preferred locale.
func localeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := chi.URLParam(r, "locale")
		if !i18n.IsValid(locale) {
			redirectToLocale(w, r)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     localeCookieName,
			Value:    locale,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(ctxWithLocale(r.Context(), locale)))
	})
}

// redirectToLocale sends an unprefixed public path to its locale-prefixed
// equivalent, keeping the path intact. A path that already starts with a
// valid locale is genuinely unknown and gets a 404; re-prefixing it would
// redirect forever.
func redirectToLocale(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/"); i18n.IsValid(segment) {
		http.NotFound(w, r)
		return
	}

	locale := preferredLocale(r)
	if path == "" || path == "/" {
		http.Redirect(w, r, "/"+locale, http.StatusTemporaryRedirect)
		return
	}

	http.Redirect(w, r, "/"+locale+path, http.StatusTemporaryRedirect)
}
