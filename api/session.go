package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	sessionCookieName = "altos_admin_session"
	sessionLifetime   = 24 * time.Hour

	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"
)

type sessionClaims struct {
	UserID uuid.UUID `json:"sub"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// sessionMiddleware gates the admin surface. Credentials are verified by the
// auth handler; this middleware only validates the signed session cookie and
// applies the redirect policy.
type sessionMiddleware struct {
	responder Responder
	secret    []byte
}

func newSessionMiddleware(secret string) sessionMiddleware {
	logger := log.With().Str("handlerName", "sessionMiddleware").Logger()
	return sessionMiddleware{
		responder: NewResponder(logger),
		secret:    []byte(secret),
	}
}

// issue signs a session for the user and sets it as an HTTP-only cookie.
func (m sessionMiddleware) issue(w http.ResponseWriter, user *models.User) error {
	now := time.Now()
	claims := sessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(sessionLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// clear expires the session cookie.
func (m sessionMiddleware) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// parse validates the session cookie and returns its claims.
func (m sessionMiddleware) parse(r *http.Request) (*sessionClaims, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errs.ErrUnauthorized
	}
	return &claims, nil
}

// require rejects requests without a valid session. Browser navigation to the
// dashboard is redirected to the login screen; API calls get a 401 body.
func (m sessionMiddleware) require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.parse(r)
		if err != nil {
			if r.Method == http.MethodGet && !strings.HasPrefix(r.URL.Path, "/api/") {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			m.responder.WriteError(w, errs.NewUnauthorizedError("Unauthorized"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithSession(r.Context(), claims)))
	})
}

// redirectAuthenticated sends already-logged-in users from the login screen
// to the dashboard.
func (m sessionMiddleware) redirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := m.parse(r); err == nil {
			http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
