package api

import (
	"context"

	"github.com/altos-estudio/altos-backend/i18n"
)

type keyType string

const (
	localeKey  keyType = "locale"
	sessionKey keyType = "session"
)

// ctxWithLocale adds the resolved locale to the context
func ctxWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// ctxLocale retrieves the resolved locale, defaulting when unset
func ctxLocale(ctx context.Context) string {
	if value, ok := ctx.Value(localeKey).(string); ok && value != "" {
		return value
	}
	return i18n.DefaultLocale
}

// ctxWithSession adds the authenticated admin session to the context
func ctxWithSession(ctx context.Context, session *sessionClaims) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxSession retrieves the authenticated admin session, or nil
func ctxSession(ctx context.Context) *sessionClaims {
	if session, ok := ctx.Value(sessionKey).(*sessionClaims); ok {
		return session
	}
	return nil
}
