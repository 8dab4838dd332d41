package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const adminSessionKey = "admin_authenticated"

// NewSessionStore builds the cookie-backed session store for the admin
// dashboard. The cookie itself is encrypted app-wide by encryptcookie.
func NewSessionStore() *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:admin_session",
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// RequireAdmin guards dashboard routes. Unauthenticated browsers are sent
// back to the login page, never given a JSON error: this surface is HTML.
func RequireAdmin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdminSession(c, store) {
			return c.Redirect("/")
		}
		return c.Next()
	}
}

// IsAdminSession reports whether the request carries an authenticated
// admin session.
func IsAdminSession(c *fiber.Ctx, store *session.Store) bool {
	sess, err := store.Get(c)
	if err != nil {
		return false
	}
	authed, _ := sess.Get(adminSessionKey).(bool)
	return authed
}

// MarkAdminSession flags the current session as admin-authenticated.
func MarkAdminSession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(adminSessionKey, true)
	return sess.Save()
}

// ClearAdminSession destroys the session. Destruction errors are ignored:
// logout must always land the browser on the login page.
func ClearAdminSession(c *fiber.Ctx, store *session.Store) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	_ = sess.Destroy()
}
