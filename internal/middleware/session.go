package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "dockmate_session"
	sessionContextKey = "session_id"
)

// Session makes sure every request carries a session ID, issuing a cookie
// when the client has none or sends a malformed one.
func Session(ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					id = cookie.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
			}

			cookie := &http.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			}
			if ttl > 0 {
				cookie.MaxAge = int(ttl.Seconds())
			}
			c.SetCookie(cookie)
			c.Set(sessionContextKey, id)
			return next(c)
		}
	}
}

// SessionID returns the ID set by Session, or "" outside that middleware.
func SessionID(c echo.Context) string {
	id, _ := c.Get(sessionContextKey).(string)
	return id
}
