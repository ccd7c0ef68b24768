package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"multisuministros-codes/pkg/session"
)

const sessionKey = "session"

// TokenParser turns a bearer token into a session; *session.Signer satisfies it.
type TokenParser interface {
	Parse(token string) (session.Session, error)
}

// SessionMiddleware attaches the caller's session to the context. Requests
// without an Authorization header continue as anonymous; a bad token is 401.
func SessionMiddleware(p TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				WithSession(c, session.Session{})
				return next(c)
			}
			token, ok := strings.CutPrefix(raw, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization must be a Bearer token"})
			}
			s, err := p.Parse(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			WithSession(c, s)
			return next(c)
		}
	}
}

// RequireRole rejects anonymous callers with 401 and, when roles are given,
// callers holding none of them with 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c)
			if !s.IsAuthenticated {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			if len(roles) > 0 && !s.HasRole(roles...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "role not allowed"})
			}
			return next(c)
		}
	}
}

func WithSession(c echo.Context, s session.Session) { c.Set(sessionKey, s) }

// SessionFrom returns the anonymous session when none was attached.
func SessionFrom(c echo.Context) session.Session {
	s, _ := c.Get(sessionKey).(session.Session)
	return s
}
