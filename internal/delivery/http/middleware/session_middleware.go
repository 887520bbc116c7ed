package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultCookieName = "storefront_session"
	defaultSessionTTL = 24 * time.Hour

	csrfHeader    = "X-CSRF-Token"
	csrfFormField = "csrf_token"
)

// SessionMiddleware binds every request to a storefront session: it issues
// the session cookie, materializes the session state in the CartStore and
// enforces the anti-forgery token on mutating routes.
type SessionMiddleware struct {
	cookieName string
	ttl        time.Duration
	store      service.CartStore
	logger     *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(cfg *config.Config, store service.CartStore, logger *slog.Logger) *SessionMiddleware {
	cookieName := defaultCookieName
	ttl := defaultSessionTTL
	if cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			cookieName = cfg.Session.CookieName
		}
		if cfg.Session.TTL > 0 {
			ttl = cfg.Session.TTL
		}
	}

	return &SessionMiddleware{
		cookieName: cookieName,
		ttl:        ttl,
		store:      store,
		logger:     logger,
	}
}

// EnsureSession guarantees the request carries a session ID cookie and that
// a session with an anti-forgery token exists in the store. The session ID
// is placed in the echo context for handlers.
func (m *SessionMiddleware) EnsureSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, issued, err := m.resolveSessionID(c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		sess, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			token, err := newSecureToken()
			if err != nil {
				return err
			}
			sess = entity.NewCheckoutSession(token)
			if err := m.store.Save(ctx, sessionID, sess); err != nil {
				return err
			}
		}

		if issued {
			m.setSessionCookie(c, sessionID)
		}
		deliverycontext.SetSessionID(c, sessionID)

		return next(c)
	}
}

// VerifyCSRF rejects mutating requests whose anti-forgery token does not
// match the session's. The token is read from the X-CSRF-Token header with
// a form field fallback.
func (m *SessionMiddleware) VerifyCSRF(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := deliverycontext.GetSessionID(c)
		if sessionID == "" {
			return domainerrors.ErrForbidden
		}

		sess, err := m.store.Load(c.Request().Context(), sessionID)
		if err != nil {
			return err
		}
		if sess == nil || sess.CSRFToken == "" {
			return domainerrors.ErrForbidden
		}

		token := c.Request().Header.Get(csrfHeader)
		if token == "" {
			token = c.FormValue(csrfFormField)
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(sess.CSRFToken)) != 1 {
			m.logger.Warn("Rejected request with bad anti-forgery token",
				slog.String("path", c.Request().URL.Path),
			)

			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// resolveSessionID reads the session cookie, minting a fresh ID when the
// cookie is missing or empty. The second return reports whether a new
// cookie must be issued.
func (m *SessionMiddleware) resolveSessionID(c echo.Context) (string, bool, error) {
	cookie, err := c.Cookie(m.cookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, false, nil
	}

	sessionID, err := newSecureToken()
	if err != nil {
		return "", false, err
	}

	return sessionID, true, nil
}

func (m *SessionMiddleware) setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// newSecureToken returns 32 bytes of hex-encoded randomness.
func newSecureToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return hex.EncodeToString(buf), nil
}
