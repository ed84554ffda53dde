package middleware

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"zipcode-web/pkg/log"
)

const flashesContextKey = "flashes"

// Flashes keeps one-shot notices in a signed cookie between a redirect and the next rendered page
type Flashes struct {
	store       sessions.Store
	sessionName string
}

// NewFlashes signs the cookie with secretKey
func NewFlashes(secretKey []byte, sessionName string) *Flashes {
	store := sessions.NewCookieStore(secretKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
	}
	return &Flashes{store: store, sessionName: sessionName}
}

// Middleware exposes the flashes to handlers and to the renderer
func (f *Flashes) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(flashesContextKey, f)
			return next(c)
		}
	}
}

// Add queues message for the next rendered page
func (f *Flashes) Add(c echo.Context, message string) error {
	session, err := f.store.Get(c.Request(), f.sessionName)
	if err != nil && session == nil {
		return err
	}
	session.AddFlash(message)
	return session.Save(c.Request(), c.Response())
}

// Pop returns and clears the queued messages
func (f *Flashes) Pop(c echo.Context) []string {
	session, err := f.store.Get(c.Request(), f.sessionName)
	if session == nil {
		return nil
	}
	if err != nil {
		// a cookie signed with another key: start over with an empty session
		log.Debugw("discarding unreadable session", "error", err)
	}

	pending := session.Flashes()
	if len(pending) == 0 {
		return nil
	}

	messages := make([]string, 0, len(pending))
	for _, flash := range pending {
		if message, ok := flash.(string); ok {
			messages = append(messages, message)
		}
	}
	if err = session.Save(c.Request(), c.Response()); err != nil {
		log.Warnw("failed to clear flashes", "error", err)
	}
	return messages
}

// AddFlash queues message through the Flashes registered on c
func AddFlash(c echo.Context, message string) {
	f, ok := c.Get(flashesContextKey).(*Flashes)
	if !ok {
		return
	}
	if err := f.Add(c, message); err != nil {
		log.Warnw("failed to store flash", "error", err)
	}
}

// PopFlashes is the renderer flash source
func PopFlashes(c echo.Context) []string {
	f, ok := c.Get(flashesContextKey).(*Flashes)
	if !ok {
		return nil
	}
	return f.Pop(c)
}
