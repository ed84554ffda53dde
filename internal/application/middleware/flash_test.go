package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlashServer(secret string) *echo.Echo {
	e := echo.New()
	e.Use(NewFlashes([]byte(secret), "flash-test").Middleware())
	e.GET("/add", func(c echo.Context) error {
		AddFlash(c, "first")
		AddFlash(c, "second")
		return c.NoContent(http.StatusSeeOther)
	})
	e.GET("/pop", func(c echo.Context) error {
		return c.JSON(http.StatusOK, PopFlashes(c))
	})
	return e
}

// lastCookies keeps the last Set-Cookie per name, like a browser
func lastCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	for _, cookie := range rec.Result().Cookies() {
		byName[cookie.Name] = cookie
	}
	cookies := make([]*http.Cookie, 0, len(byName))
	for _, cookie := range byName {
		cookies = append(cookies, cookie)
	}
	return cookies
}

func serve(e *echo.Echo, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFlashesArePoppedOnce(t *testing.T) {
	e := newFlashServer("secret")

	added := serve(e, "/add", nil)
	cookies := lastCookies(added)
	require.NotEmpty(t, cookies)

	popped := serve(e, "/pop", cookies)
	assert.JSONEq(t, `["first","second"]`, popped.Body.String())

	again := serve(e, "/pop", lastCookies(popped))
	assert.JSONEq(t, `null`, again.Body.String())
}

func TestFlashesSignedWithAnotherKeyAreDiscarded(t *testing.T) {
	added := serve(newFlashServer("one key"), "/add", nil)

	popped := serve(newFlashServer("another key"), "/pop", lastCookies(added))

	assert.Equal(t, http.StatusOK, popped.Code)
	assert.JSONEq(t, `null`, popped.Body.String())
}

func TestFlashesWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	AddFlash(c, "ignored")
	assert.Nil(t, PopFlashes(c))
}
