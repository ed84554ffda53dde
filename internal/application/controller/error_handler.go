package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"zipcode-web/internal/application/view"
	"zipcode-web/pkg/log"
)

// NewErrorHandler renders 404.html for unknown pages, error.html for other failures and
// JSON for requests below {contextPath}/api.
func NewErrorHandler(paths Paths) echo.HTTPErrorHandler {
	apiPrefix := paths.To("/api/")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}

		var renderErr error
		switch {
		case c.Request().Method == http.MethodHead:
			renderErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, apiPrefix):
			renderErr = c.JSON(code, map[string]string{"error": message})
		case code == http.StatusNotFound:
			renderErr = c.Render(code, "404.html", view.Data{})
		default:
			renderErr = c.Render(code, "error.html", view.Data{"Status": code, "Message": message})
		}

		if renderErr != nil {
			log.Error("failed to write error response", zap.Error(renderErr))
		}
	}
}
