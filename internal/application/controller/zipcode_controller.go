package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"zipcode-web/internal/application/middleware"
	"zipcode-web/internal/application/view"
	"zipcode-web/internal/domain/model"
	"zipcode-web/internal/domain/usecase/zipcode"
	"zipcode-web/internal/domain/validator"
	"zipcode-web/pkg/log"
	"zipcode-web/pkg/msg"
)

// ZipCodeController serves the lookup form and the listing pages
type ZipCodeController struct {
	api     *echo.Group
	paths   Paths
	useCase zipcode.UseCase
}

func NewZipCodeController(api *echo.Group, paths Paths, useCase zipcode.UseCase) *ZipCodeController {
	return &ZipCodeController{api: api, paths: paths, useCase: useCase}
}

// InitZipCodeRoutes initializes the lookup form and listing routes
func (controller *ZipCodeController) InitZipCodeRoutes() {
	controller.api.GET(HomeRoute, controller.Home)
	controller.api.POST(HomeRoute, controller.Register)
	controller.api.GET(CitiesRoute, controller.Cities)
	controller.api.GET(ZipsRoute, controller.Zips)
	controller.api.GET(StatesRoute, controller.States)
	controller.api.GET(StateToZipsRoute, controller.StateToZips)
	controller.api.POST(StateToZipsRoute, controller.StateToZips)
}

func (controller *ZipCodeController) Home(c echo.Context) error {
	return renderForm(c, "base.html", model.ZipLookupForm{}, nil)
}

// Register runs the lookup. Invalid input re-renders the form, every other outcome redirects with a notice.
func (controller *ZipCodeController) Register(c echo.Context) error {
	var form model.ZipLookupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form body")
	}

	registration, err := controller.useCase.Register(c.Request().Context(), form)
	city, state := strings.TrimSpace(form.Name), strings.ToUpper(strings.TrimSpace(form.State))

	var validationErr *validator.ValidationError
	switch {
	case err == nil:
		middleware.AddFlash(c, msg.GetMessage("zipcode.saved",
			len(registration.Zips), registration.City.Name, registration.State.Abbrev))
		return c.Redirect(http.StatusSeeOther, controller.paths.To(ZipsRoute))
	case errors.As(err, &validationErr):
		return renderForm(c, "base.html", form, validationErr.Result.FieldErrors())
	case errors.Is(err, model.ErrDuplicateEntity):
		middleware.AddFlash(c, msg.GetMessage("zipcode.duplicate", city, state))
		return c.Redirect(http.StatusSeeOther, controller.paths.To(CitiesRoute))
	case errors.Is(err, model.ErrLookupNotFound):
		middleware.AddFlash(c, msg.GetMessage("zipcode.lookup-not-found", city, state))
	case errors.Is(err, model.ErrLookupUnavailable):
		middleware.AddFlash(c, msg.GetMessage("zipcode.lookup-unavailable"))
	default:
		log.Error(msg.GetMessage("zipcode.failed", city, state), zap.Error(err))
		middleware.AddFlash(c, msg.GetMessage("zipcode.failed", city, state))
	}
	return c.Redirect(http.StatusSeeOther, controller.paths.To(HomeRoute))
}

func (controller *ZipCodeController) Cities(c echo.Context) error {
	cities, err := controller.useCase.ListCities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "cities.html", view.Data{"Names": cities})
}

func (controller *ZipCodeController) Zips(c echo.Context) error {
	zips, err := controller.useCase.ListZips(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "zips.html", view.Data{"Zips": zips})
}

func (controller *ZipCodeController) States(c echo.Context) error {
	states, err := controller.useCase.ListStates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "states.html", view.Data{"States": states})
}

// StateToZips lists the ZIP codes of a state given by full name. Without a state parameter only the form is shown.
func (controller *ZipCodeController) StateToZips(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form body")
	}
	if !params.Has("state") {
		return renderForm(c, "statetozips.html", model.StateNameForm{}, nil)
	}

	form := model.StateNameForm{State: params.Get("state")}
	if result := validator.StateName(form); !result.Valid() {
		return renderForm(c, "statetozips.html", form, result.FieldErrors())
	}

	stateZips, err := controller.useCase.StateToZips(c.Request().Context(), form.State)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "statetozips.html", view.Data{
		"Form":   form,
		"Errors": map[string]string{},
		"Result": stateZips,
	})
}

func renderForm(c echo.Context, name string, form any, fieldErrors map[string]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	return c.Render(http.StatusOK, name, view.Data{"Form": form, "Errors": fieldErrors})
}
