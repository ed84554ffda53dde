package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zipcode-web/internal/application/middleware"
	"zipcode-web/internal/application/view"
	"zipcode-web/internal/domain/model"
	"zipcode-web/internal/domain/validator"
	"zipcode-web/pkg/msg"
)

// UserController echoes the visitor name back
type UserController struct {
	api   *echo.Group
	paths Paths
}

func NewUserController(api *echo.Group, paths Paths) *UserController {
	return &UserController{api: api, paths: paths}
}

// InitUserRoutes initializes the name entry routes
func (controller *UserController) InitUserRoutes() {
	controller.api.GET(UserFormRoute, controller.UserForm)
	controller.api.GET(UserResultsRoute, controller.UserResults)
	controller.api.POST(UserResultsRoute, controller.UserResults)
}

func (controller *UserController) UserForm(c echo.Context) error {
	return renderForm(c, "userform.html", model.UserForm{}, nil)
}

// UserResults redirects to the form when called without any parameter
func (controller *UserController) UserResults(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form body")
	}
	if len(params) == 0 {
		middleware.AddFlash(c, msg.GetMessage("user.missing-params"))
		return c.Redirect(http.StatusSeeOther, controller.paths.To(UserFormRoute))
	}

	form := model.UserForm{
		Username: params.Get("username"),
		Fullname: params.Get("fullname"),
	}
	if result := validator.User(form); !result.Valid() {
		return renderForm(c, "userform.html", form, result.FieldErrors())
	}

	return c.Render(http.StatusOK, "userresults.html", view.Data{"Form": form})
}
