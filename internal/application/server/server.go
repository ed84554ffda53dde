// Package server assembles the echo instance: renderer, middleware, error handling and routes.
package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "zipcode-web/docs"
	"zipcode-web/internal/application/controller"
	"zipcode-web/internal/application/middleware"
	"zipcode-web/internal/application/view"
	"zipcode-web/internal/domain/usecase/health"
	"zipcode-web/internal/domain/usecase/zipcode"
)

type Config struct {
	ContextPath string
	SecretKey   []byte
	SessionName string
}

type UseCases struct {
	ZipCode zipcode.UseCase
	Health  health.UseCase
}

func New(config Config, useCases UseCases) (*echo.Echo, error) {
	paths := controller.NewPaths(config.ContextPath)

	renderer, err := view.NewRenderer(config.ContextPath, middleware.PopFlashes)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = controller.NewErrorHandler(paths)

	middleware.SetupRecover(e)
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	e.Use(middleware.NewFlashes(config.SecretKey, config.SessionName).Middleware())

	api := e.Group(paths.To(""))

	healthController := controller.NewHealthController(api, useCases.Health)
	zipCodeController := controller.NewZipCodeController(api, paths, useCases.ZipCode)
	userController := controller.NewUserController(api, paths)
	apiController := controller.NewApiController(api, useCases.ZipCode)

	healthController.InitHealthRoutes()
	zipCodeController.InitZipCodeRoutes()
	userController.InitUserRoutes()
	apiController.InitApiRoutes()

	api.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
