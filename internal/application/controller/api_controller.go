package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zipcode-web/internal/domain/model"
	"zipcode-web/internal/domain/usecase/zipcode"
	"zipcode-web/pkg/util/numberutils"
)

// ApiController exposes the stored locations as JSON
type ApiController struct {
	api     *echo.Group
	useCase zipcode.UseCase
}

func NewApiController(api *echo.Group, useCase zipcode.UseCase) *ApiController {
	return &ApiController{api: api, useCase: useCase}
}

// InitApiRoutes initializes the JSON routes below /api
func (controller *ApiController) InitApiRoutes() {
	group := controller.api.Group("/api")
	group.GET("/states", controller.FindStates)
	group.GET("/states/:abbrev/zips", controller.FindStateZips)
	group.GET("/cities", controller.FindCities)
	group.GET("/zips", controller.FindZips)
}

func pageRequest(c echo.Context) model.PageRequest {
	return model.NewPageRequest(
		numberutils.ToIntWithDefault(c.QueryParam("page"), 0),
		numberutils.ToIntWithDefault(c.QueryParam("size"), model.DefaultPageSize),
	)
}

// FindStates godoc
// @Summary List states
// @Description Paginated list of the states on file
// @Tags locations
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} model.Page[entity.State] "Paginated list of states"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/states [get]
func (controller *ApiController) FindStates(c echo.Context) error {
	page, err := controller.useCase.FindStates(c.Request().Context(), pageRequest(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, page)
}

// FindCities godoc
// @Summary List cities
// @Description Paginated list of the cities on file with their state
// @Tags locations
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} model.Page[entity.City] "Paginated list of cities"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/cities [get]
func (controller *ApiController) FindCities(c echo.Context) error {
	page, err := controller.useCase.FindCities(c.Request().Context(), pageRequest(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, page)
}

// FindZips godoc
// @Summary List ZIP codes
// @Description Paginated list of the ZIP codes on file with their city
// @Tags locations
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} model.Page[entity.Zip] "Paginated list of ZIP codes"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/zips [get]
func (controller *ApiController) FindZips(c echo.Context) error {
	page, err := controller.useCase.FindZips(c.Request().Context(), pageRequest(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, page)
}

// FindStateZips godoc
// @Summary ZIP codes of a state
// @Description Every ZIP code of every city of the state with the given abbreviation
// @Tags locations
// @Produce json
// @Param abbrev path string true "Two letter state abbreviation"
// @Success 200 {object} model.StateZips "ZIP codes of the state"
// @Failure 404 {object} map[string]string "State not on file"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/states/{abbrev}/zips [get]
func (controller *ApiController) FindStateZips(c echo.Context) error {
	stateZips, err := controller.useCase.StateAbbrevToZips(c.Request().Context(), c.Param("abbrev"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !stateZips.Found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "State " + stateZips.StateName + " not found"})
	}
	return c.JSON(http.StatusOK, stateZips)
}
