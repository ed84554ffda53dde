package controller

import "strings"

// Paths builds redirect targets below the configured context path
type Paths struct {
	contextPath string
}

func NewPaths(contextPath string) Paths {
	return Paths{contextPath: strings.TrimRight(contextPath, "/")}
}

func (p Paths) To(route string) string {
	return p.contextPath + route
}

const (
	HomeRoute        = "/"
	CitiesRoute      = "/cities"
	ZipsRoute        = "/zips"
	StatesRoute      = "/states"
	UserFormRoute    = "/userform"
	UserResultsRoute = "/userresults"
	StateToZipsRoute = "/statetozips"
)
