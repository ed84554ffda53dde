package model

import "zipcode-web/internal/domain/entity"

// ZipLookupForm is the home page form.
type ZipLookupForm struct {
	Name  string `form:"name" json:"name"`
	State string `form:"state" json:"state"`
}

// UserForm is the name entry form.
type UserForm struct {
	Username string `form:"username" query:"username" json:"username"`
	Fullname string `form:"fullname" query:"fullname" json:"fullname"`
}

// StateNameForm is the state to zips lookup form.
type StateNameForm struct {
	State string `form:"state" query:"state" json:"state"`
}

// Registration is the outcome of a successful submission.
type Registration struct {
	State entity.State `json:"state"`
	City  entity.City  `json:"city"`
	Zips  []entity.Zip `json:"zips"`
}

// StateZips is the aggregated list of ZIP codes of one state.
type StateZips struct {
	StateName string       `json:"stateName"`
	Found     bool         `json:"found"`
	Zips      []entity.Zip `json:"zips"`
}

// ZipRegisteredEvent is published once a city and its ZIP codes are committed.
type ZipRegisteredEvent struct {
	ID           string   `json:"id"`
	State        string   `json:"state"`
	StateAbbrev  string   `json:"stateAbbrev"`
	City         string   `json:"city"`
	ZipCodes     []string `json:"zipCodes"`
	RegisteredAt string   `json:"registeredAt"`
}
