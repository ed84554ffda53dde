package entity

import "fmt"

// City belongs to exactly one State; (Name, StateID) is unique.
type City struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"column:name;type:varchar(64);not null;uniqueIndex:idx_cities_name_state"`
	StateID uint   `json:"stateId" gorm:"column:state_id;not null;uniqueIndex:idx_cities_name_state"`
	State   *State `json:"state,omitempty" gorm:"foreignKey:StateID"`
	Zips    []Zip  `json:"zips,omitempty" gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
}

func (City) TableName() string {
	return "cities"
}

func (c City) String() string {
	if c.State != nil {
		return fmt.Sprintf("%s (State: %s)", c.Name, c.State.Abbrev)
	}
	return c.Name
}
