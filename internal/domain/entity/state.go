package entity

// State is a US state, created the first time one of its cities is registered.
type State struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"column:name;type:varchar(64);not null"`
	Abbrev string `json:"abbrev" gorm:"column:abbrev;type:varchar(2);not null;uniqueIndex"`
	Cities []City `json:"cities,omitempty" gorm:"foreignKey:StateID;constraint:OnDelete:RESTRICT"`
}

func (State) TableName() string {
	return "states"
}
