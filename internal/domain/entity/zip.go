package entity

// Zip is one postal code of a City. Codes are stored as text to keep leading zeros.
type Zip struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	ZipCode string `json:"zipCode" gorm:"column:zip_code;type:varchar(10);not null;index"`
	CityID  uint   `json:"cityId" gorm:"column:city_id;not null;index"`
	City    *City  `json:"city,omitempty" gorm:"foreignKey:CityID"`
}

func (Zip) TableName() string {
	return "zips"
}
