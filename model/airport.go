package model

type Airport struct {
	AirportIata string  `gorm:"column:airport_iata;primaryKey;type:text" json:"code"`
	AirportName string  `gorm:"column:airport_name;type:text;not null" json:"name"`
	CityName    string  `gorm:"column:city_name;type:text;not null" json:"city"`
	CountryCode string  `gorm:"column:country_code;type:text;not null" json:"country"`
	Latitude    float64 `gorm:"column:latitude;type:numeric;not null" json:"latitude"`
	Longitude   float64 `gorm:"column:longitude;type:numeric;not null" json:"longitude"`
}

func (Airport) TableName() string {
	return "airport"
}
