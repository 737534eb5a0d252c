package model

// TrainRoute is a scheduled rail connection between the stations serving two airports.
type TrainRoute struct {
	Origin            string   `gorm:"column:origin;primaryKey;type:text" json:"origin"`
	Destination       string   `gorm:"column:destination;primaryKey;type:text" json:"destination"`
	Operator          string   `gorm:"column:operator;type:text;not null" json:"operator"`
	DurationMinutes   int      `gorm:"column:duration_minutes;type:integer;not null" json:"duration_minutes"`
	DistanceKm        float64  `gorm:"column:distance_km;type:numeric;not null" json:"distance_km"`
	Stops             []string `gorm:"column:stops;type:jsonb;serializer:json" json:"stops"`
	Frequency         string   `gorm:"column:frequency;type:text" json:"frequency"`
	HighSpeed         bool     `gorm:"column:high_speed;type:boolean;not null" json:"high_speed"`
	CO2PerPassengerKg float64  `gorm:"column:co2_per_passenger_kg;type:numeric;not null" json:"co2_per_passenger_kg"`
}

func (TrainRoute) TableName() string {
	return "train_route"
}

// Reversed returns the same route travelled the other way.
func (r TrainRoute) Reversed() TrainRoute {
	reversed := r
	reversed.Origin, reversed.Destination = r.Destination, r.Origin
	reversed.Stops = make([]string, len(r.Stops))
	for i, stop := range r.Stops {
		reversed.Stops[len(r.Stops)-1-i] = stop
	}
	return reversed
}

type TrainStation struct {
	AirportCode string `gorm:"column:airport_code;primaryKey;type:text" json:"airport_code"`
	StationID   string `gorm:"column:station_id;type:text;not null" json:"station_id"`
	Name        string `gorm:"column:name;type:text;not null" json:"station_name"`
	City        string `gorm:"column:city;type:text;not null" json:"city"`
	CountryCode string `gorm:"column:country_code;type:text;not null" json:"country"`
}

func (TrainStation) TableName() string {
	return "train_station"
}

// SubstitutionRoute is a train journey that can replace a flight between two airports.
type SubstitutionRoute struct {
	Origin             string  `gorm:"column:origin;primaryKey;type:text" json:"origin_airport"`
	Destination        string  `gorm:"column:destination;primaryKey;type:text" json:"destination_airport"`
	TrainType          string  `gorm:"column:train_type;type:text;not null" json:"train_type"`
	OriginStation      string  `gorm:"column:origin_station;type:text;not null" json:"origin_station"`
	DestinationStation string  `gorm:"column:destination_station;type:text;not null" json:"destination_station"`
	RouteName          string  `gorm:"column:route_name;type:text;not null" json:"route_name"`
	DistanceKm         float64 `gorm:"column:distance_km;type:numeric;not null" json:"distance_km"`
	DurationMinutes    int     `gorm:"column:duration_minutes;type:integer;not null" json:"duration_minutes"`
	TypicalPriceEur    float64 `gorm:"column:typical_price_eur;type:numeric;not null" json:"typical_price_eur"`
}

func (SubstitutionRoute) TableName() string {
	return "substitution_route"
}
