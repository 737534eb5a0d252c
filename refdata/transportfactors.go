package refdata

const DefaultVehicle = "taxi"

// kg CO2e per vehicle-km
var vehicleFactors = map[string]float64{
	"taxi":               0.149,
	"uber_x":             0.121,
	"uber_xl":            0.180,
	"uber_black":         0.195,
	"private_car_petrol": 0.170,
	"private_car_diesel": 0.163,
	"private_car_hybrid": 0.106,
	"electric_car":       0.053,
	"electric_uber":      0.048,

	"bus":   0.089,
	"coach": 0.027,
	"metro": 0.029,
	"tram":  0.032,
}

type TransferDistance struct {
	City           string  `json:"city"`
	DistanceKm     float64 `json:"distance_km"`
	TypicalFareEur float64 `json:"typical_fare_eur"`
}

const DefaultTransferDistanceKm = 25.0

// one-way airport to city centre
var transferDistances = map[string]TransferDistance{
	"LHR": {"London", 25, 60},
	"LGW": {"London", 45, 80},
	"CDG": {"Paris", 32, 55},
	"ORY": {"Paris", 18, 35},
	"FRA": {"Frankfurt", 14, 40},
	"MUC": {"Munich", 38, 70},
	"AMS": {"Amsterdam", 20, 45},
	"FCO": {"Rome", 32, 50},
	"MXP": {"Milan", 50, 90},
	"BCN": {"Barcelona", 18, 40},
	"MAD": {"Madrid", 17, 35},
	"DUB": {"Dublin", 12, 30},

	"DXB": {"Dubai", 15, 25},
	"DOH": {"Doha", 22, 30},

	"SIN": {"Singapore", 22, 20},
	"HKG": {"Hong Kong", 35, 35},
	"NRT": {"Tokyo", 70, 180},
	"HND": {"Tokyo", 20, 50},
	"BKK": {"Bangkok", 30, 15},

	"JFK": {"New York", 26, 60},
	"EWR": {"New York", 28, 65},
	"LAX": {"Los Angeles", 27, 50},
	"SFO": {"San Francisco", 21, 55},
	"ORD": {"Chicago", 27, 45},
}

const (
	BreakfastNone        = "none"
	BreakfastContinental = "continental"
	BreakfastBuffet      = "buffet"
	BreakfastFullEnglish = "full_english"
	BreakfastVegan       = "vegan"
)

// kg CO2e per person per breakfast
var breakfastFactors = map[string]float64{
	BreakfastNone:        0.0,
	BreakfastContinental: 0.8,
	BreakfastBuffet:      2.2,
	BreakfastFullEnglish: 2.8,
	BreakfastVegan:       0.5,
}
