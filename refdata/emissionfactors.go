package refdata

const (
	HaulShort  = "short"
	HaulMedium = "medium"
	HaulLong   = "long"
)

const (
	CabinEconomy        = "economy"
	CabinPremiumEconomy = "premium_economy"
	CabinBusiness       = "business"
	CabinFirst          = "first"
)

// Economy base factors in kg CO2e per passenger-km. A moderate radiative
// forcing uplift is already included, so RadiativeForcingMultiplier is 1.
var flightBaseFactors = map[string]float64{
	HaulShort:  0.156,
	HaulMedium: 0.130,
	HaulLong:   0.111,
}

var cabinMultipliers = map[string]float64{
	CabinEconomy:        1.0,
	CabinPremiumEconomy: 1.5,
	CabinBusiness:       3.0,
	CabinFirst:          4.0,
}

// CabinOrder lists cabin classes from cheapest to most expensive.
var CabinOrder = []string{CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst}

const RadiativeForcingMultiplier = 1.0

// fuel burn in kg per aircraft-km
var fuelBurnPerKm = map[string]float64{
	HaulShort:  3.5,
	HaulMedium: 3.0,
	HaulLong:   2.8,
}

const DefaultLoadFactor = 0.82

// kWh per room-night by star rating
var hotelEnergyPerNight = map[int]float64{
	1: 25,
	2: 30,
	3: 40,
	4: 55,
	5: 80,
}

const EcoCertifiedDiscount = 0.35

const (
	TrainEurostar       = "eurostar"
	TrainTGV            = "tgv"
	TrainICE            = "ice"
	TrainUKRail         = "uk_rail"
	TrainEUHighSpeed    = "eu_high_speed"
	TrainEUConventional = "eu_conventional"
	TrainDiesel         = "diesel"
)

var trainFactors = map[string]float64{
	TrainEurostar:       0.004,
	TrainTGV:            0.003,
	TrainICE:            0.032,
	TrainUKRail:         0.035,
	TrainEUHighSpeed:    0.015,
	TrainEUConventional: 0.041,
	TrainDiesel:         0.089,
}

const DefaultTrainType = TrainEUHighSpeed

// conversion constants for human-readable equivalents
const (
	TreeAbsorptionKgPerYear = 22.0
	DrivingKmPerKg          = 10.0
	StreamingHoursPerKg     = 16.67
)
