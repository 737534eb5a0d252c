package refdata

import (
	"sort"
	"strings"
)

// FlightFactor returns kg CO2e per passenger-km for the haul and cabin.
// Unknown hauls count as medium, unknown cabins as economy.
func FlightFactor(haul, cabin string) float64 {
	return FlightBaseFactor(haul) * CabinMultiplier(cabin)
}

func FlightBaseFactor(haul string) float64 {
	f, ok := flightBaseFactors[strings.ToLower(haul)]
	if !ok {
		return flightBaseFactors[HaulMedium]
	}
	return f
}

func CabinMultiplier(cabin string) float64 {
	m, ok := cabinMultipliers[strings.ToLower(cabin)]
	if !ok {
		return cabinMultipliers[CabinEconomy]
	}
	return m
}

// NormalizeCabin maps unknown cabins to economy.
func NormalizeCabin(cabin string) string {
	cabin = strings.ToLower(cabin)
	if _, ok := cabinMultipliers[cabin]; !ok {
		return CabinEconomy
	}
	return cabin
}

func FuelBurnPerKm(haul string) float64 {
	f, ok := fuelBurnPerKm[strings.ToLower(haul)]
	if !ok {
		return fuelBurnPerKm[HaulMedium]
	}
	return f
}

// ClampStars bounds a star rating to 1..5.
func ClampStars(stars int) int {
	if stars < 1 {
		return 1
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// HotelEnergy is kWh per room-night for the star rating.
func HotelEnergy(stars int) float64 {
	return hotelEnergyPerNight[ClampStars(stars)]
}

func TrainFactor(trainType string) float64 {
	f, ok := trainFactors[strings.ToLower(trainType)]
	if !ok {
		return trainFactors[DefaultTrainType]
	}
	return f
}

// VehicleFactor returns kg CO2e per km, defaulting to the taxi factor.
func VehicleFactor(vehicle string) float64 {
	f, ok := vehicleFactors[strings.ToLower(vehicle)]
	if !ok {
		return vehicleFactors[DefaultVehicle]
	}
	return f
}

// TransferDistanceFor returns the one-way transfer distance for an airport,
// or the default distance with city "Unknown".
func TransferDistanceFor(airport string) TransferDistance {
	d, ok := transferDistances[strings.ToUpper(airport)]
	if !ok {
		return TransferDistance{City: "Unknown", DistanceKm: DefaultTransferDistanceKm}
	}
	return d
}

func BreakfastFactor(breakfast string) float64 {
	return breakfastFactors[strings.ToLower(breakfast)]
}

type FlightFactorRow struct {
	HaulType   string
	CabinClass string
	Factor     float64
}

// FlightFactors lists every haul and cabin combination, short haul first.
func FlightFactors() []FlightFactorRow {
	var rows []FlightFactorRow
	for _, haul := range []string{HaulShort, HaulMedium, HaulLong} {
		for _, cabin := range CabinOrder {
			rows = append(rows, FlightFactorRow{haul, cabin, FlightFactor(haul, cabin)})
		}
	}
	return rows
}

func CabinMultipliers() map[string]float64 {
	out := make(map[string]float64, len(cabinMultipliers))
	for k, v := range cabinMultipliers {
		out[k] = v
	}
	return out
}

type TrainFactorRow struct {
	TrainType string
	Factor    float64
}

// TrainFactors lists train types from lowest to highest factor.
func TrainFactors() []TrainFactorRow {
	rows := make([]TrainFactorRow, 0, len(trainFactors))
	for k, v := range trainFactors {
		rows = append(rows, TrainFactorRow{k, v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Factor != rows[j].Factor {
			return rows[i].Factor < rows[j].Factor
		}
		return rows[i].TrainType < rows[j].TrainType
	})
	return rows
}

type HotelEnergyRow struct {
	StarRating  int
	KwhPerNight float64
}

func HotelEnergyTable() []HotelEnergyRow {
	rows := make([]HotelEnergyRow, 0, 5)
	for star := 1; star <= 5; star++ {
		rows = append(rows, HotelEnergyRow{star, hotelEnergyPerNight[star]})
	}
	return rows
}
