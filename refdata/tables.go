package refdata

import (
	"errors"
	"sort"
	"strings"

	"carbon-travel-server/model"
)

var ErrAirportNotFound = errors.New("airport not found")

type routeKey struct {
	origin      string
	destination string
}

// Source holds the raw rows the lookup tables are built from, either the
// built-in defaults or rows read from the database.
type Source struct {
	Airports           []model.Airport
	GridIntensities    []model.GridIntensity
	TrainRoutes        []model.TrainRoute
	Stations           []model.TrainStation
	SubstitutionRoutes []model.SubstitutionRoute
}

// Builtin returns the reference rows compiled into the binary.
func Builtin() Source {
	return Source{
		Airports:           builtinAirports,
		GridIntensities:    builtinGridIntensity,
		TrainRoutes:        builtinTrainRoutes,
		Stations:           builtinStations,
		SubstitutionRoutes: builtinSubstitutionRoutes,
	}
}

// Tables is the read-only lookup structure shared by every request.
type Tables struct {
	airports      map[string]model.Airport
	grid          map[string]model.GridIntensity
	trainRoutes   map[routeKey]model.TrainRoute
	stations      map[string]model.TrainStation
	substitutions map[routeKey]model.SubstitutionRoute
	// original order, for listings
	source Source
}

// New indexes src. Reverse train routes are derived unless the source already
// carries the opposite direction.
func New(src Source) *Tables {
	t := &Tables{
		airports:      make(map[string]model.Airport, len(src.Airports)),
		grid:          make(map[string]model.GridIntensity, len(src.GridIntensities)),
		trainRoutes:   make(map[routeKey]model.TrainRoute, 2*len(src.TrainRoutes)),
		stations:      make(map[string]model.TrainStation, len(src.Stations)),
		substitutions: make(map[routeKey]model.SubstitutionRoute, len(src.SubstitutionRoutes)),
		source:        src,
	}
	for _, a := range src.Airports {
		t.airports[strings.ToUpper(a.AirportIata)] = a
	}
	for _, g := range src.GridIntensities {
		t.grid[strings.ToUpper(g.CountryCode)] = g
	}
	routes := make([]model.TrainRoute, len(src.TrainRoutes))
	for i, r := range src.TrainRoutes {
		r.Origin, r.Destination = strings.ToUpper(r.Origin), strings.ToUpper(r.Destination)
		routes[i] = r
		t.trainRoutes[routeKey{r.Origin, r.Destination}] = r
	}
	for _, r := range routes {
		reverse := routeKey{r.Destination, r.Origin}
		if _, ok := t.trainRoutes[reverse]; !ok {
			t.trainRoutes[reverse] = r.Reversed()
		}
	}
	for _, s := range src.Stations {
		t.stations[strings.ToUpper(s.AirportCode)] = s
	}
	substitutions := make([]model.SubstitutionRoute, len(src.SubstitutionRoutes))
	for i, s := range src.SubstitutionRoutes {
		s.Origin, s.Destination = strings.ToUpper(s.Origin), strings.ToUpper(s.Destination)
		substitutions[i] = s
		t.substitutions[routeKey{s.Origin, s.Destination}] = s
	}
	t.source.TrainRoutes = routes
	t.source.SubstitutionRoutes = substitutions
	return t
}

var current = New(Builtin())

// Init installs t as the process-wide tables. Call once at startup, before
// serving requests.
func Init(t *Tables) {
	if t != nil {
		current = t
	}
}

func Get() *Tables {
	return current
}

func (t *Tables) Airport(code string) (model.Airport, error) {
	a, ok := t.airports[strings.ToUpper(code)]
	if !ok {
		return model.Airport{}, ErrAirportNotFound
	}
	return a, nil
}

// Airports lists airports sorted by code, optionally filtered by country and
// a case-insensitive search over name and city.
func (t *Tables) Airports(country, search string) []model.Airport {
	country = strings.ToUpper(country)
	search = strings.ToLower(search)
	airports := []model.Airport{}
	for _, a := range t.source.Airports {
		if country != "" && strings.ToUpper(a.CountryCode) != country {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.AirportName), search) &&
			!strings.Contains(strings.ToLower(a.CityName), search) {
			continue
		}
		airports = append(airports, a)
	}
	sort.Slice(airports, func(i, j int) bool {
		return airports[i].AirportIata < airports[j].AirportIata
	})
	return airports
}

// GridIntensity never fails: unknown countries get the global default.
func (t *Tables) GridIntensity(country string) model.GridIntensity {
	country = strings.ToUpper(country)
	g, ok := t.grid[country]
	if !ok {
		g = DefaultGridIntensity
	}
	g.CountryCode = country
	return g
}

// GridIntensities lists the known countries, or only EU members when euOnly
// is set, ordered from lowest to highest intensity.
func (t *Tables) GridIntensities(euOnly bool) []model.GridIntensity {
	var list []model.GridIntensity
	if euOnly {
		for _, c := range euCountries {
			list = append(list, t.GridIntensity(c))
		}
	} else {
		list = append(list, t.source.GridIntensities...)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Intensity < list[j].Intensity
	})
	return list
}

func (t *Tables) TrainRoute(origin, destination string) (model.TrainRoute, bool) {
	r, ok := t.trainRoutes[routeKey{strings.ToUpper(origin), strings.ToUpper(destination)}]
	return r, ok
}

// TrainRoutes lists every route in both directions, ordered by origin then destination.
func (t *Tables) TrainRoutes() []model.TrainRoute {
	routes := make([]model.TrainRoute, 0, len(t.trainRoutes))
	for _, r := range t.trainRoutes {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Origin != routes[j].Origin {
			return routes[i].Origin < routes[j].Origin
		}
		return routes[i].Destination < routes[j].Destination
	})
	return routes
}

func (t *Tables) Station(airport string) (model.TrainStation, bool) {
	s, ok := t.stations[strings.ToUpper(airport)]
	return s, ok
}

func (t *Tables) Stations() []model.TrainStation {
	stations := append([]model.TrainStation(nil), t.source.Stations...)
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].AirportCode < stations[j].AirportCode
	})
	return stations
}

// SubstitutionRoute matches the pair in either direction, preferring the
// direction given.
func (t *Tables) SubstitutionRoute(origin, destination string) (model.SubstitutionRoute, bool) {
	origin, destination = strings.ToUpper(origin), strings.ToUpper(destination)
	if s, ok := t.substitutions[routeKey{origin, destination}]; ok {
		return s, true
	}
	s, ok := t.substitutions[routeKey{destination, origin}]
	return s, ok
}

func (t *Tables) SubstitutionRoutes() []model.SubstitutionRoute {
	return append([]model.SubstitutionRoute(nil), t.source.SubstitutionRoutes...)
}

// BookingCity is the city name booking platforms search by, falling back to the code.
func BookingCity(code string) string {
	code = strings.ToUpper(code)
	if name, ok := bookingCityNames[code]; ok {
		return name
	}
	return code
}
