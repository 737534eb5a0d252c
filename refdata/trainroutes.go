package refdata

import "carbon-travel-server/model"

// flight routes with a practical rail replacement; matched in either direction
var builtinSubstitutionRoutes = []model.SubstitutionRoute{
	{Origin: "LHR", Destination: "CDG", TrainType: TrainEurostar, OriginStation: "London St Pancras", DestinationStation: "Paris Gare du Nord", RouteName: "Eurostar London → Paris", DistanceKm: 459, DurationMinutes: 136, TypicalPriceEur: 80},
	{Origin: "LGW", Destination: "CDG", TrainType: TrainEurostar, OriginStation: "London St Pancras", DestinationStation: "Paris Gare du Nord", RouteName: "Eurostar London → Paris", DistanceKm: 459, DurationMinutes: 136, TypicalPriceEur: 80},
	{Origin: "STN", Destination: "CDG", TrainType: TrainEurostar, OriginStation: "London St Pancras", DestinationStation: "Paris Gare du Nord", RouteName: "Eurostar London → Paris", DistanceKm: 459, DurationMinutes: 136, TypicalPriceEur: 80},
	{Origin: "LHR", Destination: "BRU", TrainType: TrainEurostar, OriginStation: "London St Pancras", DestinationStation: "Brussels Midi", RouteName: "Eurostar London → Brussels", DistanceKm: 373, DurationMinutes: 122, TypicalPriceEur: 70},
	{Origin: "LHR", Destination: "AMS", TrainType: TrainEurostar, OriginStation: "London St Pancras", DestinationStation: "Amsterdam Centraal", RouteName: "Eurostar London → Amsterdam", DistanceKm: 450, DurationMinutes: 229, TypicalPriceEur: 85},
	{Origin: "CDG", Destination: "BRU", TrainType: TrainTGV, OriginStation: "Paris Gare du Nord", DestinationStation: "Brussels Midi", RouteName: "Thalys Paris → Brussels", DistanceKm: 306, DurationMinutes: 82, TypicalPriceEur: 45},
	{Origin: "CDG", Destination: "FRA", TrainType: TrainICE, OriginStation: "Paris Est", DestinationStation: "Frankfurt Hbf", RouteName: "ICE/TGV Paris → Frankfurt", DistanceKm: 479, DurationMinutes: 232, TypicalPriceEur: 60},
	{Origin: "FRA", Destination: "MUC", TrainType: TrainICE, OriginStation: "Frankfurt Hbf", DestinationStation: "München Hbf", RouteName: "ICE Frankfurt → Munich", DistanceKm: 304, DurationMinutes: 195, TypicalPriceEur: 50},
	{Origin: "FRA", Destination: "BER", TrainType: TrainICE, OriginStation: "Frankfurt Hbf", DestinationStation: "Berlin Hbf", RouteName: "ICE Frankfurt → Berlin", DistanceKm: 423, DurationMinutes: 240, TypicalPriceEur: 55},
	{Origin: "FRA", Destination: "MXP", TrainType: TrainICE, OriginStation: "Frankfurt Hbf", DestinationStation: "Milano Centrale", RouteName: "EC Frankfurt → Milan", DistanceKm: 520, DurationMinutes: 480, TypicalPriceEur: 70},
	{Origin: "CDG", Destination: "BCN", TrainType: TrainTGV, OriginStation: "Paris Lyon", DestinationStation: "Barcelona Sants", RouteName: "TGV Paris → Barcelona", DistanceKm: 830, DurationMinutes: 382, TypicalPriceEur: 90},
	{Origin: "FCO", Destination: "MXP", TrainType: TrainEUHighSpeed, OriginStation: "Roma Termini", DestinationStation: "Milano Centrale", RouteName: "Frecciarossa Rome → Milan", DistanceKm: 476, DurationMinutes: 175, TypicalPriceEur: 55},
	{Origin: "MAD", Destination: "BCN", TrainType: TrainEUHighSpeed, OriginStation: "Madrid Atocha", DestinationStation: "Barcelona Sants", RouteName: "AVE Madrid → Barcelona", DistanceKm: 505, DurationMinutes: 155, TypicalPriceEur: 50},
}

// scheduled services; reverse directions are derived when the tables are built
var builtinTrainRoutes = []model.TrainRoute{
	{Origin: "LHR", Destination: "CDG", Operator: "Eurostar", DurationMinutes: 137, DistanceKm: 460, Stops: []string{"London St Pancras", "Ebbsfleet Intl", "Lille Europe", "Paris Gare du Nord"}, Frequency: "18 trains/day", HighSpeed: true, CO2PerPassengerKg: 6.0},
	{Origin: "LHR", Destination: "BRU", Operator: "Eurostar", DurationMinutes: 120, DistanceKm: 370, Stops: []string{"London St Pancras", "Ebbsfleet Intl", "Bruxelles-Midi"}, Frequency: "10 trains/day", HighSpeed: true, CO2PerPassengerKg: 4.8},
	{Origin: "LHR", Destination: "AMS", Operator: "Eurostar", DurationMinutes: 228, DistanceKm: 450, Stops: []string{"London St Pancras", "Ebbsfleet Intl", "Bruxelles-Midi", "Rotterdam Centraal", "Amsterdam Centraal"}, Frequency: "5 trains/day", HighSpeed: true, CO2PerPassengerKg: 5.9},
	{Origin: "CDG", Destination: "LYS", Operator: "TGV", DurationMinutes: 120, DistanceKm: 470, Stops: []string{"Paris Gare de Lyon", "Lyon Part-Dieu"}, Frequency: "25 trains/day", HighSpeed: true, CO2PerPassengerKg: 2.4},
	{Origin: "CDG", Destination: "MRS", Operator: "TGV", DurationMinutes: 195, DistanceKm: 775, Stops: []string{"Paris Gare de Lyon", "Avignon TGV", "Marseille St-Charles"}, Frequency: "15 trains/day", HighSpeed: true, CO2PerPassengerKg: 4.0},
	{Origin: "CDG", Destination: "BCN", Operator: "TGV", DurationMinutes: 390, DistanceKm: 1050, Stops: []string{"Paris Gare de Lyon", "Montpellier", "Perpignan", "Figueres", "Girona", "Barcelona Sants"}, Frequency: "4 trains/day", HighSpeed: true, CO2PerPassengerKg: 5.5},
	{Origin: "FRA", Destination: "MUC", Operator: "ICE", DurationMinutes: 195, DistanceKm: 400, Stops: []string{"Frankfurt Hbf", "Mannheim Hbf", "Stuttgart Hbf", "Ulm Hbf", "München Hbf"}, Frequency: "30 trains/day", HighSpeed: true, CO2PerPassengerKg: 8.0},
	{Origin: "FRA", Destination: "BER", Operator: "ICE", DurationMinutes: 240, DistanceKm: 550, Stops: []string{"Frankfurt Hbf", "Fulda", "Erfurt Hbf", "Halle Hbf", "Berlin Hbf"}, Frequency: "25 trains/day", HighSpeed: true, CO2PerPassengerKg: 11.0},
	{Origin: "FRA", Destination: "CGN", Operator: "ICE", DurationMinutes: 62, DistanceKm: 190, Stops: []string{"Frankfurt Hbf", "Frankfurt Flughafen", "Köln Hbf"}, Frequency: "35 trains/day", HighSpeed: true, CO2PerPassengerKg: 3.8},
	{Origin: "MUC", Destination: "VIE", Operator: "ICE/ÖBB", DurationMinutes: 240, DistanceKm: 430, Stops: []string{"München Hbf", "Rosenheim", "Salzburg Hbf", "Linz Hbf", "Wien Hbf"}, Frequency: "12 trains/day", HighSpeed: true, CO2PerPassengerKg: 8.6},
	{Origin: "CDG", Destination: "BRU", Operator: "Thalys", DurationMinutes: 82, DistanceKm: 310, Stops: []string{"Paris Gare du Nord", "Bruxelles-Midi"}, Frequency: "20 trains/day", HighSpeed: true, CO2PerPassengerKg: 3.2},
	{Origin: "CDG", Destination: "AMS", Operator: "Thalys", DurationMinutes: 195, DistanceKm: 500, Stops: []string{"Paris Gare du Nord", "Bruxelles-Midi", "Antwerpen Centraal", "Rotterdam Centraal", "Schiphol", "Amsterdam Centraal"}, Frequency: "10 trains/day", HighSpeed: true, CO2PerPassengerKg: 5.2},
	{Origin: "CDG", Destination: "CGN", Operator: "Thalys", DurationMinutes: 195, DistanceKm: 490, Stops: []string{"Paris Gare du Nord", "Bruxelles-Midi", "Liège-Guillemins", "Aachen Hbf", "Köln Hbf"}, Frequency: "6 trains/day", HighSpeed: true, CO2PerPassengerKg: 5.1},
	{Origin: "FCO", Destination: "MXP", Operator: "Frecciarossa", DurationMinutes: 175, DistanceKm: 600, Stops: []string{"Roma Termini", "Firenze SMN", "Bologna Centrale", "Milano Centrale"}, Frequency: "30 trains/day", HighSpeed: true, CO2PerPassengerKg: 12.0},
	{Origin: "MXP", Destination: "VCE", Operator: "Frecciarossa", DurationMinutes: 145, DistanceKm: 270, Stops: []string{"Milano Centrale", "Verona Porta Nuova", "Venezia Mestre", "Venezia Santa Lucia"}, Frequency: "20 trains/day", HighSpeed: true, CO2PerPassengerKg: 5.4},
	{Origin: "MAD", Destination: "BCN", Operator: "AVE", DurationMinutes: 155, DistanceKm: 620, Stops: []string{"Madrid Puerta de Atocha", "Zaragoza Delicias", "Lleida Pirineus", "Barcelona Sants"}, Frequency: "25 trains/day", HighSpeed: true, CO2PerPassengerKg: 12.4},
	{Origin: "ZRH", Destination: "MXP", Operator: "SBB/Trenitalia", DurationMinutes: 205, DistanceKm: 280, Stops: []string{"Zürich HB", "Arth-Goldau", "Lugano", "Como", "Milano Centrale"}, Frequency: "8 trains/day", HighSpeed: false, CO2PerPassengerKg: 5.6},
	{Origin: "VIE", Destination: "PRG", Operator: "ÖBB/ČD", DurationMinutes: 240, DistanceKm: 330, Stops: []string{"Wien Hbf", "Břeclav", "Brno hl.n.", "Praha hl.n."}, Frequency: "8 trains/day", HighSpeed: false, CO2PerPassengerKg: 6.6},
	{Origin: "BRU", Destination: "AMS", Operator: "Thalys/NS", DurationMinutes: 113, DistanceKm: 210, Stops: []string{"Bruxelles-Midi", "Antwerpen Centraal", "Rotterdam Centraal", "Schiphol", "Amsterdam Centraal"}, Frequency: "15 trains/day", HighSpeed: true, CO2PerPassengerKg: 2.2},
}

var builtinStations = []model.TrainStation{
	{AirportCode: "LHR", StationID: "8400058", Name: "London St Pancras", City: "London", CountryCode: "GB"},
	{AirportCode: "STN", StationID: "8400058", Name: "London St Pancras", City: "London", CountryCode: "GB"},
	{AirportCode: "LGW", StationID: "8400058", Name: "London St Pancras", City: "London", CountryCode: "GB"},
	{AirportCode: "CDG", StationID: "8727100", Name: "Paris Gare du Nord", City: "Paris", CountryCode: "FR"},
	{AirportCode: "ORY", StationID: "8727100", Name: "Paris Gare du Nord", City: "Paris", CountryCode: "FR"},
	{AirportCode: "LYS", StationID: "8774100", Name: "Lyon Part-Dieu", City: "Lyon", CountryCode: "FR"},
	{AirportCode: "MRS", StationID: "8775100", Name: "Marseille St-Charles", City: "Marseille", CountryCode: "FR"},
	{AirportCode: "FRA", StationID: "8000105", Name: "Frankfurt Hbf", City: "Frankfurt", CountryCode: "DE"},
	{AirportCode: "MUC", StationID: "8000261", Name: "München Hbf", City: "Munich", CountryCode: "DE"},
	{AirportCode: "BER", StationID: "8011160", Name: "Berlin Hbf", City: "Berlin", CountryCode: "DE"},
	{AirportCode: "TXL", StationID: "8011160", Name: "Berlin Hbf", City: "Berlin", CountryCode: "DE"},
	{AirportCode: "DUS", StationID: "8000085", Name: "Düsseldorf Hbf", City: "Düsseldorf", CountryCode: "DE"},
	{AirportCode: "CGN", StationID: "8000207", Name: "Köln Hbf", City: "Cologne", CountryCode: "DE"},
	{AirportCode: "HAM", StationID: "8002549", Name: "Hamburg Hbf", City: "Hamburg", CountryCode: "DE"},
	{AirportCode: "AMS", StationID: "8400058", Name: "Amsterdam Centraal", City: "Amsterdam", CountryCode: "NL"},
	{AirportCode: "BRU", StationID: "8814001", Name: "Bruxelles-Midi", City: "Brussels", CountryCode: "BE"},
	{AirportCode: "ZRH", StationID: "8503000", Name: "Zürich HB", City: "Zurich", CountryCode: "CH"},
	{AirportCode: "GVA", StationID: "8501008", Name: "Genève Cornavin", City: "Geneva", CountryCode: "CH"},
	{AirportCode: "FCO", StationID: "8308409", Name: "Roma Termini", City: "Rome", CountryCode: "IT"},
	{AirportCode: "MXP", StationID: "8300046", Name: "Milano Centrale", City: "Milan", CountryCode: "IT"},
	{AirportCode: "VCE", StationID: "8300098", Name: "Venezia Santa Lucia", City: "Venice", CountryCode: "IT"},
	{AirportCode: "MAD", StationID: "7100010", Name: "Madrid Puerta de Atocha", City: "Madrid", CountryCode: "ES"},
	{AirportCode: "BCN", StationID: "7171801", Name: "Barcelona Sants", City: "Barcelona", CountryCode: "ES"},
	{AirportCode: "VIE", StationID: "8103000", Name: "Wien Hbf", City: "Vienna", CountryCode: "AT"},
	{AirportCode: "PRG", StationID: "5400014", Name: "Praha hl.n.", City: "Prague", CountryCode: "CZ"},
}

// city names used when building booking searches
var bookingCityNames = map[string]string{
	"LHR": "London",
	"CDG": "Paris",
	"BRU": "Brussels",
	"AMS": "Amsterdam",
	"FRA": "Frankfurt",
	"MUC": "Munich",
	"BER": "Berlin",
	"DUS": "Dusseldorf",
	"CGN": "Cologne",
	"HAM": "Hamburg",
	"FCO": "Rome",
	"MXP": "Milan",
	"VCE": "Venice",
	"MAD": "Madrid",
	"BCN": "Barcelona",
	"ZRH": "Zurich",
	"GVA": "Geneva",
	"VIE": "Vienna",
	"PRG": "Prague",
	"LYS": "Lyon",
	"MRS": "Marseille",
}
