package externals

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"carbon-travel-server/refdata"
)

const coverageAll = "all"

const bookingDateLayout = "2006-01-02"

// days ahead used when the traveller gives no date
const defaultBookingLeadDays = 7

type BookingPlatform struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Coverage    []string `json:"coverage"`
	// landing page used when the platform has no deep link
	bookingURL string
	priority   int
}

func (p BookingPlatform) covers(origin, destination string) bool {
	for _, code := range p.Coverage {
		if code == coverageAll || code == origin || code == destination {
			return true
		}
	}
	return false
}

var bookingPlatforms = []BookingPlatform{
	{
		ID:          "trainline",
		Name:        "Trainline",
		Logo:        "🎫",
		Description: "Compare prices across all European operators",
		Website:     "https://www.thetrainline.com/book/results",
		Coverage:    []string{coverageAll},
		priority:    0,
	},
	{
		ID:          "eurostar",
		Name:        "Eurostar",
		Logo:        "⭐",
		Description: "Official Eurostar booking - London to Paris/Brussels/Amsterdam",
		Website:     "https://www.eurostar.com/uk-en/train-search",
		Coverage:    []string{"LHR", "CDG", "BRU", "AMS"},
		bookingURL:  "https://www.eurostar.com/uk-en/book-eurostar",
		priority:    3,
	},
	{
		ID:          "rail_europe",
		Name:        "Rail Europe",
		Logo:        "🌍",
		Description: "Book trains across 30+ European countries",
		Website:     "https://www.raileurope.com/en-us/train-tickets",
		Coverage:    []string{coverageAll},
		bookingURL:  "https://www.raileurope.com/en-us",
		priority:    2,
	},
	{
		ID:          "sncf_connect",
		Name:        "SNCF Connect",
		Logo:        "🇫🇷",
		Description: "Official French railways - TGV, Thalys, Eurostar",
		Website:     "https://www.sncf-connect.com/en-en/train-ticket",
		Coverage:    []string{"CDG", "LYS", "MRS", "BCN"},
		bookingURL:  "https://www.sncf-connect.com/en-en/",
		priority:    5,
	},
	{
		ID:          "deutsche_bahn",
		Name:        "Deutsche Bahn",
		Logo:        "🇩🇪",
		Description: "Official German railways - ICE high-speed trains",
		Website:     "https://int.bahn.de/en",
		Coverage:    []string{"FRA", "MUC", "BER", "DUS", "CGN", "HAM"},
		bookingURL:  "https://int.bahn.de/en",
		priority:    4,
	},
	{
		ID:          "trenitalia",
		Name:        "Trenitalia",
		Logo:        "🇮🇹",
		Description: "Official Italian railways - Frecciarossa",
		Website:     "https://www.trenitalia.com/en.html",
		Coverage:    []string{"FCO", "MXP", "VCE"},
		bookingURL:  "https://www.trenitalia.com/en.html",
		priority:    6,
	},
	{
		ID:          "renfe",
		Name:        "Renfe",
		Logo:        "🇪🇸",
		Description: "Official Spanish railways - AVE high-speed",
		Website:     "https://www.renfe.com/es/en",
		Coverage:    []string{"MAD", "BCN"},
		bookingURL:  "https://www.renfe.com/es/en",
		priority:    7,
	},
	{
		ID:          "omio",
		Name:        "Omio",
		Logo:        "🚂",
		Description: "Compare trains, buses, and flights across Europe",
		Website:     "https://www.omio.com/trains",
		Coverage:    []string{coverageAll},
		priority:    1,
	},
	{
		ID:          "ns_international",
		Name:        "NS International",
		Logo:        "🇳🇱",
		Description: "Dutch railways international booking",
		Website:     "https://www.nsinternational.com/en",
		Coverage:    []string{"AMS", "BRU"},
		bookingURL:  "https://www.nsinternational.com/en",
		priority:    8,
	},
}

// BookingPlatforms lists every supported platform in declaration order.
func BookingPlatforms() []BookingPlatform {
	platforms := make([]BookingPlatform, len(bookingPlatforms))
	copy(platforms, bookingPlatforms)
	return platforms
}

type BookingLink struct {
	Platform           string `json:"platform"`
	Logo               string `json:"logo"`
	Description        string `json:"description"`
	URL                string `json:"url"`
	OriginStation      string `json:"origin_station"`
	DestinationStation string `json:"destination_station"`
	OriginCity         string `json:"origin_city"`
	DestinationCity    string `json:"destination_city"`
	TravelDate         string `json:"travel_date"`
}

// GetBookingLinks builds the booking links of the platforms covering the
// route, best platforms first. An empty date means a week from now.
func GetBookingLinks(origin, destination, date string) []BookingLink {
	return getBookingLinks(origin, destination, date, time.Now())
}

func getBookingLinks(origin, destination, date string, now time.Time) []BookingLink {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)
	if date == "" {
		date = now.AddDate(0, 0, defaultBookingLeadDays).Format(bookingDateLayout)
	}

	originCity := refdata.BookingCity(origin)
	destinationCity := refdata.BookingCity(destination)
	originStation := stationName(origin, originCity)
	destinationStation := stationName(destination, destinationCity)

	platforms := BookingPlatforms()
	sort.SliceStable(platforms, func(i, j int) bool {
		return platforms[i].priority < platforms[j].priority
	})

	links := make([]BookingLink, 0, len(platforms))
	for _, platform := range platforms {
		if !platform.covers(origin, destination) {
			continue
		}
		links = append(links, BookingLink{
			Platform:           platform.Name,
			Logo:               platform.Logo,
			Description:        platform.Description,
			URL:                platformURL(platform, originCity, destinationCity, date),
			OriginStation:      originStation,
			DestinationStation: destinationStation,
			OriginCity:         originCity,
			DestinationCity:    destinationCity,
			TravelDate:         date,
		})
	}
	return links
}

func platformURL(platform BookingPlatform, originCity, destinationCity, date string) string {
	switch platform.ID {
	case "trainline":
		return "https://www.thetrainline.com/book/results?origin=" + url.QueryEscape(originCity) +
			"&destination=" + url.QueryEscape(destinationCity) +
			"&outwardDate=" + url.QueryEscape(date) + "&journeySearchType=single"
	case "omio":
		return "https://www.omio.com/search?from=" + url.QueryEscape(originCity) +
			"&to=" + url.QueryEscape(destinationCity) +
			"&date=" + url.QueryEscape(date) + "&transportModes=train"
	}
	if platform.bookingURL != "" {
		return platform.bookingURL
	}
	return platform.Website
}

func stationName(airport, fallback string) string {
	if station, ok := refdata.Get().Station(airport); ok {
		return station.Name
	}
	return fallback
}
