package refdata

import "carbon-travel-server/model"

var builtinAirports = []model.Airport{
	// United Kingdom
	{AirportIata: "LHR", AirportName: "London Heathrow", CityName: "London", CountryCode: "GB", Latitude: 51.4700, Longitude: -0.4543},
	{AirportIata: "LGW", AirportName: "London Gatwick", CityName: "London", CountryCode: "GB", Latitude: 51.1537, Longitude: -0.1821},
	{AirportIata: "STN", AirportName: "London Stansted", CityName: "London", CountryCode: "GB", Latitude: 51.8850, Longitude: 0.2350},
	{AirportIata: "LTN", AirportName: "London Luton", CityName: "London", CountryCode: "GB", Latitude: 51.8747, Longitude: -0.3683},
	{AirportIata: "MAN", AirportName: "Manchester", CityName: "Manchester", CountryCode: "GB", Latitude: 53.3537, Longitude: -2.2750},
	{AirportIata: "EDI", AirportName: "Edinburgh", CityName: "Edinburgh", CountryCode: "GB", Latitude: 55.9500, Longitude: -3.3725},
	{AirportIata: "BHX", AirportName: "Birmingham", CityName: "Birmingham", CountryCode: "GB", Latitude: 52.4539, Longitude: -1.7480},
	// France
	{AirportIata: "CDG", AirportName: "Paris Charles de Gaulle", CityName: "Paris", CountryCode: "FR", Latitude: 49.0097, Longitude: 2.5479},
	{AirportIata: "ORY", AirportName: "Paris Orly", CityName: "Paris", CountryCode: "FR", Latitude: 48.7233, Longitude: 2.3794},
	{AirportIata: "NCE", AirportName: "Nice Côte d'Azur", CityName: "Nice", CountryCode: "FR", Latitude: 43.6584, Longitude: 7.2159},
	{AirportIata: "LYS", AirportName: "Lyon Saint-Exupéry", CityName: "Lyon", CountryCode: "FR", Latitude: 45.7256, Longitude: 5.0811},
	{AirportIata: "MRS", AirportName: "Marseille Provence", CityName: "Marseille", CountryCode: "FR", Latitude: 43.4393, Longitude: 5.2214},
	// Germany
	{AirportIata: "FRA", AirportName: "Frankfurt", CityName: "Frankfurt", CountryCode: "DE", Latitude: 50.0379, Longitude: 8.5622},
	{AirportIata: "MUC", AirportName: "Munich", CityName: "Munich", CountryCode: "DE", Latitude: 48.3538, Longitude: 11.7861},
	{AirportIata: "TXL", AirportName: "Berlin Tegel", CityName: "Berlin", CountryCode: "DE", Latitude: 52.5597, Longitude: 13.2877},
	{AirportIata: "BER", AirportName: "Berlin Brandenburg", CityName: "Berlin", CountryCode: "DE", Latitude: 52.3667, Longitude: 13.5033},
	{AirportIata: "DUS", AirportName: "Düsseldorf", CityName: "Düsseldorf", CountryCode: "DE", Latitude: 51.2895, Longitude: 6.7668},
	{AirportIata: "HAM", AirportName: "Hamburg", CityName: "Hamburg", CountryCode: "DE", Latitude: 53.6304, Longitude: 9.9882},
	// Netherlands
	{AirportIata: "AMS", AirportName: "Amsterdam Schiphol", CityName: "Amsterdam", CountryCode: "NL", Latitude: 52.3105, Longitude: 4.7683},
	// Belgium
	{AirportIata: "BRU", AirportName: "Brussels", CityName: "Brussels", CountryCode: "BE", Latitude: 50.9014, Longitude: 4.4844},
	// Spain
	{AirportIata: "MAD", AirportName: "Madrid Barajas", CityName: "Madrid", CountryCode: "ES", Latitude: 40.4983, Longitude: -3.5676},
	{AirportIata: "BCN", AirportName: "Barcelona El Prat", CityName: "Barcelona", CountryCode: "ES", Latitude: 41.2971, Longitude: 2.0785},
	// Italy
	{AirportIata: "FCO", AirportName: "Rome Fiumicino", CityName: "Rome", CountryCode: "IT", Latitude: 41.8003, Longitude: 12.2389},
	{AirportIata: "MXP", AirportName: "Milan Malpensa", CityName: "Milan", CountryCode: "IT", Latitude: 45.6306, Longitude: 8.7281},
	{AirportIata: "LIN", AirportName: "Milan Linate", CityName: "Milan", CountryCode: "IT", Latitude: 45.4497, Longitude: 9.2783},
	{AirportIata: "VCE", AirportName: "Venice Marco Polo", CityName: "Venice", CountryCode: "IT", Latitude: 45.5053, Longitude: 12.3519},
	// Switzerland
	{AirportIata: "ZRH", AirportName: "Zurich", CityName: "Zurich", CountryCode: "CH", Latitude: 47.4647, Longitude: 8.5492},
	{AirportIata: "GVA", AirportName: "Geneva", CityName: "Geneva", CountryCode: "CH", Latitude: 46.2381, Longitude: 6.1089},
	// Austria
	{AirportIata: "VIE", AirportName: "Vienna", CityName: "Vienna", CountryCode: "AT", Latitude: 48.1103, Longitude: 16.5697},
	// Portugal
	{AirportIata: "LIS", AirportName: "Lisbon", CityName: "Lisbon", CountryCode: "PT", Latitude: 38.7756, Longitude: -9.1354},
	// Ireland
	{AirportIata: "DUB", AirportName: "Dublin", CityName: "Dublin", CountryCode: "IE", Latitude: 53.4213, Longitude: -6.2701},
	// Scandinavia
	{AirportIata: "CPH", AirportName: "Copenhagen", CityName: "Copenhagen", CountryCode: "DK", Latitude: 55.6180, Longitude: 12.6508},
	{AirportIata: "ARN", AirportName: "Stockholm Arlanda", CityName: "Stockholm", CountryCode: "SE", Latitude: 59.6519, Longitude: 17.9186},
	{AirportIata: "OSL", AirportName: "Oslo Gardermoen", CityName: "Oslo", CountryCode: "NO", Latitude: 60.1939, Longitude: 11.1004},
	{AirportIata: "HEL", AirportName: "Helsinki", CityName: "Helsinki", CountryCode: "FI", Latitude: 60.3172, Longitude: 24.9633},
	// Poland
	{AirportIata: "WAW", AirportName: "Warsaw Chopin", CityName: "Warsaw", CountryCode: "PL", Latitude: 52.1657, Longitude: 20.9671},
	// Czech Republic
	{AirportIata: "PRG", AirportName: "Prague", CityName: "Prague", CountryCode: "CZ", Latitude: 50.1008, Longitude: 14.2600},
	// Greece
	{AirportIata: "ATH", AirportName: "Athens", CityName: "Athens", CountryCode: "GR", Latitude: 37.9364, Longitude: 23.9445},
	// Turkey
	{AirportIata: "IST", AirportName: "Istanbul", CityName: "Istanbul", CountryCode: "TR", Latitude: 41.2753, Longitude: 28.7519},
	// United States
	{AirportIata: "JFK", AirportName: "New York JFK", CityName: "New York", CountryCode: "US", Latitude: 40.6413, Longitude: -73.7781},
	{AirportIata: "EWR", AirportName: "Newark", CityName: "New York", CountryCode: "US", Latitude: 40.6895, Longitude: -74.1745},
	{AirportIata: "LAX", AirportName: "Los Angeles", CityName: "Los Angeles", CountryCode: "US", Latitude: 33.9416, Longitude: -118.4085},
	{AirportIata: "SFO", AirportName: "San Francisco", CityName: "San Francisco", CountryCode: "US", Latitude: 37.6213, Longitude: -122.3790},
	{AirportIata: "ORD", AirportName: "Chicago O'Hare", CityName: "Chicago", CountryCode: "US", Latitude: 41.9742, Longitude: -87.9073},
	{AirportIata: "MIA", AirportName: "Miami", CityName: "Miami", CountryCode: "US", Latitude: 25.7959, Longitude: -80.2870},
	{AirportIata: "BOS", AirportName: "Boston Logan", CityName: "Boston", CountryCode: "US", Latitude: 42.3656, Longitude: -71.0096},
	{AirportIata: "DFW", AirportName: "Dallas/Fort Worth", CityName: "Dallas", CountryCode: "US", Latitude: 32.8998, Longitude: -97.0403},
	{AirportIata: "ATL", AirportName: "Atlanta", CityName: "Atlanta", CountryCode: "US", Latitude: 33.6407, Longitude: -84.4277},
	{AirportIata: "SEA", AirportName: "Seattle-Tacoma", CityName: "Seattle", CountryCode: "US", Latitude: 47.4502, Longitude: -122.3088},
	// Canada
	{AirportIata: "YYZ", AirportName: "Toronto Pearson", CityName: "Toronto", CountryCode: "CA", Latitude: 43.6777, Longitude: -79.6248},
	{AirportIata: "YVR", AirportName: "Vancouver", CityName: "Vancouver", CountryCode: "CA", Latitude: 49.1947, Longitude: -123.1792},
	{AirportIata: "YUL", AirportName: "Montreal Trudeau", CityName: "Montreal", CountryCode: "CA", Latitude: 45.4706, Longitude: -73.7408},
	// Middle East
	{AirportIata: "DXB", AirportName: "Dubai", CityName: "Dubai", CountryCode: "AE", Latitude: 25.2532, Longitude: 55.3657},
	{AirportIata: "DOH", AirportName: "Doha Hamad", CityName: "Doha", CountryCode: "QA", Latitude: 25.2731, Longitude: 51.6081},
	{AirportIata: "AUH", AirportName: "Abu Dhabi", CityName: "Abu Dhabi", CountryCode: "AE", Latitude: 24.4330, Longitude: 54.6511},
	{AirportIata: "TLV", AirportName: "Tel Aviv Ben Gurion", CityName: "Tel Aviv", CountryCode: "IL", Latitude: 32.0055, Longitude: 34.8854},
	// Asia
	{AirportIata: "SIN", AirportName: "Singapore Changi", CityName: "Singapore", CountryCode: "SG", Latitude: 1.3644, Longitude: 103.9915},
	{AirportIata: "HKG", AirportName: "Hong Kong", CityName: "Hong Kong", CountryCode: "HK", Latitude: 22.3080, Longitude: 113.9185},
	{AirportIata: "NRT", AirportName: "Tokyo Narita", CityName: "Tokyo", CountryCode: "JP", Latitude: 35.7720, Longitude: 140.3929},
	{AirportIata: "HND", AirportName: "Tokyo Haneda", CityName: "Tokyo", CountryCode: "JP", Latitude: 35.5494, Longitude: 139.7798},
	{AirportIata: "ICN", AirportName: "Seoul Incheon", CityName: "Seoul", CountryCode: "KR", Latitude: 37.4602, Longitude: 126.4407},
	{AirportIata: "PEK", AirportName: "Beijing Capital", CityName: "Beijing", CountryCode: "CN", Latitude: 40.0799, Longitude: 116.6031},
	{AirportIata: "PVG", AirportName: "Shanghai Pudong", CityName: "Shanghai", CountryCode: "CN", Latitude: 31.1443, Longitude: 121.8083},
	{AirportIata: "BKK", AirportName: "Bangkok Suvarnabhumi", CityName: "Bangkok", CountryCode: "TH", Latitude: 13.6900, Longitude: 100.7501},
	{AirportIata: "DEL", AirportName: "Delhi Indira Gandhi", CityName: "Delhi", CountryCode: "IN", Latitude: 28.5562, Longitude: 77.1000},
	{AirportIata: "BOM", AirportName: "Mumbai", CityName: "Mumbai", CountryCode: "IN", Latitude: 19.0896, Longitude: 72.8656},
	// Australia/Oceania
	{AirportIata: "SYD", AirportName: "Sydney", CityName: "Sydney", CountryCode: "AU", Latitude: -33.9399, Longitude: 151.1753},
	{AirportIata: "MEL", AirportName: "Melbourne", CityName: "Melbourne", CountryCode: "AU", Latitude: -37.6690, Longitude: 144.8410},
	{AirportIata: "AKL", AirportName: "Auckland", CityName: "Auckland", CountryCode: "NZ", Latitude: -37.0082, Longitude: 174.7850},
	// South America
	{AirportIata: "GRU", AirportName: "São Paulo Guarulhos", CityName: "São Paulo", CountryCode: "BR", Latitude: -23.4356, Longitude: -46.4731},
	{AirportIata: "EZE", AirportName: "Buenos Aires Ezeiza", CityName: "Buenos Aires", CountryCode: "AR", Latitude: -34.8222, Longitude: -58.5358},
	{AirportIata: "SCL", AirportName: "Santiago", CityName: "Santiago", CountryCode: "CL", Latitude: -33.3930, Longitude: -70.7858},
	{AirportIata: "BOG", AirportName: "Bogotá El Dorado", CityName: "Bogotá", CountryCode: "CO", Latitude: 4.7016, Longitude: -74.1469},
	// Africa
	{AirportIata: "JNB", AirportName: "Johannesburg", CityName: "Johannesburg", CountryCode: "ZA", Latitude: -26.1367, Longitude: 28.2411},
	{AirportIata: "CPT", AirportName: "Cape Town", CityName: "Cape Town", CountryCode: "ZA", Latitude: -33.9715, Longitude: 18.6021},
	{AirportIata: "CAI", AirportName: "Cairo", CityName: "Cairo", CountryCode: "EG", Latitude: 30.1219, Longitude: 31.4056},
	{AirportIata: "NBO", AirportName: "Nairobi Jomo Kenyatta", CityName: "Nairobi", CountryCode: "KE", Latitude: -1.3192, Longitude: 36.9278},
	{AirportIata: "CMN", AirportName: "Casablanca Mohammed V", CityName: "Casablanca", CountryCode: "MA", Latitude: 33.3675, Longitude: -7.5900},
	// Earth's radius in kilometers
	// Convert to radians
	// Haversine formula
}
