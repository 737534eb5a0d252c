package refdata

import "carbon-travel-server/model"

func notes(s string) *string { return &s }

var builtinGridIntensity = []model.GridIntensity{
	// EU - Very Low Carbon (Nuclear/Hydro dominant)
	{CountryCode: "FR", Intensity: 56, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("~70% nuclear")},
	{CountryCode: "SE", Intensity: 41, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("Hydro + nuclear")},
	{CountryCode: "NO", Intensity: 29, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("~95% hydro")},
	{CountryCode: "FI", Intensity: 131, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("Nuclear + hydro")},
	{CountryCode: "CH", Intensity: 48, Source: "IEA 2024", Quality: model.QualityMeasured, Notes: notes("Hydro + nuclear")},
	{CountryCode: "AT", Intensity: 108, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("Hydro dominant")},
	// EU - Low Carbon
	{CountryCode: "BE", Intensity: 167, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "DK", Intensity: 158, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("High wind")},
	{CountryCode: "ES", Intensity: 161, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "PT", Intensity: 178, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "LU", Intensity: 89, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	// EU - Medium Carbon
	{CountryCode: "IT", Intensity: 267, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "GB", Intensity: 198, Source: "National Grid 2024", Quality: model.QualityMeasured},
	{CountryCode: "IE", Intensity: 296, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "NL", Intensity: 328, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "HU", Intensity: 223, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "SK", Intensity: 168, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "SI", Intensity: 232, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "HR", Intensity: 187, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	// EU - High Carbon (Coal dependent)
	{CountryCode: "DE", Intensity: 366, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("Coal phase-out ongoing")},
	{CountryCode: "PL", Intensity: 773, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("~70% coal")},
	{CountryCode: "CZ", Intensity: 436, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "GR", Intensity: 341, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "RO", Intensity: 298, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "BG", Intensity: 412, Source: "ENTSO-E 2024", Quality: model.QualityMeasured},
	{CountryCode: "EE", Intensity: 723, Source: "ENTSO-E 2024", Quality: model.QualityMeasured, Notes: notes("Oil shale")},
	// Non-EU Europe
	{CountryCode: "TR", Intensity: 438, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "RS", Intensity: 719, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "UA", Intensity: 285, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "IS", Intensity: 28, Source: "IEA 2024", Quality: model.QualityMeasured, Notes: notes("Geothermal + hydro")},
	// North America
	{CountryCode: "US", Intensity: 386, Source: "EPA eGRID 2024", Quality: model.QualityMeasured, Notes: notes("National average")},
	{CountryCode: "CA", Intensity: 120, Source: "IEA 2024", Quality: model.QualityMeasured, Notes: notes("Hydro dominant")},
	{CountryCode: "MX", Intensity: 435, Source: "IEA 2024", Quality: model.QualityEstimated},
	// Middle East
	{CountryCode: "AE", Intensity: 415, Source: "IEA 2024", Quality: model.QualityEstimated, Notes: notes("Gas dominant")},
	{CountryCode: "SA", Intensity: 530, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "QA", Intensity: 397, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "IL", Intensity: 465, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "KW", Intensity: 573, Source: "IEA 2024", Quality: model.QualityEstimated},
	// Asia Pacific
	{CountryCode: "JP", Intensity: 459, Source: "IEA 2024", Quality: model.QualityMeasured},
	{CountryCode: "KR", Intensity: 436, Source: "IEA 2024", Quality: model.QualityMeasured},
	{CountryCode: "CN", Intensity: 555, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "IN", Intensity: 708, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "SG", Intensity: 408, Source: "IEA 2024", Quality: model.QualityMeasured},
	{CountryCode: "HK", Intensity: 619, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "TH", Intensity: 449, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "MY", Intensity: 543, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "ID", Intensity: 667, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "VN", Intensity: 485, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "PH", Intensity: 547, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "AU", Intensity: 505, Source: "IEA 2024", Quality: model.QualityMeasured},
	{CountryCode: "NZ", Intensity: 118, Source: "IEA 2024", Quality: model.QualityMeasured, Notes: notes("High renewable")},
	// South America
	{CountryCode: "BR", Intensity: 103, Source: "IEA 2024", Quality: model.QualityMeasured, Notes: notes("High hydro")},
	{CountryCode: "AR", Intensity: 338, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "CL", Intensity: 351, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "CO", Intensity: 175, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "PE", Intensity: 283, Source: "IEA 2024", Quality: model.QualityEstimated},
	// Africa
	{CountryCode: "ZA", Intensity: 709, Source: "IEA 2024", Quality: model.QualityMeasured, Notes: notes("Coal dominant")},
	{CountryCode: "EG", Intensity: 442, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "MA", Intensity: 610, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "NG", Intensity: 391, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "KE", Intensity: 127, Source: "IEA 2024", Quality: model.QualityEstimated, Notes: notes("Geothermal")},
	{CountryCode: "GH", Intensity: 314, Source: "IEA 2024", Quality: model.QualityEstimated},
	{CountryCode: "TZ", Intensity: 347, Source: "IEA 2024", Quality: model.QualityEstimated},
}

// DefaultGridIntensity applies to any country missing from the table.
var DefaultGridIntensity = model.GridIntensity{
	Intensity: 475,
	Source:    "IPCC 2024 global average",
	Quality:   model.QualityDefault,
}

var euCountries = []string{
	"AT", "BE", "BG", "HR", "CZ", "DK", "EE", "FI", "FR", "DE",
	"GR", "HU", "IE", "IT", "LU", "NL", "PL", "PT", "RO", "SK",
	"SI", "ES", "SE",
}
