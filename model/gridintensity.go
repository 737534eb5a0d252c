package model

// grid data quality tags, best first
const (
	QualityMeasured  = "measured"
	QualityEstimated = "estimated"
	QualityDefault   = "default"
)

type GridIntensity struct {
	CountryCode string  `gorm:"column:country_code;primaryKey;type:text" json:"country_code"`
	Intensity   float64 `gorm:"column:intensity;type:numeric;not null" json:"intensity_g_co2_per_kwh"`
	Source      string  `gorm:"column:source;type:text;not null" json:"source"`
	Quality     string  `gorm:"column:quality;type:text;not null" json:"quality"`
	Notes       *string `gorm:"column:notes;type:text" json:"notes"` // can be nil, pointer
}

func (GridIntensity) TableName() string {
	return "grid_intensity"
}
