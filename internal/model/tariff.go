package model

// Tariff describes a two-tier time-of-use tariff in sen/kWh.
//
// Weekdays carry the peak rate during [PeakStartHour, PeakEndHour);
// every other slot, and all of Saturday and Sunday, is off-peak.
type Tariff struct {
	Name             string  `yaml:"name" json:"name"`
	OffPeakSenPerKWh float64 `yaml:"off_peak_sen_per_kwh" json:"off_peak_sen_per_kwh"`
	PeakSenPerKWh    float64 `yaml:"peak_sen_per_kwh" json:"peak_sen_per_kwh"`
	PeakStartHour    int     `yaml:"peak_start_hour" json:"peak_start_hour"`
	PeakEndHour      int     `yaml:"peak_end_hour" json:"peak_end_hour"`
}

// TNB residential TOU defaults.
const (
	DefaultOffPeakRate = 34.43
	DefaultPeakRate    = 38.52
	DefaultPeakStart   = 14
	DefaultPeakEnd     = 22
	DefaultTariffName  = "tnb-residential-tou"
)

func DefaultTariff() Tariff {
	return Tariff{
		Name:             DefaultTariffName,
		OffPeakSenPerKWh: DefaultOffPeakRate,
		PeakSenPerKWh:    DefaultPeakRate,
		PeakStartHour:    DefaultPeakStart,
		PeakEndHour:      DefaultPeakEnd,
	}
}

// Rate returns the sen/kWh price for a slot.
// dayOfWeek uses Monday=0..Sunday=6; hour is 0-23.
func (t Tariff) Rate(dayOfWeek, hour int) float64 {
	if dayOfWeek >= 5 {
		return t.OffPeakSenPerKWh
	}
	if hour >= t.PeakStartHour && hour < t.PeakEndHour {
		return t.PeakSenPerKWh
	}
	return t.OffPeakSenPerKWh
}
