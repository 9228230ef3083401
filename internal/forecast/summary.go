package forecast

// Summary holds aggregate statistics over a filtered forecast window.
// HasData is false when the window came out empty, in which case the numeric
// fields are zero and must not be displayed.
type Summary struct {
	MinTemperature     float64  `json:"min_temperature"`
	MaxTemperature     float64  `json:"max_temperature"`
	AvgWindSpeed       float64  `json:"avg_wind_speed"`
	MaxWindSpeed       float64  `json:"max_wind_speed"`
	MaxWindGust        *float64 `json:"max_wind_gust,omitempty"`
	PrecipitationTypes []string `json:"precipitation_types"`
	HasPrecipitation   bool     `json:"has_precipitation"`
	HasData            bool     `json:"has_data"`
}

// Summarize computes fresh statistics over the given records. Precipitation
// types are distinct non-"none" categories in first-occurrence order.
func Summarize(records []HourlyForecast) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	s := Summary{
		MinTemperature: records[0].Temperature,
		MaxTemperature: records[0].Temperature,
		HasData:        true,
	}

	var windSum float64
	seen := make(map[PrecipCategory]bool)
	for _, r := range records {
		if r.Temperature < s.MinTemperature {
			s.MinTemperature = r.Temperature
		}
		if r.Temperature > s.MaxTemperature {
			s.MaxTemperature = r.Temperature
		}

		windSum += r.WindSpeed
		if r.WindSpeed > s.MaxWindSpeed {
			s.MaxWindSpeed = r.WindSpeed
		}
		if r.WindGust != nil && (s.MaxWindGust == nil || *r.WindGust > *s.MaxWindGust) {
			g := *r.WindGust
			s.MaxWindGust = &g
		}

		if r.PrecipCategory != PrecipNone {
			s.HasPrecipitation = true
			if !seen[r.PrecipCategory] {
				seen[r.PrecipCategory] = true
				s.PrecipitationTypes = append(s.PrecipitationTypes, r.PrecipCategory.String())
			}
		}
	}
	s.AvgWindSpeed = windSum / float64(len(records))

	return s
}
