package forecast

import "fmt"

// Threshold constants for planning tips.
const (
	freezingMaxTemp    = 0.0
	coldMinTemp        = 5.0
	warmMaxTemp        = 20.0
	strongGustSpeed    = 15.0
	strongWindSpeed    = 10.0
	poorVisibilityKm   = 1.0
	thunderRiskPercent = 30
)

// PlanningTips evaluates the threshold rules over the filtered window. Rules
// are independent and order-stable; several can fire on the same forecast.
// An empty window yields no tips.
func PlanningTips(records []HourlyForecast, s Summary) []string {
	if !s.HasData {
		return nil
	}

	var tips []string

	switch {
	case s.MaxTemperature < freezingMaxTemp:
		tips = append(tips, "❄️ Below freezing all day - dress warmly, icy conditions likely")
	case s.MinTemperature < coldMinTemp:
		tips = append(tips, "🧥 Cold temperatures - bring warm layers")
	case s.MaxTemperature > warmMaxTemp:
		tips = append(tips, "☀️ Warm day - good for outdoor activities")
	}

	if s.HasPrecipitation {
		if anyFrozenPrecip(records) {
			tips = append(tips, "🌨️ Snow or freezing conditions expected - allow extra commute time")
		} else {
			tips = append(tips, "☔ Rain expected - bring umbrella, consider indoor activities")
		}
	}

	switch {
	case s.MaxWindGust != nil && *s.MaxWindGust > strongGustSpeed:
		tips = append(tips, fmt.Sprintf("💨 Strong wind gusts up to %.1f m/s - biking may be challenging", *s.MaxWindGust))
	case s.MaxWindSpeed > strongWindSpeed:
		tips = append(tips, "💨 Strong winds - biking may be challenging")
	}

	for _, r := range records {
		if r.Visibility != nil && *r.Visibility < poorVisibilityKm {
			tips = append(tips, "🌫️ Poor visibility expected - drive carefully")
			break
		}
	}

	for _, r := range records {
		if r.ThunderProbability != nil && *r.ThunderProbability > thunderRiskPercent {
			tips = append(tips, "⚡ Thunderstorm risk - avoid outdoor activities during peak hours")
			break
		}
	}

	if len(tips) == 0 {
		tips = append(tips, "✅ Good weather conditions for normal activities")
	}

	return tips
}

func anyFrozenPrecip(records []HourlyForecast) bool {
	for _, r := range records {
		if r.PrecipCategory.Frozen() {
			return true
		}
	}
	return false
}
