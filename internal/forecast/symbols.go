package forecast

// Wsymb2 is the SMHI categorical weather symbol, codes 1-27.
var symbolMeanings = map[int]string{
	1:  "Clear sky",
	2:  "Nearly clear sky",
	3:  "Variable cloudiness",
	4:  "Halfclear sky",
	5:  "Cloudy sky",
	6:  "Overcast",
	7:  "Fog",
	8:  "Light rain showers",
	9:  "Moderate rain showers",
	10: "Heavy rain showers",
	11: "Thunderstorm",
	12: "Light sleet showers",
	13: "Moderate sleet showers",
	14: "Heavy sleet showers",
	15: "Light snow showers",
	16: "Moderate snow showers",
	17: "Heavy snow showers",
	18: "Light rain",
	19: "Moderate rain",
	20: "Heavy rain",
	21: "Thunder",
	22: "Light sleet",
	23: "Moderate sleet",
	24: "Heavy sleet",
	25: "Light snowfall",
	26: "Moderate snowfall",
	27: "Heavy snowfall",
}

// SymbolMeaning resolves a Wsymb2 code to its description.
func SymbolMeaning(code int) (string, bool) {
	s, ok := symbolMeanings[code]
	return s, ok
}

// PrecipCategory is the SMHI pcat precipitation category.
type PrecipCategory int

const (
	PrecipNone PrecipCategory = iota
	PrecipSnow
	PrecipSnowRainMix
	PrecipRain
	PrecipDrizzle
	PrecipFreezingRain
	PrecipFreezingDrizzle
)

func (p PrecipCategory) String() string {
	switch p {
	case PrecipNone:
		return "None"
	case PrecipSnow:
		return "Snow"
	case PrecipSnowRainMix:
		return "Snow/Rain mix"
	case PrecipRain:
		return "Rain"
	case PrecipDrizzle:
		return "Drizzle"
	case PrecipFreezingRain:
		return "Freezing rain"
	case PrecipFreezingDrizzle:
		return "Freezing drizzle"
	default:
		return "Precipitation"
	}
}

// Frozen reports whether the category calls for winter-conditions advice.
func (p PrecipCategory) Frozen() bool {
	switch p {
	case PrecipSnow, PrecipSnowRainMix, PrecipFreezingRain, PrecipFreezingDrizzle:
		return true
	}
	return false
}
