package forecast

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Leopaexd/smhi-mcp/internal/metrics"
	"github.com/Leopaexd/smhi-mcp/internal/smhi"
)

// HourlyForecast is one forecast hour with its timestamp converted to local
// civil time. Optional fields are nil when the upstream omits the parameter,
// which happens routinely in the far end of the horizon.
type HourlyForecast struct {
	Time               time.Time      `json:"time"`
	Temperature        float64        `json:"temperature"`
	WindSpeed          float64        `json:"wind_speed"`
	WindDirection      *int           `json:"wind_direction,omitempty"`
	WindGust           *float64       `json:"wind_gust,omitempty"`
	PrecipCategory     PrecipCategory `json:"precipitation_type"`
	PrecipAmount       float64        `json:"precipitation_amount"`
	Humidity           *int           `json:"humidity,omitempty"`
	Visibility         *float64       `json:"visibility,omitempty"`
	Pressure           *float64       `json:"pressure,omitempty"`
	CloudCover         *int           `json:"cloud_cover,omitempty"`
	ThunderProbability *int           `json:"thunder_probability,omitempty"`
	WeatherSymbol      int            `json:"weather_symbol"`
	SymbolMeaning      string         `json:"weather_symbol_meaning"`
}

// Parameters consumed from the upstream payload. Temperature, wind speed,
// precipitation and the weather symbol are required per entry; the rest are
// optional.
const (
	paramTemperature   = "t"
	paramWindSpeed     = "ws"
	paramWindDirection = "wd"
	paramWindGust      = "gust"
	paramPrecipCat     = "pcat"
	paramPrecipMean    = "pmean"
	paramHumidity      = "r"
	paramVisibility    = "vis"
	paramPressure      = "msl"
	paramCloudCover    = "tcc_mean"
	paramThunder       = "tstm"
	paramSymbol        = "Wsymb2"
)

// MapRecords converts the raw time series into ordered hourly records in the
// given location. Entries missing a required parameter or with an unparsable
// timestamp are dropped with a warning; a symbol code outside the table fails
// the whole call.
func MapRecords(ts []smhi.TimePoint, loc *time.Location, logger *slog.Logger) ([]HourlyForecast, error) {
	if logger == nil {
		logger = slog.Default()
	}

	records := make([]HourlyForecast, 0, len(ts))
	for _, tp := range ts {
		validTime, err := time.Parse(time.RFC3339, tp.ValidTime)
		if err != nil {
			logger.Warn("dropping entry with unparsable timestamp",
				"validTime", tp.ValidTime, "error", err)
			metrics.EntriesDroppedTotal.Inc()
			continue
		}

		temp, okTemp := tp.Value(paramTemperature)
		wind, okWind := tp.Value(paramWindSpeed)
		pcat, okPcat := tp.Value(paramPrecipCat)
		pmean, okPmean := tp.Value(paramPrecipMean)
		symbol, okSymbol := tp.Value(paramSymbol)
		if !okTemp || !okWind || !okPcat || !okPmean || !okSymbol {
			logger.Warn("dropping entry with missing required parameters",
				"validTime", tp.ValidTime,
				"t", okTemp, "ws", okWind, "pcat", okPcat, "pmean", okPmean, "Wsymb2", okSymbol)
			metrics.EntriesDroppedTotal.Inc()
			continue
		}

		meaning, ok := SymbolMeaning(int(symbol))
		if !ok {
			return nil, fmt.Errorf("%w: weather symbol %d outside known range at %s",
				ErrDataIntegrity, int(symbol), tp.ValidTime)
		}

		rec := HourlyForecast{
			Time:           validTime.In(loc),
			Temperature:    temp,
			WindSpeed:      wind,
			PrecipCategory: PrecipCategory(int(pcat)),
			PrecipAmount:   pmean,
			WeatherSymbol:  int(symbol),
			SymbolMeaning:  meaning,
		}

		if v, ok := tp.Value(paramWindDirection); ok {
			d := int(v)
			rec.WindDirection = &d
		}
		if v, ok := tp.Value(paramWindGust); ok {
			rec.WindGust = &v
		}
		if v, ok := tp.Value(paramHumidity); ok {
			h := int(v)
			rec.Humidity = &h
		}
		if v, ok := tp.Value(paramVisibility); ok {
			rec.Visibility = &v
		}
		if v, ok := tp.Value(paramPressure); ok {
			rec.Pressure = &v
		}
		if v, ok := tp.Value(paramCloudCover); ok {
			c := int(v)
			rec.CloudCover = &c
		}
		if v, ok := tp.Value(paramThunder); ok {
			t := int(v)
			rec.ThunderProbability = &t
		}

		records = append(records, rec)
	}

	return records, nil
}
