package handler

import (
	"fmt"
	"log/slog"

	"github.com/miyamo2/qilin"

	"github.com/Leopaexd/smhi-mcp/internal/forecast"
	"github.com/Leopaexd/smhi-mcp/internal/metrics"
)

// Stockholm (Södermalm), used when the caller does not pass coordinates.
const (
	DefaultLat           = 59.32
	DefaultLon           = 18.04
	DefaultForecastHours = 24
)

const ToolName = "get_weather_forecast"

const ToolDescription = "Get a weather forecast for a location in Sweden. " +
	"Returns structured hourly data, summary statistics, planning tips and formatted text. " +
	"By default shows only daytime hours (08:00-23:59) for practical planning."

// GetWeatherForecastRequest is the tool input. Zero values for lat, lon and
// forecast_hours fall back to the Stockholm defaults before validation.
type GetWeatherForecastRequest struct {
	Lat           float64 `json:"lat"            jsonschema:"title=Latitude,description=Latitude in the range 55.0-70.0 (Sweden region); defaults to Stockholm"`
	Lon           float64 `json:"lon"            jsonschema:"title=Longitude,description=Longitude in the range 10.0-25.0 (Sweden region); defaults to Stockholm"`
	ForecastHours int     `json:"forecast_hours" jsonschema:"title=Forecast hours,description=Number of hours ahead to include (1-120); defaults to 24"`
	DetailLevel   string  `json:"detail_level"   jsonschema:"title=Detail level,description=Verbosity of the formatted text,enum=summary,enum=detailed,enum=full"`
	IncludeNight  bool    `json:"include_night"  jsonschema:"title=Include night,description=Include nighttime hours (00:00-07:59); implied by detail_level=full"`
}

// WeatherTool serves the get_weather_forecast MCP tool.
type WeatherTool struct {
	pipeline *forecast.Pipeline
	logger   *slog.Logger
}

func New(pipeline *forecast.Pipeline, logger *slog.Logger) *WeatherTool {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeatherTool{pipeline: pipeline, logger: logger}
}

// Register attaches the tool to a qilin server.
func (t *WeatherTool) Register(q *qilin.Qilin) {
	q.Tool(ToolName,
		(*GetWeatherForecastRequest)(nil),
		t.GetWeatherForecast,
		qilin.ToolWithDescription(ToolDescription))
}

// GetWeatherForecast handles one tool invocation. Errors are returned to the
// host as a single message in place of a forecast.
func (t *WeatherTool) GetWeatherForecast(c qilin.ToolContext) error {
	var req GetWeatherForecastRequest
	if err := c.Bind(&req); err != nil {
		metrics.ForecastRequestsTotal.WithLabelValues("bind_error").Inc()
		return fmt.Errorf("%w: %v", forecast.ErrValidation, err)
	}
	applyDefaults(&req)

	detail, err := forecast.ParseDetailLevel(req.DetailLevel)
	if err != nil {
		metrics.ForecastRequestsTotal.WithLabelValues("validation_error").Inc()
		return err
	}

	t.logger.Info("tool call started",
		"tool", ToolName,
		"lat", req.Lat, "lon", req.Lon,
		"forecast_hours", req.ForecastHours,
		"detail_level", detail,
		"include_night", req.IncludeNight)

	fc, err := t.pipeline.Forecast(c.Context(), forecast.Request{
		Latitude:     req.Lat,
		Longitude:    req.Lon,
		Hours:        req.ForecastHours,
		Detail:       detail,
		IncludeNight: req.IncludeNight,
	})
	if err != nil {
		metrics.ForecastRequestsTotal.WithLabelValues("error").Inc()
		t.logger.Error("tool call failed", "tool", ToolName, "error", err)
		return fmt.Errorf("error fetching weather forecast: %w", err)
	}

	metrics.ForecastRequestsTotal.WithLabelValues("ok").Inc()
	t.logger.Info("tool call succeeded",
		"tool", ToolName, "hourly_records", len(fc.Hourly), "tips", len(fc.PlanningTips))
	return c.JSON(fc)
}

func applyDefaults(req *GetWeatherForecastRequest) {
	if req.Lat == 0 {
		req.Lat = DefaultLat
	}
	if req.Lon == 0 {
		req.Lon = DefaultLon
	}
	if req.ForecastHours == 0 {
		req.ForecastHours = DefaultForecastHours
	}
}
