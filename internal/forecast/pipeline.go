package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Leopaexd/smhi-mcp/internal/smhi"
)

// Coordinate bounds cover the area the SMHI point forecast model serves.
const (
	MinLatitude  = 55.0
	MaxLatitude  = 70.0
	MinLongitude = 10.0
	MaxLongitude = 25.0

	MinForecastHours = 1
	MaxForecastHours = 120
)

// Request holds validated tool parameters for one forecast call.
type Request struct {
	Latitude     float64
	Longitude    float64
	Hours        int
	Detail       DetailLevel
	IncludeNight bool
}

// Validate range-checks all parameters. It runs before any network access and
// names the violated constraint in the error.
func (r Request) Validate() error {
	if r.Latitude < MinLatitude || r.Latitude > MaxLatitude {
		return fmt.Errorf("%w: latitude %.4f must be between %.1f and %.1f (Sweden region)",
			ErrValidation, r.Latitude, MinLatitude, MaxLatitude)
	}
	if r.Longitude < MinLongitude || r.Longitude > MaxLongitude {
		return fmt.Errorf("%w: longitude %.4f must be between %.1f and %.1f (Sweden region)",
			ErrValidation, r.Longitude, MinLongitude, MaxLongitude)
	}
	if r.Hours < MinForecastHours || r.Hours > MaxForecastHours {
		return fmt.Errorf("%w: forecast_hours %d must be between %d and %d",
			ErrValidation, r.Hours, MinForecastHours, MaxForecastHours)
	}
	switch r.Detail {
	case DetailSummary, DetailDetailed, DetailFull:
	default:
		return fmt.Errorf("%w: detail_level %q must be one of summary, detailed, full",
			ErrValidation, string(r.Detail))
	}
	return nil
}

// Forecast is the complete result of one tool call: the structured hourly
// window, its summary, planning tips and the rendered markdown. Timestamps are
// RFC 3339 in local civil time.
type Forecast struct {
	CurrentTime     string           `json:"current_time"`
	LocationLat     float64          `json:"location_lat"`
	LocationLon     float64          `json:"location_lon"`
	ForecastUpdated string           `json:"forecast_updated"`
	ForecastHours   int              `json:"forecast_hours"`
	Hourly          []HourlyForecast `json:"hourly"`
	Summary         Summary          `json:"summary"`
	PlanningTips    []string         `json:"planning_tips"`
	FormattedText   string           `json:"formatted_text"`
}

// Fetcher fetches the raw point forecast payload for given coordinates.
type Fetcher interface {
	PointForecast(ctx context.Context, lat, lon float64) (*smhi.PointResponse, error)
}

// Pipeline turns a validated request into a Forecast: fetch, map, convert to
// local time, window-filter, summarize, tip, format. No state is carried
// between calls.
type Pipeline struct {
	fetcher Fetcher
	loc     *time.Location
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithNowFunc overrides the wall clock, for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func New(fetcher Fetcher, loc *time.Location, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		fetcher: fetcher,
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Forecast executes one forecast request end to end.
func (p *Pipeline) Forecast(ctx context.Context, req Request) (*Forecast, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := p.fetcher.PointForecast(ctx, req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	p.logger.Info("fetched point forecast",
		"lat", req.Latitude, "lon", req.Longitude, "entries", len(payload.TimeSeries))

	records, err := MapRecords(payload.TimeSeries, p.loc, p.logger)
	if err != nil {
		return nil, err
	}

	now := p.now().In(p.loc)
	updated := p.forecastUpdated(payload, records, now)

	includeNight := req.IncludeNight || req.Detail == DetailFull
	window := HorizonCut(records, now, req.Hours)
	window = DaytimeCut(window, includeNight)
	if len(window) == 0 {
		p.logger.Warn("window filter left no records",
			"mapped", len(records), "hours", req.Hours, "include_night", includeNight)
	}

	summary := Summarize(window)
	tips := PlanningTips(window, summary)

	lat, lon := req.Latitude, req.Longitude
	if glat, ok := payload.Geometry.Lat(); ok {
		lat = glat
	}
	if glon, ok := payload.Geometry.Lon(); ok {
		lon = glon
	}

	text := RenderMarkdown(now, lat, lon, updated, req.Hours, window, summary, tips, req.Detail)

	return &Forecast{
		CurrentTime:     now.Format(time.RFC3339),
		LocationLat:     lat,
		LocationLon:     lon,
		ForecastUpdated: updated.Format(time.RFC3339),
		ForecastHours:   req.Hours,
		Hourly:          window,
		Summary:         summary,
		PlanningTips:    tips,
		FormattedText:   text,
	}, nil
}

// forecastUpdated prefers the payload's approvedTime; the upstream does not
// guarantee the first entry lines up with the issuance time, so the first
// mapped record is only a fallback.
func (p *Pipeline) forecastUpdated(payload *smhi.PointResponse, records []HourlyForecast, now time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, payload.ApprovedTime); err == nil {
		return t.In(p.loc)
	}
	if len(records) > 0 {
		return records[0].Time
	}
	return now
}
