package smhi

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/Leopaexd/smhi-mcp/internal/httputil"
	"github.com/Leopaexd/smhi-mcp/internal/metrics"
)

// DefaultBaseURL is the SMHI point forecast endpoint (PMP3g model, version 2).
const DefaultBaseURL = "https://opendata-download-metfcst.smhi.se/api/category/pmp3g/version/2/geotype/point"

const maxErrorBody = 512

type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  httputil.NewClient(),
		// SMHI open data is free but asks for restraint; one request per
		// tool call never gets near this.
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}
}

// PointForecast fetches the forecast time series for the given coordinates.
// Coordinates are rounded to 6 decimals as the endpoint expects.
func (c *Client) PointForecast(ctx context.Context, lat, lon float64) (*PointResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	url := fmt.Sprintf("%s/lon/%s/lat/%s/data.json", c.baseURL, formatCoord(lon), formatCoord(lat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.UpstreamCallsTotal.WithLabelValues("http_error").Inc()
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("network_error").Inc()
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}

	var data PointResponse
	if err := json.Unmarshal(body, &data); err != nil {
		metrics.UpstreamCallsTotal.WithLabelValues("parse_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(data.TimeSeries) == 0 {
		metrics.UpstreamCallsTotal.WithLabelValues("parse_error").Inc()
		return nil, fmt.Errorf("%w: payload has no timeSeries entries", ErrParse)
	}

	metrics.UpstreamCallsTotal.WithLabelValues("ok").Inc()
	return &data, nil
}

func formatCoord(v float64) string {
	rounded := math.Round(v*1e6) / 1e6
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
