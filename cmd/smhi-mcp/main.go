package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/miyamo2/qilin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/Leopaexd/smhi-mcp/internal/forecast"
	"github.com/Leopaexd/smhi-mcp/internal/handler"
	"github.com/Leopaexd/smhi-mcp/internal/logging"
	"github.com/Leopaexd/smhi-mcp/internal/smhi"
)

var cli struct {
	LogFile     string `help:"Write rotated JSON logs to this file instead of stderr." env:"SMHI_MCP_LOG_FILE"`
	LogLevel    string `help:"Log level: debug, info, warn or error." default:"info" env:"SMHI_MCP_LOG_LEVEL"`
	MetricsAddr string `help:"Expose Prometheus metrics on this address (e.g. :9102). Disabled when empty." env:"SMHI_MCP_METRICS_ADDR"`
	Timezone    string `help:"IANA timezone for local civil time." default:"Europe/Stockholm" env:"SMHI_MCP_TIMEZONE"`
	BaseURL     string `help:"Override the SMHI point forecast base URL (for development)." env:"SMHI_MCP_BASE_URL"`
}

func main() {
	ktx := kong.Parse(&cli,
		kong.Name("smhi-mcp"),
		kong.Description("MCP server providing SMHI weather forecasts for daily planning."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	level, err := logging.ParseLevel(cli.LogLevel)
	ktx.FatalIfErrorf(err)
	logger := logging.New(cli.LogFile, level)
	slog.SetDefault(logger)

	// Load timezone once at startup
	loc, err := time.LoadLocation(cli.Timezone)
	if err != nil {
		logger.Warn("could not load timezone, using UTC", "timezone", cli.Timezone, "error", err)
		loc = time.UTC
	}

	client := smhi.NewClient(cli.BaseURL)
	pipeline := forecast.New(client, loc, logger)
	tool := handler.New(pipeline, logger)

	q := qilin.New("smhi-weather")
	tool.Register(q)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cli.MetricsAddr != "" {
		go serveMetrics(ctx, cli.MetricsAddr, logger)
	}

	logger.Info("starting MCP server",
		"transport", "stdio",
		"timezone", loc.String(),
		"default_lat", handler.DefaultLat,
		"default_lon", handler.DefaultLon)

	if err := q.Start(qilin.StartWithContext(ctx)); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func serveMetrics(ctx context.Context, addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("metrics server failed", "error", err)
	}
}
