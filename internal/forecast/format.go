package forecast

import (
	"fmt"
	"strings"
	"time"
)

// DetailLevel selects output verbosity for the formatted text.
type DetailLevel string

const (
	DetailSummary  DetailLevel = "summary"
	DetailDetailed DetailLevel = "detailed"
	DetailFull     DetailLevel = "full"
)

// ParseDetailLevel validates a detail level string; empty defaults to detailed.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch DetailLevel(s) {
	case "":
		return DetailDetailed, nil
	case DetailSummary, DetailDetailed, DetailFull:
		return DetailLevel(s), nil
	}
	return "", fmt.Errorf("%w: detail_level %q must be one of summary, detailed, full", ErrValidation, s)
}

// Records shown every third retained hour in detailed mode.
const detailedStep = 3

// RenderMarkdown renders the forecast as a human-readable markdown document.
// Records are expected to already be window-filtered; an empty window renders
// an explicit no-data section instead of failing.
func RenderMarkdown(now time.Time, lat, lon float64, updated time.Time, hours int,
	records []HourlyForecast, s Summary, tips []string, detail DetailLevel) string {

	var b strings.Builder
	b.WriteString("# 🌤️ Weather Forecast for Planning\n\n")
	fmt.Fprintf(&b, "**Current time:** %s\n", now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Location:** Lat %.2f, Lon %.2f\n", lat, lon)
	fmt.Fprintf(&b, "**Forecast updated:** %s\n", updated.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Showing:** Next %d hours\n\n", hours)

	b.WriteString("## Today's Summary\n")
	if !s.HasData {
		b.WriteString("No forecast data available for the requested window.\n")
	} else {
		fmt.Fprintf(&b, "- **Temperature range:** %.1f°C to %.1f°C\n", s.MinTemperature, s.MaxTemperature)
		if len(s.PrecipitationTypes) > 0 {
			fmt.Fprintf(&b, "- **Precipitation:** %s\n", strings.Join(s.PrecipitationTypes, ", "))
		} else {
			b.WriteString("- **Precipitation:** None expected\n")
		}
		fmt.Fprintf(&b, "- **Wind:** %.1f m/s average, up to %.1f m/s", s.AvgWindSpeed, s.MaxWindSpeed)
		if s.MaxWindGust != nil {
			fmt.Fprintf(&b, " (gusts: %.1f m/s)", *s.MaxWindGust)
		}
		b.WriteString("\n")
	}

	if detail != DetailSummary && s.HasData {
		b.WriteString("\n## Detailed Forecast\n")
		step := 1
		if detail == DetailDetailed {
			step = detailedStep
		}
		for i, r := range records {
			if i%step != 0 {
				continue
			}
			b.WriteString(formatHourLine(r, detail))
			b.WriteString("\n")
		}
	}

	if len(tips) > 0 {
		b.WriteString("\n## Planning Tips\n")
		for _, tip := range tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
	}

	return b.String()
}

func formatHourLine(r HourlyForecast, detail DetailLevel) string {
	parts := []string{fmt.Sprintf("**%s** - %.1f°C", r.Time.Format("15:04"), r.Temperature)}

	if precip := formatPrecipitation(r.PrecipCategory, r.PrecipAmount); precip != "" {
		parts = append(parts, precip)
	}

	wind := fmt.Sprintf("Wind %.1f m/s", r.WindSpeed)
	// A gust close to the sustained speed adds nothing to the line.
	if r.WindGust != nil && *r.WindGust > r.WindSpeed+2 {
		wind += fmt.Sprintf(" (gusts %.1f)", *r.WindGust)
	}
	parts = append(parts, wind)

	if detail == DetailFull {
		if r.Humidity != nil {
			parts = append(parts, fmt.Sprintf("Humidity %d%%", *r.Humidity))
		}
		if r.Visibility != nil {
			parts = append(parts, fmt.Sprintf("Vis %.1fkm", *r.Visibility))
		}
		if r.Pressure != nil {
			parts = append(parts, fmt.Sprintf("Pressure %.0f hPa", *r.Pressure))
		}
		if r.SymbolMeaning != "" {
			parts = append(parts, fmt.Sprintf("(%s)", r.SymbolMeaning))
		}
	}

	return strings.Join(parts, ", ")
}

func formatPrecipitation(cat PrecipCategory, amount float64) string {
	if cat == PrecipNone {
		return ""
	}
	if amount > 0 {
		return fmt.Sprintf("%s (%.1f mm/h)", cat, amount)
	}
	return cat.String()
}
