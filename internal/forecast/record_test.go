package forecast

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Leopaexd/smhi-mcp/internal/smhi"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stockholm(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}
	return loc
}

func param(name string, value float64) smhi.Parameter {
	return smhi.Parameter{Name: name, Values: []float64{value}}
}

// fullEntry returns a time point carrying every consumed parameter.
func fullEntry(validTime string, temp float64) smhi.TimePoint {
	return smhi.TimePoint{
		ValidTime: validTime,
		Parameters: []smhi.Parameter{
			param("t", temp),
			param("ws", 3.4),
			param("wd", 220),
			param("gust", 7.8),
			param("pcat", 3),
			param("pmean", 0.4),
			param("r", 82),
			param("vis", 9.5),
			param("msl", 1008),
			param("tcc_mean", 6),
			param("tstm", 5),
			param("Wsymb2", 18),
		},
	}
}

func TestMapRecords(t *testing.T) {
	loc := stockholm(t)
	ts := []smhi.TimePoint{
		fullEntry("2025-06-10T10:00:00Z", 17.3),
		fullEntry("2025-06-10T11:00:00Z", 18.1),
	}

	records, err := MapRecords(ts, loc, discardLogger())
	if err != nil {
		t.Fatalf("MapRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	r := records[0]
	if want := time.Date(2025, 6, 10, 12, 0, 0, 0, loc); !r.Time.Equal(want) {
		t.Errorf("time = %v, want %v", r.Time, want)
	}
	if r.Time.Location() != loc {
		t.Errorf("time location = %v, want %v", r.Time.Location(), loc)
	}
	if r.Temperature != 17.3 {
		t.Errorf("temperature = %v", r.Temperature)
	}
	if r.WindSpeed != 3.4 {
		t.Errorf("wind speed = %v", r.WindSpeed)
	}
	if r.WindDirection == nil || *r.WindDirection != 220 {
		t.Errorf("wind direction = %v", r.WindDirection)
	}
	if r.WindGust == nil || *r.WindGust != 7.8 {
		t.Errorf("wind gust = %v", r.WindGust)
	}
	if r.PrecipCategory != PrecipRain {
		t.Errorf("precip category = %v", r.PrecipCategory)
	}
	if r.PrecipAmount != 0.4 {
		t.Errorf("precip amount = %v", r.PrecipAmount)
	}
	if r.Humidity == nil || *r.Humidity != 82 {
		t.Errorf("humidity = %v", r.Humidity)
	}
	if r.Pressure == nil || *r.Pressure != 1008 {
		t.Errorf("pressure = %v", r.Pressure)
	}
	if r.CloudCover == nil || *r.CloudCover != 6 {
		t.Errorf("cloud cover = %v", r.CloudCover)
	}
	if r.ThunderProbability == nil || *r.ThunderProbability != 5 {
		t.Errorf("thunder probability = %v", r.ThunderProbability)
	}
	if r.WeatherSymbol != 18 || r.SymbolMeaning != "Light rain" {
		t.Errorf("symbol = %d %q", r.WeatherSymbol, r.SymbolMeaning)
	}

	if !records[0].Time.Before(records[1].Time) {
		t.Error("records not in ascending timestamp order")
	}
}

func TestMapRecordsDropsSparseEntries(t *testing.T) {
	loc := stockholm(t)
	sparse := smhi.TimePoint{
		ValidTime: "2025-06-10T11:00:00Z",
		Parameters: []smhi.Parameter{
			param("t", 18.1),
			// no ws, pcat, pmean, Wsymb2: far-horizon entries lose fields
		},
	}
	ts := []smhi.TimePoint{
		fullEntry("2025-06-10T10:00:00Z", 17.3),
		sparse,
		fullEntry("2025-06-10T12:00:00Z", 19.0),
	}

	records, err := MapRecords(ts, loc, discardLogger())
	if err != nil {
		t.Fatalf("MapRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (sparse entry dropped)", len(records))
	}
	if records[0].Temperature != 17.3 || records[1].Temperature != 19.0 {
		t.Errorf("wrong entries survived: %v, %v", records[0].Temperature, records[1].Temperature)
	}
}

func TestMapRecordsOptionalFieldsAbsent(t *testing.T) {
	loc := stockholm(t)
	minimal := smhi.TimePoint{
		ValidTime: "2025-06-10T10:00:00Z",
		Parameters: []smhi.Parameter{
			param("t", 17.3),
			param("ws", 3.4),
			param("pcat", 0),
			param("pmean", 0),
			param("Wsymb2", 1),
		},
	}

	records, err := MapRecords([]smhi.TimePoint{minimal}, loc, discardLogger())
	if err != nil {
		t.Fatalf("MapRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.WindDirection != nil || r.WindGust != nil || r.Humidity != nil ||
		r.Visibility != nil || r.Pressure != nil || r.CloudCover != nil || r.ThunderProbability != nil {
		t.Errorf("optional fields should be nil: %+v", r)
	}
}

func TestMapRecordsSymbolOutOfRange(t *testing.T) {
	loc := stockholm(t)
	bad := fullEntry("2025-06-10T10:00:00Z", 17.3)
	for i := range bad.Parameters {
		if bad.Parameters[i].Name == "Wsymb2" {
			bad.Parameters[i].Values = []float64{42}
		}
	}

	_, err := MapRecords([]smhi.TimePoint{bad}, loc, discardLogger())
	if !errors.Is(err, ErrDataIntegrity) {
		t.Errorf("error = %v, want %v", err, ErrDataIntegrity)
	}
}

func TestMapRecordsDSTTransition(t *testing.T) {
	loc := stockholm(t)
	// Last Sunday of March 2025: 01:00 UTC is the CET->CEST switch,
	// 02:00 CET becomes 03:00 CEST.
	ts := []smhi.TimePoint{
		fullEntry("2025-03-30T00:00:00Z", 2.0),
		fullEntry("2025-03-30T01:00:00Z", 2.5),
		fullEntry("2025-03-30T02:00:00Z", 3.0),
	}

	records, err := MapRecords(ts, loc, discardLogger())
	if err != nil {
		t.Fatalf("MapRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	wantLocal := []string{"01:00 +0100", "03:00 +0200", "04:00 +0200"}
	for i, want := range wantLocal {
		if got := records[i].Time.Format("15:04 -0700"); got != want {
			t.Errorf("record %d local time = %q, want %q", i, got, want)
		}
	}
}
