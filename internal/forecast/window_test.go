package forecast

import (
	"testing"
	"time"
)

func at(loc *time.Location, day, hour, minute int) HourlyForecast {
	return HourlyForecast{Time: time.Date(2025, 6, day, hour, minute, 0, 0, loc)}
}

func TestHorizonCut(t *testing.T) {
	loc := stockholm(t)
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, loc)

	records := []HourlyForecast{
		at(loc, 10, 9, 59),  // before now
		at(loc, 10, 10, 0),  // boundary, included
		at(loc, 10, 12, 59), // inside
		at(loc, 10, 13, 0),  // end boundary, excluded (half-open)
		at(loc, 11, 10, 0),  // well past
	}

	kept := HorizonCut(records, now, 3)
	if len(kept) != 2 {
		t.Fatalf("got %d records, want 2", len(kept))
	}
	if kept[0].Time.Hour() != 10 || kept[1].Time.Hour() != 12 {
		t.Errorf("wrong records kept: %v, %v", kept[0].Time, kept[1].Time)
	}
}

func TestDaytimeCut(t *testing.T) {
	loc := stockholm(t)
	records := []HourlyForecast{
		at(loc, 10, 3, 0),
		at(loc, 10, 7, 59),
		at(loc, 10, 8, 0),
		at(loc, 10, 23, 59),
		at(loc, 11, 0, 0),
	}

	kept := DaytimeCut(records, false)
	if len(kept) != 2 {
		t.Fatalf("got %d records, want 2", len(kept))
	}
	if kept[0].Time.Hour() != 8 || kept[1].Time.Hour() != 23 {
		t.Errorf("wrong records kept: %v, %v", kept[0].Time, kept[1].Time)
	}

	all := DaytimeCut(records, true)
	if len(all) != len(records) {
		t.Errorf("include_night: got %d records, want %d", len(all), len(records))
	}
}

func TestDaytimeCutEmptyResult(t *testing.T) {
	loc := stockholm(t)
	records := []HourlyForecast{at(loc, 10, 2, 0), at(loc, 10, 5, 0)}

	if kept := DaytimeCut(records, false); len(kept) != 0 {
		t.Errorf("got %d records, want 0", len(kept))
	}
}
