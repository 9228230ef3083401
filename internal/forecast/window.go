package forecast

import "time"

// Daytime hours run from 08:00 to 23:59 local time.
const daytimeStartHour = 8

// HorizonCut keeps records whose timestamp falls within [now, now+hours).
// Order is preserved.
func HorizonCut(records []HourlyForecast, now time.Time, hours int) []HourlyForecast {
	end := now.Add(time.Duration(hours) * time.Hour)
	var kept []HourlyForecast
	for _, r := range records {
		if r.Time.Before(now) || !r.Time.Before(end) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// DaytimeCut drops nighttime records (local hour 00-07) unless includeNight
// is set. Order is preserved.
func DaytimeCut(records []HourlyForecast, includeNight bool) []HourlyForecast {
	if includeNight {
		return records
	}
	var kept []HourlyForecast
	for _, r := range records {
		if r.Time.Hour() < daytimeStartHour {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
