package usecase

import (
	"math"
	"time"

	"launchtrack-service/internal/domain/entity"
)

// BucketRule selects the resolution of TimeBucketCounts.
type BucketRule string

const (
	BucketMonth BucketRule = "month"
	BucketYear  BucketRule = "year"
)

// TimeBucket is one period of the launch-frequency series. Period is the
// last day of the month or year it covers.
type TimeBucket struct {
	Period time.Time `json:"period"`
	Count  int       `json:"count"`
}

// RocketSuccessRates computes the success percentage per rocket, rounded to
// two decimals. Launches with an unknown rocket or an unknown outcome are
// left out; a rocket with no known outcomes does not appear at all.
func RocketSuccessRates(launches []*entity.EnrichedLaunch) map[string]float64 {
	total := make(map[string]int)
	succeeded := make(map[string]int)
	for _, launch := range launches {
		if launch == nil || launch.RocketName == nil || launch.Success == nil {
			continue
		}
		total[*launch.RocketName]++
		if *launch.Success {
			succeeded[*launch.RocketName]++
		}
	}
	rates := make(map[string]float64, len(total))
	for name, n := range total {
		pct := float64(succeeded[name]) / float64(n) * 100
		rates[name] = math.Round(pct*100) / 100
	}
	return rates
}

// GroupCounts tallies launches per distinct value of the selected field.
// Launches where the selector yields nil are skipped.
func GroupCounts(launches []*entity.EnrichedLaunch, key func(*entity.EnrichedLaunch) *string) map[string]int {
	counts := make(map[string]int)
	for _, launch := range launches {
		if launch == nil {
			continue
		}
		if v := key(launch); v != nil {
			counts[*v]++
		}
	}
	return counts
}

// TimeBucketCounts buckets launches by month or year of date_utc. Periods
// between the first and last launch with no launches at all are included
// with a zero count, so the series plots without gaps. Launches without a
// date are skipped; an empty or dateless input yields an empty series.
func TimeBucketCounts(launches []*entity.EnrichedLaunch, rule BucketRule) []TimeBucket {
	if rule != BucketMonth && rule != BucketYear {
		return nil
	}

	counts := make(map[time.Time]int)
	var min, max time.Time
	for _, launch := range launches {
		if launch == nil || launch.DateUTC == nil {
			continue
		}
		period := periodEnd(*launch.DateUTC, rule)
		counts[period]++
		if min.IsZero() || period.Before(min) {
			min = period
		}
		if max.IsZero() || period.After(max) {
			max = period
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var series []TimeBucket
	for period := min; !period.After(max); period = periodEnd(period.AddDate(0, 0, 1), rule) {
		series = append(series, TimeBucket{Period: period, Count: counts[period]})
	}
	return series
}

// periodEnd maps an instant to the last day of its month or year, at
// midnight UTC.
func periodEnd(t time.Time, rule BucketRule) time.Time {
	t = t.UTC()
	if rule == BucketYear {
		return time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}
