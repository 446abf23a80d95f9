package usecase

import (
	"testing"
	"time"

	"launchtrack-service/internal/domain/entity"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func timePtr(t time.Time) *time.Time {
	return &t
}

func launchWith(rocket string, success *bool, date *time.Time) *entity.EnrichedLaunch {
	return &entity.EnrichedLaunch{
		RocketName: strPtr(rocket),
		Success:    success,
		DateUTC:    date,
	}
}

func TestRocketSuccessRates(t *testing.T) {
	launches := []*entity.EnrichedLaunch{
		launchWith("Falcon 9", boolPtr(true), nil),
		launchWith("Falcon 9", boolPtr(true), nil),
		launchWith("Falcon 9", boolPtr(false), nil),
		launchWith("Falcon Heavy", boolPtr(false), nil),
		launchWith("Falcon 9", nil, nil),               // unknown outcome, skipped
		{Success: boolPtr(true)},                       // unknown rocket, skipped
		launchWith("Starship", nil, nil),               // no known outcomes at all
	}

	rates := RocketSuccessRates(launches)
	if len(rates) != 2 {
		t.Fatalf("expected 2 rockets, got %v", rates)
	}
	if rates["Falcon 9"] != 66.67 {
		t.Fatalf("Falcon 9 rate = %v, want 66.67", rates["Falcon 9"])
	}
	if rates["Falcon Heavy"] != 0.0 {
		t.Fatalf("Falcon Heavy rate = %v, want 0", rates["Falcon Heavy"])
	}
	if _, ok := rates["Starship"]; ok {
		t.Fatalf("rocket with no known outcomes should be omitted")
	}
}

func TestRocketSuccessRates_Empty(t *testing.T) {
	if rates := RocketSuccessRates(nil); len(rates) != 0 {
		t.Fatalf("expected empty map, got %v", rates)
	}
}

func TestGroupCounts(t *testing.T) {
	launches := []*entity.EnrichedLaunch{
		{LaunchpadName: strPtr("Site A")},
		{LaunchpadName: strPtr("Site B")},
		{LaunchpadName: strPtr("Site A")},
		{LaunchpadName: nil},
	}
	counts := GroupCounts(launches, func(l *entity.EnrichedLaunch) *string { return l.LaunchpadName })
	if counts["Site A"] != 2 || counts["Site B"] != 1 || len(counts) != 2 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func dateLaunches() []*entity.EnrichedLaunch {
	dates := []time.Time{
		time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	launches := make([]*entity.EnrichedLaunch, 0, len(dates))
	for _, d := range dates {
		launches = append(launches, &entity.EnrichedLaunch{DateUTC: timePtr(d)})
	}
	return launches
}

func TestTimeBucketCounts_MonthlyZeroFilled(t *testing.T) {
	series := TimeBucketCounts(dateLaunches(), BucketMonth)
	// Jan 2023 through Dec 2024, months in between zero-filled.
	if len(series) != 24 {
		t.Fatalf("expected 24 monthly buckets, got %d", len(series))
	}
	first := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	if !series[0].Period.Equal(first) || series[0].Count != 2 {
		t.Fatalf("unexpected first bucket: %+v", series[0])
	}
	if series[1].Count != 1 || series[2].Count != 3 {
		t.Fatalf("unexpected early buckets: %+v %+v", series[1], series[2])
	}
	if series[3].Count != 0 {
		t.Fatalf("gap month should be zero-filled: %+v", series[3])
	}
	may2024 := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	if !series[16].Period.Equal(may2024) || series[16].Count != 2 {
		t.Fatalf("unexpected May 2024 bucket: %+v", series[16])
	}
	last := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if !series[23].Period.Equal(last) || series[23].Count != 1 {
		t.Fatalf("unexpected last bucket: %+v", series[23])
	}
}

func TestTimeBucketCounts_Yearly(t *testing.T) {
	series := TimeBucketCounts(dateLaunches(), BucketYear)
	if len(series) != 2 {
		t.Fatalf("expected 2 yearly buckets, got %d", len(series))
	}
	if series[0].Count != 6 || series[1].Count != 3 {
		t.Fatalf("unexpected yearly counts: %+v", series)
	}
	if !series[0].Period.Equal(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first period: %v", series[0].Period)
	}
}

func TestTimeBucketCounts_SingleEntry(t *testing.T) {
	launches := []*entity.EnrichedLaunch{
		{DateUTC: timePtr(time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC))},
	}
	series := TimeBucketCounts(launches, BucketMonth)
	if len(series) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(series))
	}
	if !series[0].Period.Equal(time.Date(2023, 7, 31, 0, 0, 0, 0, time.UTC)) || series[0].Count != 1 {
		t.Fatalf("unexpected bucket: %+v", series[0])
	}
}

func TestTimeBucketCounts_Degenerate(t *testing.T) {
	if series := TimeBucketCounts(nil, BucketMonth); series != nil {
		t.Fatalf("empty input should yield an empty series: %+v", series)
	}
	dateless := []*entity.EnrichedLaunch{{}, {Name: strPtr("no date")}}
	if series := TimeBucketCounts(dateless, BucketYear); series != nil {
		t.Fatalf("dateless input should yield an empty series: %+v", series)
	}
	if series := TimeBucketCounts(dateLaunches(), BucketRule("week")); series != nil {
		t.Fatalf("unknown rule should yield an empty series: %+v", series)
	}
}
