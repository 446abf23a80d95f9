package usecase

import (
	"strings"
	"time"

	"launchtrack-service/internal/domain/entity"
)

// IndexByID builds a lookup from id to record for a reference dataset
// (rockets or launchpads). Elements that are not objects, or that carry no
// string id, are skipped; a duplicate id keeps the later element.
func IndexByID(records []interface{}) map[string]entity.RawRecord {
	index := make(map[string]entity.RawRecord, len(records))
	for _, rec := range records {
		m, ok := rec.(map[string]interface{})
		if !ok {
			continue
		}
		id, ok := m["id"].(string)
		if !ok {
			continue
		}
		index[id] = m
	}
	return index
}

// launchDateLayouts are tried in order after a trailing Z designator has
// been rewritten to an explicit +00:00 offset. Offset-less timestamps are
// read as UTC.
var launchDateLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseLaunchDate normalizes an upstream date_utc value into a time instant.
// Non-string and unparseable values yield nil rather than an error; a bad
// timestamp must never fail the batch.
func ParseLaunchDate(v interface{}) *time.Time {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	// The upstream API emits Zulu-suffixed ISO-8601 timestamps.
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range launchDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// EnrichLaunches joins raw launches against the launchpad and rocket indexes
// and produces the flat record set handed to storage. Non-object elements in
// rawLaunches are dropped; every other degradation (missing key, unknown
// reference id, bad timestamp) surfaces as a nil field on the output record.
// Output order follows input order.
func EnrichLaunches(rawLaunches []interface{}, launchpads, rockets map[string]entity.RawRecord) []*entity.EnrichedLaunch {
	enriched := make([]*entity.EnrichedLaunch, 0, len(rawLaunches))
	for _, raw := range rawLaunches {
		launch, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		launchpad := resolveReference(launch["launchpad"], launchpads)
		rocket := resolveReference(launch["rocket"], rockets)
		enriched = append(enriched, &entity.EnrichedLaunch{
			ID:                stringField(launch, "id"),
			Name:              stringField(launch, "name"),
			DateUTC:           ParseLaunchDate(launch["date_utc"]),
			Details:           stringField(launch, "details"),
			LaunchpadID:       stringValue(launch["launchpad"]),
			LaunchpadName:     stringField(launchpad, "name"),
			LaunchpadFullname: stringField(launchpad, "full_name"),
			RocketID:          stringValue(launch["rocket"]),
			RocketName:        stringField(rocket, "name"),
			Success:           boolField(launch, "success"),
			Upcoming:          boolField(launch, "upcoming"),
		})
	}
	return enriched
}

// resolveReference returns the referenced record, or an empty one when the
// foreign key is missing, null, or unknown to the index. Lookups never fail.
func resolveReference(key interface{}, index map[string]entity.RawRecord) entity.RawRecord {
	id, ok := key.(string)
	if !ok {
		return entity.RawRecord{}
	}
	if rec, ok := index[id]; ok {
		return rec
	}
	return entity.RawRecord{}
}

func stringField(m entity.RawRecord, key string) *string {
	return stringValue(m[key])
}

func stringValue(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func boolField(m entity.RawRecord, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}
