// internal/domain/entity/launch.go
package entity

import (
	"time"
)

// RawRecord is a decoded JSON object from the upstream API. Launches,
// rockets and launchpads all arrive in this shape; every key is optional.
type RawRecord = map[string]interface{}

// EnrichedLaunch is the denormalized launch record produced by the enricher
// and stored in MongoDB. A nil pointer means the value was missing or
// unresolvable upstream; it serializes as an explicit null, never as a
// missing field.
type EnrichedLaunch struct {
	ID                *string    `bson:"_id" json:"_id"`
	Name              *string    `bson:"name" json:"name"`
	DateUTC           *time.Time `bson:"date_utc" json:"date_utc"`
	Details           *string    `bson:"details" json:"details"`
	LaunchpadID       *string    `bson:"launchpad_id" json:"launchpad_id"`
	LaunchpadName     *string    `bson:"launchpad_name" json:"launchpad_name"`
	LaunchpadFullname *string    `bson:"launchpad_fullname" json:"launchpad_fullname"`
	RocketID          *string    `bson:"rocket_id" json:"rocket_id"`
	RocketName        *string    `bson:"rocket_name" json:"rocket_name"`
	Success           *bool      `bson:"success" json:"success"`
	Upcoming          *bool      `bson:"upcoming" json:"upcoming"`
}
