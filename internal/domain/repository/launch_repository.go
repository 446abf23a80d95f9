package repository

import (
	"context"
	"time"

	"launchtrack-service/internal/domain/entity"
)

// LaunchFilter narrows dashboard queries. Zero values mean "no constraint".
type LaunchFilter struct {
	From    *time.Time
	To      *time.Time
	Rockets []string
	Sites   []string
	// Success filters on the stored outcome; SuccessUnknown selects records
	// whose outcome is null. Setting both is not supported.
	Success        *bool
	SuccessUnknown bool
}

// LaunchRepository defines the interface for launch storage operations
type LaunchRepository interface {
	UpsertMany(ctx context.Context, launches []*entity.EnrichedLaunch) (int64, error)
	Find(ctx context.Context, filter LaunchFilter) ([]*entity.EnrichedLaunch, error)
}
