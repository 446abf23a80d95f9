package repository

import (
	"context"
)

// SpaceXRepository defines the interface for fetching raw datasets from the
// upstream launch API. Each call returns the decoded JSON array as-is;
// element shapes are not validated here.
type SpaceXRepository interface {
	FetchLaunches(ctx context.Context) ([]interface{}, error)
	FetchRockets(ctx context.Context) ([]interface{}, error)
	FetchLaunchpads(ctx context.Context) ([]interface{}, error)
}
