package usecase

import (
	"context"
	"fmt"

	"launchtrack-service/internal/domain/repository"
	"launchtrack-service/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// LaunchSyncer runs one fetch -> enrich -> store -> notify cycle against the
// upstream API and the launch store.
type LaunchSyncer struct {
	spacexRepo repository.SpaceXRepository
	launchRepo repository.LaunchRepository
	notifier   repository.Notifier
	logger     logger.Logger
}

// NewLaunchSyncer creates a new launch syncer
func NewLaunchSyncer(
	spacexRepo repository.SpaceXRepository,
	launchRepo repository.LaunchRepository,
	notifier repository.Notifier,
	logger logger.Logger,
) *LaunchSyncer {
	return &LaunchSyncer{
		spacexRepo: spacexRepo,
		launchRepo: launchRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// SyncResult reports what one sync cycle did.
type SyncResult struct {
	Enriched    int
	NewLaunches int64
}

// Sync fetches the three raw datasets, enriches the launches and upserts
// them, notifying the webhook when new launches were inserted.
func (s *LaunchSyncer) Sync(ctx context.Context) (SyncResult, error) {
	var rawLaunches, rawRockets, rawLaunchpads []interface{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawLaunches, err = s.spacexRepo.FetchLaunches(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rawRockets, err = s.spacexRepo.FetchRockets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rawLaunchpads, err = s.spacexRepo.FetchLaunchpads(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return SyncResult{}, fmt.Errorf("failed to fetch upstream datasets: %w", err)
	}

	launches := EnrichLaunches(rawLaunches, IndexByID(rawLaunchpads), IndexByID(rawRockets))
	s.logger.Info("Enriched launches",
		"raw", len(rawLaunches),
		"enriched", len(launches),
		"rockets", len(rawRockets),
		"launchpads", len(rawLaunchpads))

	inserted, err := s.launchRepo.UpsertMany(ctx, launches)
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to store launches: %w", err)
	}
	result := SyncResult{Enriched: len(launches), NewLaunches: inserted}

	if inserted > 0 {
		if err := s.notifier.Notify(ctx, fmt.Sprintf("%d new launches!", inserted)); err != nil {
			return result, fmt.Errorf("failed to notify webhook: %w", err)
		}
	}

	return result, nil
}
