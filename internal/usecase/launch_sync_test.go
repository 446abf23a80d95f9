package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"launchtrack-service/internal/domain/entity"
	"launchtrack-service/internal/domain/repository"
	"launchtrack-service/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (l nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return l
}

type fakeSpaceXRepo struct {
	launches   []interface{}
	rockets    []interface{}
	launchpads []interface{}
	err        error
}

func (f *fakeSpaceXRepo) FetchLaunches(ctx context.Context) ([]interface{}, error) {
	return f.launches, f.err
}

func (f *fakeSpaceXRepo) FetchRockets(ctx context.Context) ([]interface{}, error) {
	return f.rockets, f.err
}

func (f *fakeSpaceXRepo) FetchLaunchpads(ctx context.Context) ([]interface{}, error) {
	return f.launchpads, f.err
}

type fakeLaunchRepo struct {
	upserted [][]*entity.EnrichedLaunch
	inserted int64
	err      error
}

func (f *fakeLaunchRepo) UpsertMany(ctx context.Context, launches []*entity.EnrichedLaunch) (int64, error) {
	f.upserted = append(f.upserted, launches)
	return f.inserted, f.err
}

func (f *fakeLaunchRepo) Find(ctx context.Context, filter repository.LaunchFilter) ([]*entity.EnrichedLaunch, error) {
	return nil, nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(ctx context.Context, message string) error {
	f.messages = append(f.messages, message)
	return f.err
}

func TestSync_NotifiesOnNewLaunches(t *testing.T) {
	spacexRepo := &fakeSpaceXRepo{
		launches: []interface{}{sampleLaunch(), "garbage"},
		rockets: []interface{}{
			map[string]interface{}{"id": "r1", "name": "Rocket X"},
		},
		launchpads: []interface{}{
			map[string]interface{}{"id": "lp1", "name": "Pad A", "full_name": "Launch Complex A"},
		},
	}
	launchRepo := &fakeLaunchRepo{inserted: 1}
	notifier := &fakeNotifier{}

	syncer := NewLaunchSyncer(spacexRepo, launchRepo, notifier, nopLogger{})
	result, err := syncer.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if result.Enriched != 1 || result.NewLaunches != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(launchRepo.upserted) != 1 || len(launchRepo.upserted[0]) != 1 {
		t.Fatalf("unexpected upsert calls: %+v", launchRepo.upserted)
	}
	if got := launchRepo.upserted[0][0]; got.RocketName == nil || *got.RocketName != "Rocket X" {
		t.Fatalf("upserted launch not enriched: %+v", got)
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "1 new launches!" {
		t.Fatalf("unexpected notifications: %v", notifier.messages)
	}
}

func TestSync_NoNotificationWhenNothingNew(t *testing.T) {
	spacexRepo := &fakeSpaceXRepo{launches: []interface{}{sampleLaunch()}}
	launchRepo := &fakeLaunchRepo{inserted: 0}
	notifier := &fakeNotifier{}

	syncer := NewLaunchSyncer(spacexRepo, launchRepo, notifier, nopLogger{})
	result, err := syncer.Sync(context.Background())
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if result.NewLaunches != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("no notification expected, got %v", notifier.messages)
	}
}

func TestSync_FetchFailureAbortsCycle(t *testing.T) {
	spacexRepo := &fakeSpaceXRepo{err: errors.New("upstream down")}
	launchRepo := &fakeLaunchRepo{}
	notifier := &fakeNotifier{}

	syncer := NewLaunchSyncer(spacexRepo, launchRepo, notifier, nopLogger{})
	_, err := syncer.Sync(context.Background())
	if err == nil || !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if len(launchRepo.upserted) != 0 {
		t.Fatalf("nothing should be stored on fetch failure")
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("nothing should be notified on fetch failure")
	}
}

func TestSync_NotifyFailureSurfaces(t *testing.T) {
	spacexRepo := &fakeSpaceXRepo{launches: []interface{}{sampleLaunch()}}
	launchRepo := &fakeLaunchRepo{inserted: 3}
	notifier := &fakeNotifier{err: errors.New("webhook down")}

	syncer := NewLaunchSyncer(spacexRepo, launchRepo, notifier, nopLogger{})
	result, err := syncer.Sync(context.Background())
	if err == nil || !strings.Contains(err.Error(), "webhook down") {
		t.Fatalf("expected notify error, got %v", err)
	}
	if result.NewLaunches != 3 {
		t.Fatalf("stored count should still be reported: %+v", result)
	}
}
