package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/logging"
	"github.com/bnema/school-accounts-cli/internal/ports"
)

// TimetableStore is the per-profile aggregation of week-bucketed classes
// contributed by several sources. Published snapshots are never mutated:
// writers build a new mapping, persist it, then swap it in, so readers only
// ever observe committed states. Writers are serialized by writeMu.
type TimetableStore struct {
	repo    ports.TimetableRepository
	logger  *slog.Logger
	writeMu sync.Mutex
	state   atomic.Pointer[timetableState]
}

type timetableState struct {
	profile   domain.ProfileID
	timetable domain.Timetable
}

// OpenTimetableStore loads whatever was last persisted for profile.
func OpenTimetableStore(ctx context.Context, repo ports.TimetableRepository, profile domain.ProfileID, logger *slog.Logger) (*TimetableStore, error) {
	store := &TimetableStore{
		repo:   repo,
		logger: logging.Component(logger, "timetable-store"),
	}

	if err := store.SwitchProfile(ctx, profile); err != nil {
		return nil, err
	}

	return store, nil
}

// SwitchProfile changes the persistence namespace and reloads the mapping
// from it. Nothing is written for the previous profile.
func (s *TimetableStore) SwitchProfile(ctx context.Context, profile domain.ProfileID) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	timetable, err := s.repo.Load(ctx, profile)
	if err != nil {
		return fmt.Errorf("load timetable for profile %s: %w", profile, err)
	}
	if timetable == nil {
		timetable = domain.Timetable{}
	}

	s.state.Store(&timetableState{profile: profile, timetable: timetable})
	s.logger.Debug("switched profile", slog.String("profile", string(profile)), slog.Int("weeks", len(timetable)))

	return nil
}

func (s *TimetableStore) Profile() domain.ProfileID {
	return s.state.Load().profile
}

// Week returns a copy of the bucket for week. The boolean distinguishes a
// known-empty week from one that was never stored.
func (s *TimetableStore) Week(week int) ([]domain.Class, bool) {
	classes, ok := s.state.Load().timetable[week]
	if !ok {
		return nil, false
	}
	return domain.CloneClasses(classes), true
}

func (s *TimetableStore) Weeks() []int {
	return s.state.Load().timetable.Weeks()
}

func (s *TimetableStore) Snapshot() domain.Timetable {
	return s.state.Load().timetable.Clone()
}

// UpsertBucket replaces the whole bucket for week with records, keeping
// their order.
func (s *TimetableStore) UpsertBucket(ctx context.Context, week int, records []domain.Class) error {
	return s.upsertBucketFunc(ctx, week, func([]domain.Class) []domain.Class {
		return records
	})
}

// ReplaceAll swaps the full mapping, as used by import and restore.
func (s *TimetableStore) ReplaceAll(ctx context.Context, timetable domain.Timetable) error {
	if err := timetable.Validate(); err != nil {
		return err
	}

	return s.mutate(ctx, "replace all", func(domain.Timetable) domain.Timetable {
		return timetable.Clone()
	})
}

func (s *TimetableStore) RemoveBucket(ctx context.Context, week int) error {
	if err := domain.ValidateWeek(week); err != nil {
		return err
	}

	return s.mutate(ctx, "remove bucket", func(current domain.Timetable) domain.Timetable {
		next := shallowCopy(current)
		delete(next, week)
		return next
	})
}

// RemoveBySource filters the records of source out of every bucket. Buckets
// left empty stay present.
func (s *TimetableStore) RemoveBySource(ctx context.Context, source domain.AccountID) error {
	return s.mutate(ctx, "remove by source", func(current domain.Timetable) domain.Timetable {
		next := make(domain.Timetable, len(current))
		for week, classes := range current {
			next[week] = withoutSource(classes, source)
		}
		return next
	})
}

// upsertBucketFunc replaces the bucket for week with what build returns for
// the current bucket, under the writer lock.
func (s *TimetableStore) upsertBucketFunc(ctx context.Context, week int, build func(current []domain.Class) []domain.Class) error {
	if err := domain.ValidateWeek(week); err != nil {
		return err
	}

	return s.mutate(ctx, "upsert bucket", func(current domain.Timetable) domain.Timetable {
		next := shallowCopy(current)
		next[week] = domain.CloneClasses(build(current[week]))
		return next
	})
}

func (s *TimetableStore) mutate(ctx context.Context, operation string, apply func(current domain.Timetable) domain.Timetable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.state.Load()
	next := apply(current.timetable)

	if err := s.repo.Save(ctx, current.profile, next); err != nil {
		return fmt.Errorf("persist timetable after %s: %w", operation, err)
	}

	s.state.Store(&timetableState{profile: current.profile, timetable: next})
	s.logger.Debug("timetable updated",
		slog.String("operation", operation),
		slog.String("profile", string(current.profile)),
		slog.Int("weeks", len(next)),
	)

	return nil
}

func shallowCopy(timetable domain.Timetable) domain.Timetable {
	next := make(domain.Timetable, len(timetable)+1)
	for week, classes := range timetable {
		next[week] = classes
	}
	return next
}

func withoutSource(classes []domain.Class, source domain.AccountID) []domain.Class {
	kept := make([]domain.Class, 0, len(classes))
	for _, class := range classes {
		if class.Source != source {
			kept = append(kept, class)
		}
	}
	return kept
}
