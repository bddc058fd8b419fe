package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/logging"
	"github.com/bnema/school-accounts-cli/internal/ports"
)

type RefreshResult struct {
	AccountID domain.AccountID
	// Source is the account whose records were replaced; empty when skipped.
	Source  domain.AccountID
	Classes int
	Skipped bool
	Err     error
}

// TimetableService fetches classes through the router and merges them into
// the aggregation store, one source at a time.
type TimetableService struct {
	accounts ports.AccountRepository
	router   *Router
	store    *TimetableStore
	clock    ports.Clock
	logger   *slog.Logger
}

func NewTimetableService(accounts ports.AccountRepository, router *Router, store *TimetableStore, clock ports.Clock, logger *slog.Logger) *TimetableService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &TimetableService{
		accounts: accounts,
		router:   router,
		store:    store,
		clock:    clock,
		logger:   logging.Component(logger, "timetable"),
	}
}

func (s *TimetableService) CurrentWeek() int {
	_, week := s.clock.Now().ISOWeek()
	return week
}

// RefreshWeek replaces the records of the account serving the timetable for
// id inside the bucket for week. Records of other sources are kept in place.
func (s *TimetableService) RefreshWeek(ctx context.Context, id domain.AccountID, week int) (RefreshResult, error) {
	result := RefreshResult{AccountID: id}

	if err := domain.ValidateWeek(week); err != nil {
		return result, err
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return result, fmt.Errorf("get account by id: %w", err)
	}

	target, ok, err := s.router.Target(ctx, account, domain.FeatureTimetable)
	if err != nil {
		return result, err
	}
	if !ok {
		result.Skipped = true
		return result, nil
	}

	classes, err := s.router.ListTimetableClasses(ctx, target, week)
	if err != nil {
		return result, fmt.Errorf("list timetable classes for %s: %w", target.LocalID, err)
	}

	// The bucket is cleared by source below, so every record must carry the
	// serving account whatever the provider put there.
	source := target.LocalID
	stamped := make([]domain.Class, len(classes))
	for i, class := range classes {
		class.Source = source
		stamped[i] = class
	}

	err = s.store.upsertBucketFunc(ctx, week, func(current []domain.Class) []domain.Class {
		merged := withoutSource(current, source)
		return append(merged, stamped...)
	})
	if err != nil {
		return result, err
	}

	result.Source = source
	result.Classes = len(stamped)
	s.logger.Info("refreshed week",
		slog.Int("week", week),
		slog.String("account", string(id)),
		slog.String("source", string(source)),
		slog.Int("classes", len(stamped)),
	)

	return result, nil
}

// RefreshAll refreshes week for every concrete account concurrently. The
// returned error joins every per-account failure.
func (s *TimetableService) RefreshAll(ctx context.Context, week int) ([]RefreshResult, error) {
	if err := domain.ValidateWeek(week); err != nil {
		return nil, err
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	concrete := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if !account.IsComposite() {
			concrete = append(concrete, account)
		}
	}

	results := make([]RefreshResult, len(concrete))
	var wg sync.WaitGroup
	for i, account := range concrete {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := s.RefreshWeek(ctx, account.LocalID, week)
			result.Err = err
			results[i] = result
		}()
	}
	wg.Wait()

	var errs []error
	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("account %s: %w", result.AccountID, result.Err))
		}
	}

	return results, errors.Join(errs...)
}

func (s *TimetableService) Week(week int) ([]domain.Class, bool, error) {
	if err := domain.ValidateWeek(week); err != nil {
		return nil, false, err
	}

	classes, ok := s.store.Week(week)
	return classes, ok, nil
}

func (s *TimetableService) Export() domain.Timetable {
	return s.store.Snapshot()
}

func (s *TimetableService) Import(ctx context.Context, timetable domain.Timetable) error {
	return s.store.ReplaceAll(ctx, timetable)
}

func (s *TimetableService) ForgetWeek(ctx context.Context, week int) error {
	return s.store.RemoveBucket(ctx, week)
}

// Purge drops every record contributed by source, e.g. after the account was
// removed.
func (s *TimetableService) Purge(ctx context.Context, source domain.AccountID) error {
	return s.store.RemoveBySource(ctx, source)
}

func (s *TimetableService) Profile() domain.ProfileID {
	return s.store.Profile()
}

func (s *TimetableService) SwitchProfile(ctx context.Context, profile domain.ProfileID) error {
	return s.store.SwitchProfile(ctx, profile)
}
