package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timetableFixture struct {
	accounts *inMemoryAccountRepo
	repo     *inMemoryTimetableRepo
	store    *TimetableStore
	pronote  *mocks.MockTimetableProvider
	service  *TimetableService
}

func newTimetableFixture(t *testing.T) timetableFixture {
	t.Helper()

	accounts := federatedAccounts()
	pronote := mocks.NewMockTimetableProvider(t)
	repo := &inMemoryTimetableRepo{}
	store, err := OpenTimetableStore(context.Background(), repo, domain.DefaultProfileID, nil)
	require.NoError(t, err)

	router := NewRouter(NewFeatureResolver(accounts), Backends{
		Pronote: Backend{Timetable: pronote},
	}, nil)
	clock := fixedClock{now: time.Date(2026, time.March, 18, 9, 0, 0, 0, time.UTC)}

	return timetableFixture{
		accounts: accounts,
		repo:     repo,
		store:    store,
		pronote:  pronote,
		service:  NewTimetableService(accounts, router, store, clock, nil),
	}
}

func (f timetableFixture) account(t *testing.T, id domain.AccountID) domain.Account {
	t.Helper()

	account, err := f.accounts.GetByID(context.Background(), id)
	require.NoError(t, err)
	return account
}

func TestTimetableServiceCurrentWeekUsesISOWeek(t *testing.T) {
	f := newTimetableFixture(t)
	assert.Equal(t, 12, f.service.CurrentWeek())
}

func TestTimetableServiceRefreshWeekReplacesOnlyItsSource(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.UpsertBucket(ctx, 12, []domain.Class{
		{ID: "old", Source: "y", Subject: "Maths"},
		{ID: "e1", Source: "z", Subject: "Anglais"},
	}))

	f.pronote.EXPECT().ListTimetableClasses(mockAnyContext(), f.account(t, "y"), 12).
		Return([]domain.Class{{ID: "p1", Subject: "Maths"}, {ID: "p2", Subject: "SVT"}}, nil).Once()

	result, err := f.service.RefreshWeek(ctx, "y", 12)
	require.NoError(t, err)
	assert.Equal(t, RefreshResult{AccountID: "y", Source: "y", Classes: 2}, result)

	got, ok := f.store.Week(12)
	require.True(t, ok)
	assert.Equal(t, []domain.Class{
		{ID: "e1", Source: "z", Subject: "Anglais"},
		{ID: "p1", Source: "y", Subject: "Maths"},
		{ID: "p2", Source: "y", Subject: "SVT"},
	}, got)
	assert.Equal(t, domain.Timetable{12: got}, f.repo.persisted(domain.DefaultProfileID))
}

func TestTimetableServiceRefreshWeekThroughCompositeStampsResolvedSource(t *testing.T) {
	f := newTimetableFixture(t)
	f.accounts.bind("x", domain.FeatureTimetable, "y")

	f.pronote.EXPECT().ListTimetableClasses(mockAnyContext(), f.account(t, "y"), 5).
		Return([]domain.Class{{ID: "p1"}, {ID: "kept", Source: "y"}}, nil).Twice()

	result, err := f.service.RefreshWeek(context.Background(), "x", 5)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("x"), result.AccountID)
	assert.Equal(t, domain.AccountID("y"), result.Source)

	got, _ := f.store.Week(5)
	assert.Equal(t, []domain.Class{{ID: "p1", Source: "y"}, {ID: "kept", Source: "y"}}, got)

	_, err = f.service.RefreshWeek(context.Background(), "x", 5)
	require.NoError(t, err)
	got, _ = f.store.Week(5)
	assert.Len(t, got, 2)
}

func TestTimetableServiceRefreshWeekOverridesProviderSource(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	f.pronote.EXPECT().ListTimetableClasses(mockAnyContext(), f.account(t, "y"), 8).
		Return([]domain.Class{{ID: "p1", Source: "pronote-remote"}}, nil).Times(2)

	for range 2 {
		_, err := f.service.RefreshWeek(ctx, "y", 8)
		require.NoError(t, err)
	}

	got, ok := f.store.Week(8)
	require.True(t, ok)
	assert.Equal(t, []domain.Class{{ID: "p1", Source: "y"}}, got)
}

func TestTimetableServiceRefreshWeekSkipsServiceWithoutTimetableProvider(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()
	imported := domain.Timetable{7: {{ID: "1", Source: "z", Subject: "Anglais"}}}
	require.NoError(t, f.service.Import(ctx, imported))
	saves := f.repo.saves

	result, err := f.service.RefreshWeek(ctx, "z", 7)
	require.NoError(t, err)
	assert.Equal(t, RefreshResult{AccountID: "z", Skipped: true}, result)

	got, ok := f.store.Week(7)
	require.True(t, ok)
	assert.Equal(t, imported[7], got)

	result, err = f.service.RefreshWeek(ctx, "z", 9)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	_, known := f.store.Week(9)
	assert.False(t, known)
	assert.Equal(t, saves, f.repo.saves)
}

func TestTimetableServiceRefreshWeekSkipsUnboundComposite(t *testing.T) {
	f := newTimetableFixture(t)

	result, err := f.service.RefreshWeek(context.Background(), "x", 5)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, f.store.Weeks())
	assert.Zero(t, f.repo.saves)
}

func TestTimetableServiceRefreshWeekKeepsStoreOnBackendError(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.UpsertBucket(ctx, 12, []domain.Class{{ID: "old", Source: "y"}}))

	f.pronote.EXPECT().ListTimetableClasses(mockAnyContext(), f.account(t, "y"), 12).Return(nil, errBackend).Once()

	_, err := f.service.RefreshWeek(ctx, "y", 12)
	assert.ErrorIs(t, err, errBackend)

	got, _ := f.store.Week(12)
	assert.Equal(t, []domain.Class{{ID: "old", Source: "y"}}, got)
}

func TestTimetableServiceRefreshWeekValidatesInput(t *testing.T) {
	f := newTimetableFixture(t)

	_, err := f.service.RefreshWeek(context.Background(), "y", -3)
	assert.ErrorIs(t, err, domain.ErrInvalidWeek)

	_, err = f.service.RefreshWeek(context.Background(), "ghost", 3)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestTimetableServiceRefreshAllJoinsErrors(t *testing.T) {
	f := newTimetableFixture(t)
	f.accounts.bind("x", domain.FeatureTimetable, "y")

	f.pronote.EXPECT().ListTimetableClasses(mockAnyContext(), f.account(t, "y"), 12).Return(nil, errBackend).Once()

	results, err := f.service.RefreshAll(context.Background(), 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackend)
	assert.Contains(t, err.Error(), "account y")

	require.Len(t, results, 2)
	assert.Equal(t, domain.AccountID("y"), results[0].AccountID)
	assert.ErrorIs(t, results[0].Err, errBackend)
	assert.Equal(t, domain.AccountID("z"), results[1].AccountID)
	assert.NoError(t, results[1].Err)
	assert.True(t, results[1].Skipped)
	assert.Empty(t, results[1].Source)
	_, known := f.store.Week(12)
	assert.False(t, known)
}

func TestTimetableServiceExportImportForgetAndPurge(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()

	imported := domain.Timetable{
		1: {{ID: "a", Source: "y"}, {ID: "b", Source: "z"}},
		2: {{ID: "c", Source: "z"}},
	}
	require.NoError(t, f.service.Import(ctx, imported))
	assert.Equal(t, imported, f.service.Export())

	require.NoError(t, f.service.Purge(ctx, "z"))
	classes, ok, err := f.service.Week(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, classes)

	require.NoError(t, f.service.ForgetWeek(ctx, 2))
	_, ok, err = f.service.Week(2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = f.service.Week(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidWeek)
}

func TestTimetableServiceSwitchProfile(t *testing.T) {
	f := newTimetableFixture(t)
	ctx := context.Background()
	require.NoError(t, f.service.Import(ctx, domain.Timetable{1: {{ID: "a"}}}))

	require.NoError(t, f.service.SwitchProfile(ctx, "hugo"))
	assert.Equal(t, domain.ProfileID("hugo"), f.service.Profile())
	assert.Empty(t, f.service.Export())
}

func TestCurrentWeekFollowsISOCalendar(t *testing.T) {
	clock := mocks.NewMockClock(t)
	// 1 January 2027 is a Friday and still belongs to the last ISO week of 2026.
	clock.EXPECT().Now().Return(time.Date(2027, time.January, 1, 12, 0, 0, 0, time.UTC)).Once()

	service := NewTimetableService(&inMemoryAccountRepo{}, nil, nil, clock, nil)
	assert.Equal(t, 53, service.CurrentWeek())
}
