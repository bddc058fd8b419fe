package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, repo *inMemoryTimetableRepo, profile domain.ProfileID) *TimetableStore {
	t.Helper()

	store, err := OpenTimetableStore(context.Background(), repo, profile, nil)
	require.NoError(t, err)
	return store
}

func mixedWeek() []domain.Class {
	return []domain.Class{
		{ID: "1", Source: "pronote", Subject: "Maths"},
		{ID: "2", Source: "ed", Subject: "Anglais"},
		{ID: "3", Source: "pronote", Subject: "Physique"},
	}
}

func TestTimetableStoreStartsEmpty(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")

	assert.Empty(t, store.Snapshot())
	_, ok := store.Week(12)
	assert.False(t, ok)
	assert.Equal(t, domain.ProfileID("default"), store.Profile())
}

func TestTimetableStoreUpsertBucketPreservesOrderAndPersists(t *testing.T) {
	t.Parallel()

	repo := &inMemoryTimetableRepo{}
	store := openStore(t, repo, "default")

	require.NoError(t, store.UpsertBucket(context.Background(), 12, mixedWeek()))

	got, ok := store.Week(12)
	require.True(t, ok)
	assert.Equal(t, mixedWeek(), got)
	assert.Equal(t, domain.Timetable{12: mixedWeek()}, repo.persisted("default"))
}

func TestTimetableStoreUpsertBucketIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")
	ctx := context.Background()

	require.NoError(t, store.UpsertBucket(ctx, 12, mixedWeek()))
	once := store.Snapshot()
	require.NoError(t, store.UpsertBucket(ctx, 12, mixedWeek()))

	assert.Equal(t, once, store.Snapshot())
}

func TestTimetableStoreUpsertBucketDoesNotAliasCallerSlice(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")
	records := mixedWeek()
	require.NoError(t, store.UpsertBucket(context.Background(), 12, records))

	records[0].Subject = "mutated"
	got, _ := store.Week(12)
	got[1].Subject = "mutated too"

	fresh, _ := store.Week(12)
	assert.Equal(t, mixedWeek(), fresh)
}

func TestTimetableStoreRemoveBySourceScenario(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")
	ctx := context.Background()
	require.NoError(t, store.UpsertBucket(ctx, 12, []domain.Class{
		{ID: "1", Source: "pronote"},
		{ID: "2", Source: "ed"},
	}))

	require.NoError(t, store.RemoveBySource(ctx, "ed"))

	got, ok := store.Week(12)
	require.True(t, ok)
	assert.Equal(t, []domain.Class{{ID: "1", Source: "pronote"}}, got)
}

func TestTimetableStoreRemoveBySourceIsolationAndIdempotence(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")
	ctx := context.Background()
	require.NoError(t, store.ReplaceAll(ctx, domain.Timetable{
		11: {{ID: "a", Source: "ed"}},
		12: mixedWeek(),
		13: {{ID: "b", Source: "skolengo"}},
	}))

	require.NoError(t, store.RemoveBySource(ctx, "ed"))
	once := store.Snapshot()
	require.NoError(t, store.RemoveBySource(ctx, "ed"))

	assert.Equal(t, once, store.Snapshot())
	assert.Equal(t, domain.Timetable{
		11: {},
		12: {
			{ID: "1", Source: "pronote", Subject: "Maths"},
			{ID: "3", Source: "pronote", Subject: "Physique"},
		},
		13: {{ID: "b", Source: "skolengo"}},
	}, once)

	emptied, ok := store.Week(11)
	assert.True(t, ok, "emptied week must stay known")
	assert.Empty(t, emptied)
}

func TestTimetableStoreReplaceAllRoundTrip(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")
	ctx := context.Background()
	require.NoError(t, store.UpsertBucket(ctx, 40, []domain.Class{{ID: "old"}}))

	mapping := domain.Timetable{
		1:  {{ID: "x", Source: "a"}, {ID: "y", Source: "b"}},
		2:  {},
		52: {{ID: "z", Source: "a"}},
	}
	require.NoError(t, store.ReplaceAll(ctx, mapping))

	assert.Equal(t, mapping, store.Snapshot())
	assert.Equal(t, []int{1, 2, 52}, store.Weeks())
}

func TestTimetableStoreRemoveBucket(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")
	ctx := context.Background()
	require.NoError(t, store.UpsertBucket(ctx, 12, mixedWeek()))
	require.NoError(t, store.UpsertBucket(ctx, 13, mixedWeek()))

	require.NoError(t, store.RemoveBucket(ctx, 12))
	require.NoError(t, store.RemoveBucket(ctx, 12))

	_, ok := store.Week(12)
	assert.False(t, ok)
	assert.Equal(t, []int{13}, store.Weeks())
}

func TestTimetableStoreRejectsNegativeWeeks(t *testing.T) {
	t.Parallel()

	repo := &inMemoryTimetableRepo{}
	store := openStore(t, repo, "default")
	ctx := context.Background()

	assert.ErrorIs(t, store.UpsertBucket(ctx, -1, nil), domain.ErrInvalidWeek)
	assert.ErrorIs(t, store.RemoveBucket(ctx, -1), domain.ErrInvalidWeek)
	assert.ErrorIs(t, store.ReplaceAll(ctx, domain.Timetable{-2: nil}), domain.ErrInvalidWeek)
	assert.Zero(t, repo.saves)
}

func TestTimetableStoreFailedPersistLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	repo := &inMemoryTimetableRepo{}
	store := openStore(t, repo, "default")
	ctx := context.Background()
	require.NoError(t, store.UpsertBucket(ctx, 12, mixedWeek()))

	repo.failNext = errors.New("disk full")
	err := store.RemoveBySource(ctx, "pronote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	got, _ := store.Week(12)
	assert.Equal(t, mixedWeek(), got)
}

func TestTimetableStoreCanceledContextDoesNotMutate(t *testing.T) {
	t.Parallel()

	repo := &inMemoryTimetableRepo{}
	store := openStore(t, repo, "default")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.UpsertBucket(ctx, 1, mixedWeek()), context.Canceled)
	assert.Empty(t, store.Snapshot())
}

func TestTimetableStoreProfilesAreNamespaced(t *testing.T) {
	t.Parallel()

	repo := &inMemoryTimetableRepo{}
	store := openStore(t, repo, "lucie")
	ctx := context.Background()
	require.NoError(t, store.UpsertBucket(ctx, 12, mixedWeek()))

	require.NoError(t, store.SwitchProfile(ctx, "hugo"))
	assert.Equal(t, domain.ProfileID("hugo"), store.Profile())
	assert.Empty(t, store.Snapshot())
	require.NoError(t, store.UpsertBucket(ctx, 3, []domain.Class{{ID: "h"}}))

	require.NoError(t, store.SwitchProfile(ctx, "lucie"))
	assert.Equal(t, domain.Timetable{12: mixedWeek()}, store.Snapshot())

	reopened := openStore(t, repo, "hugo")
	assert.Equal(t, domain.Timetable{3: {{ID: "h"}}}, reopened.Snapshot())

	assert.ErrorIs(t, store.SwitchProfile(ctx, "../x"), domain.ErrInvalidProfile)
	assert.Equal(t, domain.ProfileID("lucie"), store.Profile())
}

func TestTimetableStoreReadersObserveWholeBuckets(t *testing.T) {
	t.Parallel()

	store := openStore(t, &inMemoryTimetableRepo{}, "default")
	ctx := context.Background()

	before := []domain.Class{{ID: "a1", Source: "a"}, {ID: "a2", Source: "a"}}
	after := []domain.Class{{ID: "b1", Source: "b"}, {ID: "b2", Source: "b"}, {ID: "b3", Source: "b"}}
	require.NoError(t, store.UpsertBucket(ctx, 7, before))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	failures := make(chan string, 1)

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got, _ := store.Week(7)
				if !assert.ObjectsAreEqual(before, got) && !assert.ObjectsAreEqual(after, got) {
					select {
					case failures <- fmt.Sprintf("observed mixed bucket %v", got):
					default:
					}
					return
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		records := after
		if i%2 == 1 {
			records = before
		}
		require.NoError(t, store.UpsertBucket(ctx, 7, records))
	}
	close(stop)
	wg.Wait()

	select {
	case failure := <-failures:
		t.Fatal(failure)
	default:
	}
}

func TestTimetableStoreConcurrentWritersDoNotLoseWeeks(t *testing.T) {
	t.Parallel()

	repo := &inMemoryTimetableRepo{}
	store := openStore(t, repo, "default")
	ctx := context.Background()

	var wg sync.WaitGroup
	for week := 0; week < 20; week++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.UpsertBucket(ctx, week, []domain.Class{{ID: fmt.Sprint(week)}}))
		}()
	}
	wg.Wait()

	assert.Len(t, store.Snapshot(), 20)
	assert.Len(t, repo.persisted("default"), 20)
}

func TestSwitchProfileLoadFailureKeepsCurrentNamespace(t *testing.T) {
	repo := mocks.NewMockTimetableRepository(t)
	loadErr := errors.New("disk unplugged")
	repo.EXPECT().Load(mockAnyContext(), domain.ProfileID("default")).
		Return(domain.Timetable{12: {{ID: "1", Source: "pronote"}}}, nil).Once()
	repo.EXPECT().Load(mockAnyContext(), domain.ProfileID("alice")).Return(nil, loadErr).Once()
	repo.EXPECT().Save(mockAnyContext(), domain.ProfileID("default"), mock.AnythingOfType("domain.Timetable")).Return(nil).Once()

	store, err := OpenTimetableStore(context.Background(), repo, "default", nil)
	require.NoError(t, err)

	err = store.SwitchProfile(context.Background(), "alice")
	require.ErrorIs(t, err, loadErr)
	assert.Equal(t, domain.ProfileID("default"), store.Profile())

	classes, ok := store.Week(12)
	require.True(t, ok)
	assert.Len(t, classes, 1)

	require.NoError(t, store.RemoveBucket(context.Background(), 12))
	assert.Empty(t, store.Weeks())
}
