package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
}

type inMemoryAccountRepo struct {
	mu       sync.Mutex
	accounts []domain.Account
}

func (r *inMemoryAccountRepo) GetByID(_ context.Context, id domain.AccountID) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.LocalID == id {
			account.Bindings = account.Bindings.Clone()
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *inMemoryAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Account, len(r.accounts))
	for i, account := range r.accounts {
		account.Bindings = account.Bindings.Clone()
		result[i] = account
	}
	return result, nil
}

func (r *inMemoryAccountRepo) Save(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].LocalID == account.LocalID {
			r.accounts[i] = account
			return nil
		}
	}
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *inMemoryAccountRepo) Delete(_ context.Context, id domain.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].LocalID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (r *inMemoryAccountRepo) bind(owner domain.AccountID, feature domain.Feature, target domain.AccountID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].LocalID == owner {
			bindings := r.accounts[i].Bindings.Clone()
			if bindings == nil {
				bindings = domain.FeatureBindings{}
			}
			bindings[feature] = target
			r.accounts[i].Bindings = bindings
		}
	}
}

type failingAccountRepo struct {
	inMemoryAccountRepo
	err error
}

func (r *failingAccountRepo) GetByID(context.Context, domain.AccountID) (domain.Account, error) {
	return domain.Account{}, r.err
}

type inMemoryTimetableRepo struct {
	mu       sync.Mutex
	saved    map[domain.ProfileID]domain.Timetable
	saves    int
	failNext error
}

func (r *inMemoryTimetableRepo) Load(_ context.Context, profile domain.ProfileID) (domain.Timetable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timetable, ok := r.saved[profile]
	if !ok {
		return domain.Timetable{}, nil
	}
	return timetable.Clone(), nil
}

func (r *inMemoryTimetableRepo) Save(_ context.Context, profile domain.ProfileID, timetable domain.Timetable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	if r.saved == nil {
		r.saved = map[domain.ProfileID]domain.Timetable{}
	}
	r.saved[profile] = timetable.Clone()
	r.saves++
	return nil
}

func (r *inMemoryTimetableRepo) persisted(profile domain.ProfileID) domain.Timetable {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saved[profile].Clone()
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

var errBackend = errors.New("backend unreachable")
