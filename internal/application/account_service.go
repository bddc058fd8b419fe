package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports"
	"github.com/google/uuid"
)

// AccountService owns writes to the account registry, including the feature
// bindings of composite accounts.
type AccountService struct {
	repo  ports.AccountRepository
	store ports.SecretStore
	newID func() domain.AccountID
}

func NewAccountService(repo ports.AccountRepository, store ports.SecretStore) *AccountService {
	return &AccountService{
		repo:  repo,
		store: store,
		newID: func() domain.AccountID {
			return domain.AccountID(uuid.NewString())
		},
	}
}

func (s *AccountService) Add(ctx context.Context, cmd AddAccountCommand) (domain.Account, error) {
	id := domain.AccountID(strings.TrimSpace(string(cmd.LocalID)))
	if id == "" {
		id = s.newID()
	}

	_, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountExists, id)
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	account := domain.Account{
		LocalID:     id,
		Name:        strings.TrimSpace(cmd.Name),
		Service:     cmd.Service,
		Credentials: cmd.Credentials,
	}
	if account.Name == "" {
		account.Name = fmt.Sprintf("%s %s", cmd.Service.Label(), shortID(id))
	}
	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}

	if err := s.repo.Save(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("save account: %w", err)
	}

	return account, nil
}

func (s *AccountService) Get(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}
	return account, nil
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) Rename(ctx context.Context, id domain.AccountID, name string) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	account.Name = strings.TrimSpace(name)

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account name: %w", err)
	}

	return nil
}

// Remove deletes the account and every binding that targets it, so no
// composite account is left pointing at a missing account.
func (s *AccountService) Remove(ctx context.Context, id domain.AccountID) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	for _, composite := range accounts {
		if !composite.IsComposite() || composite.LocalID == id {
			continue
		}

		changed := false
		bindings := composite.Bindings.Clone()
		for feature, target := range bindings {
			if target == id {
				delete(bindings, feature)
				changed = true
			}
		}
		if !changed {
			continue
		}

		composite.Bindings = bindings
		if err := s.repo.Save(ctx, composite); err != nil {
			return fmt.Errorf("unbind %s from %s: %w", id, composite.LocalID, err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	if account.Credentials.SecretRef != "" {
		if err := s.store.Delete(ctx, account.Credentials.SecretRef); err != nil {
			return fmt.Errorf("delete account secret: %w", err)
		}
	}

	return nil
}

// BindFeature delegates feature of a composite account to target. Bindings
// to composite accounts or to the owner itself are rejected.
func (s *AccountService) BindFeature(ctx context.Context, cmd BindFeatureCommand) error {
	owner, err := s.repo.GetByID(ctx, cmd.CompositeID)
	if err != nil {
		return fmt.Errorf("get composite account: %w", err)
	}

	target, err := s.repo.GetByID(ctx, cmd.TargetID)
	if err != nil {
		return fmt.Errorf("get bound account: %w", err)
	}

	if err := domain.ValidateBinding(owner, cmd.Feature, target); err != nil {
		return err
	}

	bindings := owner.Bindings.Clone()
	if bindings == nil {
		bindings = domain.FeatureBindings{}
	}
	bindings[cmd.Feature] = target.LocalID
	owner.Bindings = bindings

	if err := s.repo.Save(ctx, owner); err != nil {
		return fmt.Errorf("save feature binding: %w", err)
	}

	return nil
}

func (s *AccountService) UnbindFeature(ctx context.Context, compositeID domain.AccountID, feature domain.Feature) error {
	if !feature.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownFeature, feature)
	}

	owner, err := s.repo.GetByID(ctx, compositeID)
	if err != nil {
		return fmt.Errorf("get composite account: %w", err)
	}
	if !owner.IsComposite() {
		return fmt.Errorf("%w: %s is a %s account, not a composite one", domain.ErrInvalidBinding, owner.LocalID, owner.Service)
	}

	if _, ok := owner.Bindings[feature]; !ok {
		return nil
	}

	bindings := owner.Bindings.Clone()
	delete(bindings, feature)
	owner.Bindings = bindings

	if err := s.repo.Save(ctx, owner); err != nil {
		return fmt.Errorf("save feature binding: %w", err)
	}

	return nil
}

// SetCredentials stores the secret first, then points the account at it. A
// failed save removes the new secret again; the previous secret is deleted
// only once the account no longer references it.
func (s *AccountService) SetCredentials(ctx context.Context, cmd SetCredentialsCommand) error {
	account, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}
	if account.IsComposite() {
		return fmt.Errorf("%s is a composite account and holds no credentials", account.LocalID)
	}

	previous := account.Credentials

	if err := s.store.Put(ctx, cmd.SecretKey, cmd.SecretValue); err != nil {
		return fmt.Errorf("store account secret: %w", err)
	}

	account.Credentials = domain.Credentials{
		Instance:  cmd.Instance,
		Username:  cmd.Username,
		SecretRef: cmd.SecretKey,
	}

	if err := s.repo.Save(ctx, account); err != nil {
		if rollbackErr := s.store.Delete(ctx, cmd.SecretKey); rollbackErr != nil {
			return fmt.Errorf("save account credentials and rollback stored secret: %w", errors.Join(err, rollbackErr))
		}

		return fmt.Errorf("save account credentials: %w", err)
	}

	if previous.SecretRef == "" || previous.SecretRef == cmd.SecretKey {
		return nil
	}

	if err := s.store.Delete(ctx, previous.SecretRef); err != nil {
		restore := account
		restore.Credentials = previous

		var rollbackErr error
		if restoreErr := s.repo.Save(ctx, restore); restoreErr != nil {
			rollbackErr = errors.Join(rollbackErr, restoreErr)
		}
		if newSecretDeleteErr := s.store.Delete(ctx, cmd.SecretKey); newSecretDeleteErr != nil {
			rollbackErr = errors.Join(rollbackErr, newSecretDeleteErr)
		}
		if rollbackErr != nil {
			return fmt.Errorf("delete previous account secret and rollback credentials update: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("delete previous account secret: %w", err)
	}

	return nil
}

func (s *AccountService) ClearCredentials(ctx context.Context, id domain.AccountID) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	secretRef := account.Credentials.SecretRef
	previous := account.Credentials
	account.Credentials = domain.Credentials{}

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account credentials: %w", err)
	}

	if secretRef == "" {
		return nil
	}

	if err := s.store.Delete(ctx, secretRef); err != nil {
		account.Credentials = previous
		if restoreErr := s.repo.Save(ctx, account); restoreErr != nil {
			return fmt.Errorf("delete account secret and restore credentials: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete account secret: %w", err)
	}

	return nil
}

func (s *AccountService) GetStatus(ctx context.Context, id domain.AccountID) (AccountStatus, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AccountStatus{}, fmt.Errorf("get account by id: %w", err)
	}

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return AccountStatus{}, fmt.Errorf("list accounts: %w", err)
	}

	return statusFromAccount(account, indexAccounts(accounts)), nil
}

func (s *AccountService) GetStatusAll(ctx context.Context) ([]AccountStatus, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	byID := indexAccounts(accounts)
	statuses := make([]AccountStatus, 0, len(accounts))
	for _, account := range accounts {
		statuses = append(statuses, statusFromAccount(account, byID))
	}

	return statuses, nil
}

func statusFromAccount(account domain.Account, byID map[domain.AccountID]domain.Account) AccountStatus {
	status := AccountStatus{
		Account:       account,
		HasCredential: account.Credentials.SecretRef != "",
	}

	for _, feature := range account.Bindings.Sorted() {
		targetID := account.Bindings[feature]
		binding := BindingStatus{Feature: feature, TargetID: targetID}
		if target, ok := byID[targetID]; ok {
			binding.Target = &target
		}
		status.Bindings = append(status.Bindings, binding)
	}

	return status
}

func indexAccounts(accounts []domain.Account) map[domain.AccountID]domain.Account {
	byID := make(map[domain.AccountID]domain.Account, len(accounts))
	for _, account := range accounts {
		byID[account.LocalID] = account
	}
	return byID
}

func shortID(id domain.AccountID) string {
	raw := string(id)
	if len(raw) > 8 {
		return raw[:8]
	}
	return raw
}
