package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const accountsTempPattern = ".accounts-*.toml.tmp"

// Repository stores every account, bindings included, in a single versioned
// TOML file.
type Repository struct {
	accountsPath string
	mu           *sync.RWMutex
}

var _ ports.AccountRepository = (*Repository)(nil)

func NewRepository(accountsPath string) (*Repository, error) {
	if strings.TrimSpace(accountsPath) == "" {
		return nil, errors.New("accounts path is empty")
	}

	accountsPath, err := normalizePath(accountsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{accountsPath: accountsPath, mu: lockForPath(accountsPath)}, nil
}

func (r *Repository) Path() string {
	return r.accountsPath
}

func (r *Repository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(account)
	updated := false
	for i := range file.Accounts {
		if file.Accounts[i].ID == encoded.ID {
			file.Accounts[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Accounts = append(file.Accounts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context, id domain.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Accounts[:0]
	for _, entry := range file.Accounts {
		if entry.ID != string(id) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Accounts) {
		return domain.ErrAccountNotFound
	}
	file.Accounts = kept

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Account{}, err
	}

	for _, entry := range file.Accounts {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		accounts = append(accounts, fromSchema(entry))
	}

	return accounts, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.accountsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}

	return writeFileAtomic(r.accountsPath, accountsTempPattern, "accounts", data)
}

func toSchema(account domain.Account) accountSchema {
	var bindings map[string]string
	if len(account.Bindings) > 0 {
		bindings = make(map[string]string, len(account.Bindings))
		for feature, target := range account.Bindings {
			bindings[string(feature)] = string(target)
		}
	}

	return accountSchema{
		ID:      string(account.LocalID),
		Name:    account.Name,
		Service: string(account.Service),
		Credentials: credentialsSchema{
			Instance:  account.Credentials.Instance,
			Username:  account.Credentials.Username,
			SecretRef: account.Credentials.SecretRef,
		},
		Bindings: bindings,
	}
}

func fromSchema(account accountSchema) domain.Account {
	var bindings domain.FeatureBindings
	if len(account.Bindings) > 0 {
		bindings = make(domain.FeatureBindings, len(account.Bindings))
		for feature, target := range account.Bindings {
			bindings[domain.Feature(feature)] = domain.AccountID(target)
		}
	}

	return domain.Account{
		LocalID: domain.AccountID(account.ID),
		Name:    account.Name,
		Service: domain.Service(account.Service),
		Credentials: domain.Credentials{
			Instance:  account.Credentials.Instance,
			Username:  account.Credentials.Username,
			SecretRef: account.Credentials.SecretRef,
		},
		Bindings: bindings,
	}
}
