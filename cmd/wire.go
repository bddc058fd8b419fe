package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bnema/school-accounts-cli/internal/adapters/backend/local"
	statusadapter "github.com/bnema/school-accounts-cli/internal/adapters/render/status"
	timetablerender "github.com/bnema/school-accounts-cli/internal/adapters/render/timetable"
	sqliterepo "github.com/bnema/school-accounts-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/school-accounts-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/school-accounts-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/school-accounts-cli/internal/adapters/secrets/file"
	"github.com/bnema/school-accounts-cli/internal/application"
	"github.com/bnema/school-accounts-cli/internal/config"
	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/bnema/school-accounts-cli/internal/logging"
	"github.com/bnema/school-accounts-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	cfg               config.Config
	logger            *slog.Logger
	accounts          *application.AccountService
	router            *application.Router
	timetables        *application.TimetableService
	statusRenderer    func([]application.AccountStatus) (string, error)
	timetableRenderer func([]domain.Class, timetablerender.RenderOptions) (string, error)
	closers           []func() error
}

func (a *app) wire(cmd *cobra.Command, opts rootOptions) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return err
	}
	if opts.profile != "" {
		cfg.Profile = opts.profile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = opts.strict
	}

	logger := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	accountRepo, err := tomlrepo.NewRepository(cfg.Storage.AccountsPath)
	if err != nil {
		return fmt.Errorf("wire account repository: %w", err)
	}

	timetableRepo, err := a.timetableRepository(cfg)
	if err != nil {
		return err
	}

	secretStore, err := newSecretStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("wire secret store: %w", err)
	}

	localProvider := local.NewProvider(cfg.Local.Root, ports.SystemClock{})
	backends := application.Backends{
		Local: application.Backend{Chats: localProvider, Timetable: localProvider},
	}

	resolver := application.NewFeatureResolver(accountRepo,
		application.WithStrictInvariants(cfg.Strict),
		application.WithResolverLogger(logger),
	)
	router := application.NewRouter(resolver, backends, logger)

	store, err := application.OpenTimetableStore(cmd.Context(), timetableRepo, domain.ProfileID(cfg.Profile), logger)
	if err != nil {
		return fmt.Errorf("open timetable store: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.accounts = application.NewAccountService(accountRepo, secretStore)
	a.router = router
	a.timetables = application.NewTimetableService(accountRepo, router, store, ports.SystemClock{}, logger)
	a.statusRenderer = statusadapter.Render
	a.timetableRenderer = timetablerender.Render

	logger.Debug("wired application",
		slog.String("data_dir", cfg.DataDir),
		slog.String("profile", cfg.Profile),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("strict", cfg.Strict),
	)

	return nil
}

func (a *app) timetableRepository(cfg config.Config) (ports.TimetableRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		repo, err := sqliterepo.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("wire sqlite timetable repository: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		repo, err := tomlrepo.NewTimetableRepository(cfg.TimetablesDir())
		if err != nil {
			return nil, fmt.Errorf("wire toml timetable repository: %w", err)
		}
		return repo, nil
	}
}

func newSecretStore(cfg config.Config, logger *slog.Logger) (ports.SecretStore, error) {
	if cfg.Secrets.Backend == config.SecretsBackendFile {
		return filestore.NewStore(cfg.Secrets.Dir), nil
	}
	store, err := chainstore.NewPassFirstWithFileFallback(cfg.Secrets.PassPrefix, cfg.Secrets.Dir, logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
