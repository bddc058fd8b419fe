package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/school-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithRunner(prefix string, run runFunc) *Store {
	store := NewStore(prefix)
	store.run = run
	return store
}

func TestStorePutUsesPassInsertUnderPrefix(t *testing.T) {
	t.Parallel()

	called := false
	store := storeWithRunner("/school-accounts/", func(ctx context.Context, input string, args ...string) (string, string, error) {
		called = true
		assert.Equal(t, []string{"insert", "-m", "-f", "school-accounts/accounts/y/password"}, args)
		assert.Equal(t, "top-secret\n", input)
		return "", "", nil
	})

	err := store.Put(context.Background(), domain.SecretKey("y", domain.SecretNamePassword), "top-secret")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store := storeWithRunner("", func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"show", "accounts/y/password"}, args)
		assert.Empty(t, input)
		return "top-secret\r\nlogin: demonstration\n", "", nil
	})

	value, err := store.Get(context.Background(), "accounts/y/password")
	require.NoError(t, err)
	assert.Equal(t, "top-secret", value)
}

func TestStoreGetMissingEntryIsSecretNotFound(t *testing.T) {
	t.Parallel()

	store := storeWithRunner("sa", func(ctx context.Context, input string, args ...string) (string, string, error) {
		return "", "Error: sa/accounts/y/password is not in the password store.", errors.New("exit status 1")
	})

	_, err := store.Get(context.Background(), "accounts/y/password")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := storeWithRunner("sa", func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"rm", "-f", "sa/accounts/y/password"}, args)
		return "", "Error: sa/accounts/y/password is not in the password store.", errors.New("exit status 1")
	})

	require.NoError(t, store.Delete(context.Background(), "accounts/y/password"))
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := storeWithRunner("sa", func(ctx context.Context, input string, args ...string) (string, string, error) {
		return "", "gpg: decryption failed", errors.New("exit status 2")
	})

	_, err := store.Get(context.Background(), "accounts/y/password")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "sa/accounts/y/password")
	assert.ErrorContains(t, err, "decryption failed")
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreCanceledContextSkipsCommand(t *testing.T) {
	t.Parallel()

	store := storeWithRunner("sa", func(ctx context.Context, input string, args ...string) (string, string, error) {
		t.Fatal("pass must not run")
		return "", "", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.Put(ctx, "k", "v"), context.Canceled)
}
