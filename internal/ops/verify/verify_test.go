package verify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"algovanity/internal/account"
	"algovanity/internal/store"
)

func writeResults(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.json")
	for i := 0; i < n; i++ {
		acct, err := account.Generate()
		require.NoError(t, err)
		phrase, err := account.Phrase(acct.PrivateKey)
		require.NoError(t, err)
		require.NoError(t, store.Append(path, store.Result{Address: acct.Address, Mnemonic: phrase}))
	}
	return path
}

func TestRunPassesOnGenuineFile(t *testing.T) {
	path := writeResults(t, 3)
	require.NoError(t, Run(context.Background(), Options{Input: path}))
}

func TestRunFailsOnTamperedAddress(t *testing.T) {
	path := writeResults(t, 2)

	all, err := store.Load(path)
	require.NoError(t, err)

	// swap the two addresses: both phrases now derive the wrong record
	all[0].Address, all[1].Address = all[1].Address, all[0].Address
	tampered := filepath.Join(t.TempDir(), "tampered.json")
	for _, r := range all {
		require.NoError(t, store.Append(tampered, r))
	}

	err = Run(context.Background(), Options{Input: tampered})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed verification")
}

func TestRunFailsOnForeignWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, store.Append(path, store.Result{
		Address:  "AAAA",
		Mnemonic: "zzzz yyyy xxxx",
	}))

	err := Run(context.Background(), Options{Input: path})
	require.Error(t, err)
}

func TestRunFailsOnEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	err := Run(context.Background(), Options{Input: path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no results")
}

func TestRunHonorsCancellation(t *testing.T) {
	path := writeResults(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Run(ctx, Options{Input: path}), context.Canceled)
}
