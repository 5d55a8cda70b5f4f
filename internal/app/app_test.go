package app

import (
	"context"
	"testing"

	"github.com/Skale-Club/xtimator/internal/config"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileBackendSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		StorageBackend: config.BackendFile,
		StoragePath:    t.TempDir(),
		StorageKey:     "restart",
		PhoneRegion:    "BR",
	}

	first, err := New(ctx, cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)

	_, err = first.Customers.Create(ctx, usecase.CustomerInput{Name: "Maria", Phone: "(11) 98765-4321"})
	require.NoError(t, err)
	require.NoError(t, first.Close(ctx))

	second, err := New(ctx, cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close(ctx) })

	customers, err := second.Customers.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Maria", customers[0].Name)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), config.Config{StorageBackend: "floppy"}, WithLogger(logging.Discard()))
	require.Error(t, err)
}
