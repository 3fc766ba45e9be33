package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSampleDataFirstBoot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureSampleData(ctx))

	machines, err := s.ListMachines(ctx)
	require.NoError(t, err)
	assert.Len(t, machines, 4)

	stations, err := s.ListStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 3)
}

func TestEnsureSampleDataLeavesExistingDataAlone(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.UpsertMachine(ctx, MachineInput{Name: "Only Machine", Product: "Product X"})
	require.NoError(t, err)

	require.NoError(t, s.EnsureSampleData(ctx))

	machines, err := s.ListMachines(ctx)
	require.NoError(t, err)
	require.Len(t, machines, 1)
	assert.Equal(t, m.ID, machines[0].ID)

	// Stations were absent, so they still get seeded.
	stations, err := s.ListStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 3)
}
