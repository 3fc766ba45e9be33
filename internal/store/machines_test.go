package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertMachineAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.UpsertMachine(ctx, MachineInput{Name: "Machine 1", Product: "Product A"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, 0, first.Count)

	second, err := s.UpsertMachine(ctx, MachineInput{Name: "Machine 2", Product: "Product A"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// Deleting the newest machine frees its id for reassignment; ids stay
	// unique within the live collection.
	require.NoError(t, s.DeleteMachine(ctx, 2))
	third, err := s.UpsertMachine(ctx, MachineInput{Name: "Machine 3", Product: "Product B"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), third.ID)

	machines, err := s.ListMachines(ctx)
	require.NoError(t, err)
	seen := make(map[int64]bool)
	for _, m := range machines {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}
}

func TestUpsertMachineUpdateNeverTouchesCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.UpsertMachine(ctx, MachineInput{Name: "Machine 1", Product: "Product A"})
	require.NoError(t, err)

	_, err = s.SetMachineCount(ctx, created.ID, 1250)
	require.NoError(t, err)

	updated, err := s.UpsertMachine(ctx, MachineInput{ID: created.ID, Name: "Renamed", Product: "Product B"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "Product B", updated.Product)
	assert.Equal(t, 1250, updated.Count, "edit must not alter the fed count")
}

func TestUpsertMachineUpdateUnknownID(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpsertMachine(context.Background(), MachineInput{ID: 42, Name: "Ghost", Product: "Product A"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertMachineProductSentinel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	testCases := []struct {
		name        string
		input       MachineInput
		wantProduct string
		wantErr     bool
	}{
		{
			name:        "sentinel resolves to trimmed new name",
			input:       MachineInput{Name: "M", Product: ProductSentinelNew, NewProduct: "  Product C  "},
			wantProduct: "Product C",
		},
		{
			name:    "sentinel with blank new name is rejected",
			input:   MachineInput{Name: "M", Product: ProductSentinelNew, NewProduct: "   "},
			wantErr: true,
		},
		{
			name:    "empty product is rejected",
			input:   MachineInput{Name: "M"},
			wantErr: true,
		},
		{
			name:    "empty machine name is rejected",
			input:   MachineInput{Name: "  ", Product: "Product A"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := s.UpsertMachine(ctx, tc.input)
			if tc.wantErr {
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantProduct, m.Product)
		})
	}
}

func TestDeleteMachine(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.UpsertMachine(ctx, MachineInput{Name: "Machine 1", Product: "Product A"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMachine(ctx, m.ID))
	machines, err := s.ListMachines(ctx)
	require.NoError(t, err)
	assert.Empty(t, machines)

	assert.ErrorIs(t, s.DeleteMachine(ctx, m.ID), ErrNotFound)
}

func TestSetMachineCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.UpsertMachine(ctx, MachineInput{Name: "Machine 1", Product: "Product A"})
	require.NoError(t, err)

	updated, err := s.SetMachineCount(ctx, m.ID, 77)
	require.NoError(t, err)
	assert.Equal(t, 77, updated.Count)

	_, err = s.SetMachineCount(ctx, m.ID, -1)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = s.SetMachineCount(ctx, 999, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
