package kv

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

func newTestKV(t *testing.T) Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Collection{}))
	return New(db)
}

func TestGetMissingKeyLeavesZeroValue(t *testing.T) {
	kv := newTestKV(t)

	machines := []model.Machine{}
	err := kv.Get(context.Background(), KeyMachines, &machines)
	assert.NoError(t, err)
	assert.Empty(t, machines)

	var user string
	err = kv.Get(context.Background(), KeyUser, &user)
	assert.NoError(t, err)
	assert.Equal(t, "", user)
}

func TestSetGetRoundTrip(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	in := []model.Station{
		{ID: 1, Name: "Station A", Employees: []model.Employee{
			{ID: 1, Name: "Employee A", Boxes: 145},
			{ID: 2, Name: "Employee B", Boxes: 132},
		}},
		{ID: 2, Name: "Station B", Employees: []model.Employee{}},
	}
	require.NoError(t, kv.Set(ctx, KeyStations, in))

	out := []model.Station{}
	require.NoError(t, kv.Get(ctx, KeyStations, &out))
	assert.Equal(t, in, out)
}

func TestSetOverwritesWholeDocument(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyMachines, []model.Machine{{ID: 1, Name: "Machine 1"}, {ID: 2, Name: "Machine 2"}}))
	require.NoError(t, kv.Set(ctx, KeyMachines, []model.Machine{{ID: 2, Name: "Machine 2"}}))

	out := []model.Machine{}
	require.NoError(t, kv.Get(ctx, KeyMachines, &out))
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestDeleteAndHas(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	has, err := kv.Has(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, kv.Set(ctx, KeyUser, "admin"))
	has, err = kv.Has(ctx, KeyUser)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, kv.Delete(ctx, KeyUser))
	has, err = kv.Has(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, has)

	// Deleting an absent key is not an error.
	assert.NoError(t, kv.Delete(ctx, KeyUser))
}

func TestKeysAreIndependent(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyMachines, []model.Machine{{ID: 1}}))
	require.NoError(t, kv.Set(ctx, KeyProductTypes, []model.ProductType{{ID: 1, Name: "Product A"}}))
	require.NoError(t, kv.Delete(ctx, KeyMachines))

	types := []model.ProductType{}
	require.NoError(t, kv.Get(ctx, KeyProductTypes, &types))
	assert.Len(t, types, 1)
}
