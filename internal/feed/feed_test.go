package feed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/config"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/notification"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

func newTestService(t *testing.T, milestone int) (*Service, store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Collection{}, &model.PushSubscription{}))
	st := store.New(kv.New(db), db)

	cfg := &config.Config{}
	cfg.Feed.Milestone = milestone
	cfg.WorkerPool.Size = 1
	return NewService(cfg, st), st
}

func TestApplyMachineCountWritesCount(t *testing.T) {
	svc, st := newTestService(t, 1000)
	ctx := context.Background()

	m, err := st.UpsertMachine(ctx, store.MachineInput{Name: "Machine 1", Product: "Product A"})
	require.NoError(t, err)

	updated, err := svc.ApplyMachineCount(ctx, m.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, 250, updated.Count)

	_, err = svc.ApplyMachineCount(ctx, 999, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApplyMachineCountDispatchesOnMilestoneCrossing(t *testing.T) {
	svc, st := newTestService(t, 1000)
	ctx := context.Background()

	m, err := st.UpsertMachine(ctx, store.MachineInput{Name: "Machine 1", Product: "Product A"})
	require.NoError(t, err)

	// Below the milestone: nothing dispatched.
	_, err = svc.ApplyMachineCount(ctx, m.ID, 999)
	require.NoError(t, err)
	assert.Empty(t, svc.Pool().Jobs())

	// Crossing 1000 dispatches exactly one milestone.
	_, err = svc.ApplyMachineCount(ctx, m.ID, 1003)
	require.NoError(t, err)
	select {
	case job := <-svc.Pool().Jobs():
		assert.Equal(t, notification.Milestone{MachineID: m.ID, MachineName: "Machine 1", Count: 1003}, job)
	case <-time.After(time.Second):
		t.Fatal("expected a milestone dispatch")
	}

	// Moving within the same milestone band stays quiet.
	_, err = svc.ApplyMachineCount(ctx, m.ID, 1500)
	require.NoError(t, err)
	assert.Empty(t, svc.Pool().Jobs())
}

func TestApplyEmployeeBoxes(t *testing.T) {
	svc, st := newTestService(t, 1000)
	ctx := context.Background()

	station, err := st.UpsertStation(ctx, store.StationInput{Name: "Station A", EmployeeNames: []string{"Anna", "Bob"}})
	require.NoError(t, err)

	updated, err := svc.ApplyEmployeeBoxes(ctx, station.ID, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Employees[1].Boxes)

	_, err = svc.ApplyEmployeeBoxes(ctx, station.ID, 5, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSimulateOnceOnlyGrowsCounts(t *testing.T) {
	svc, st := newTestService(t, 1000000)
	ctx := context.Background()

	_, err := st.UpsertMachine(ctx, store.MachineInput{Name: "Machine 1", Product: "Product A"})
	require.NoError(t, err)
	_, err = st.UpsertStation(ctx, store.StationInput{Name: "Station A", EmployeeNames: []string{"Anna"}})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		svc.SimulateOnce(ctx)
	}

	machines, err := st.ListMachines(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, machines[0].Count, 0)

	stations, err := st.ListStations(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stations[0].Employees[0].Boxes, 0)
}

func TestSimulateOnceEmptyCollections(t *testing.T) {
	svc, _ := newTestService(t, 1000)
	// Must not panic or error with nothing to update.
	svc.SimulateOnce(context.Background())
}
