package store

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

// Store defines all data operations available to the HTTP handlers and the
// count feed. Every mutation is a whole-collection read-modify-write, so the
// implementation serializes access per collection.
type Store interface {
	ListMachines(ctx context.Context) ([]model.Machine, error)
	UpsertMachine(ctx context.Context, in MachineInput) (model.Machine, error)
	DeleteMachine(ctx context.Context, id int64) error
	SetMachineCount(ctx context.Context, id int64, count int) (model.Machine, error)

	ListStations(ctx context.Context) ([]model.Station, error)
	UpsertStation(ctx context.Context, in StationInput) (model.Station, error)
	DeleteStation(ctx context.Context, id int64) error
	SetEmployeeBoxes(ctx context.Context, stationID int64, position, boxes int) (model.Station, error)

	ListProductTypes(ctx context.Context) ([]model.ProductType, error)
	CreateProductType(ctx context.Context, name, description string) (model.ProductType, error)
	DeleteProductType(ctx context.Context, name string) error

	CurrentUser(ctx context.Context) (string, error)
	SetCurrentUser(ctx context.Context, name string) error
	ClearCurrentUser(ctx context.Context) error

	GetSubscription(ctx context.Context, endpoint string) (model.PushSubscription, error)
	PutSubscription(ctx context.Context, sub model.PushSubscription) error
	DeleteSubscription(ctx context.Context, endpoint string) error
	SubscriptionsForMachine(ctx context.Context, machineID int64) ([]model.PushSubscription, error)

	EnsureSampleData(ctx context.Context) error
}

// kvStore implements Store over the key-value adapter. Subscriptions are
// relational (looked up per machine by the notification workers) and go
// through GORM directly.
type kvStore struct {
	kv kv.Store
	db *gorm.DB

	machinesMu sync.Mutex
	stationsMu sync.Mutex
	productsMu sync.Mutex
	userMu     sync.Mutex
}

// New creates a Store over the given key-value adapter and database handle.
func New(kvs kv.Store, db *gorm.DB) Store {
	return &kvStore{kv: kvs, db: db}
}

// nextID returns max+1 over the existing ids, or 1 for an empty collection.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
