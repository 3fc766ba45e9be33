package store

import (
	"context"
	"strings"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

// ProductSentinelNew is the dropdown value meaning "a new product name was
// typed instead of picked". It must be resolved before anything is persisted.
const ProductSentinelNew = "__new__"

// MachineInput carries the editable machine fields. ID zero means create.
// Count is intentionally absent: it belongs to the count feed.
type MachineInput struct {
	ID         int64
	Name       string
	Product    string
	NewProduct string
}

// resolveProduct collapses the sentinel into the typed name and validates
// the result.
func resolveProduct(in MachineInput) (string, error) {
	product := in.Product
	if product == ProductSentinelNew {
		product = strings.TrimSpace(in.NewProduct)
		if product == "" {
			return "", validationErrorf("a new product name is required")
		}
	}
	if product == "" {
		return "", validationErrorf("a product must be selected or entered")
	}
	return product, nil
}

func (s *kvStore) machines(ctx context.Context) ([]model.Machine, error) {
	machines := []model.Machine{}
	if err := s.kv.Get(ctx, kv.KeyMachines, &machines); err != nil {
		return nil, err
	}
	return machines, nil
}

// ListMachines returns all machines in insertion order.
func (s *kvStore) ListMachines(ctx context.Context) ([]model.Machine, error) {
	s.machinesMu.Lock()
	defer s.machinesMu.Unlock()
	return s.machines(ctx)
}

// UpsertMachine creates a machine (count 0, id max+1) or updates the name
// and product of an existing one, leaving its count untouched.
func (s *kvStore) UpsertMachine(ctx context.Context, in MachineInput) (model.Machine, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Machine{}, validationErrorf("machine name is required")
	}
	product, err := resolveProduct(in)
	if err != nil {
		return model.Machine{}, err
	}

	s.machinesMu.Lock()
	defer s.machinesMu.Unlock()

	machines, err := s.machines(ctx)
	if err != nil {
		return model.Machine{}, err
	}

	var saved model.Machine
	if in.ID != 0 {
		idx := -1
		for i, m := range machines {
			if m.ID == in.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.Machine{}, ErrNotFound
		}
		machines[idx].Name = in.Name
		machines[idx].Product = product
		saved = machines[idx]
	} else {
		ids := make([]int64, len(machines))
		for i, m := range machines {
			ids[i] = m.ID
		}
		saved = model.Machine{ID: nextID(ids), Name: in.Name, Product: product, Count: 0}
		machines = append(machines, saved)
	}

	if err := s.kv.Set(ctx, kv.KeyMachines, machines); err != nil {
		return model.Machine{}, err
	}
	return saved, nil
}

// DeleteMachine removes the machine with the given id.
func (s *kvStore) DeleteMachine(ctx context.Context, id int64) error {
	s.machinesMu.Lock()
	defer s.machinesMu.Unlock()

	machines, err := s.machines(ctx)
	if err != nil {
		return err
	}

	kept := machines[:0]
	for _, m := range machines {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(machines) {
		return ErrNotFound
	}
	return s.kv.Set(ctx, kv.KeyMachines, kept)
}

// SetMachineCount is the count-feed entry point: it is the only operation
// that writes Machine.Count after creation.
func (s *kvStore) SetMachineCount(ctx context.Context, id int64, count int) (model.Machine, error) {
	if count < 0 {
		return model.Machine{}, validationErrorf("machine count must not be negative")
	}

	s.machinesMu.Lock()
	defer s.machinesMu.Unlock()

	machines, err := s.machines(ctx)
	if err != nil {
		return model.Machine{}, err
	}
	for i := range machines {
		if machines[i].ID == id {
			machines[i].Count = count
			if err := s.kv.Set(ctx, kv.KeyMachines, machines); err != nil {
				return model.Machine{}, err
			}
			return machines[i], nil
		}
	}
	return model.Machine{}, ErrNotFound
}
