package store

import (
	"context"
	"strings"
	"time"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

func (s *kvStore) productTypes(ctx context.Context) ([]model.ProductType, error) {
	types := []model.ProductType{}
	if err := s.kv.Get(ctx, kv.KeyProductTypes, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// ListProductTypes returns all product-type records in insertion order.
func (s *kvStore) ListProductTypes(ctx context.Context) ([]model.ProductType, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()
	return s.productTypes(ctx)
}

// CreateProductType appends a new product-type record. Names are unique
// case-insensitively.
func (s *kvStore) CreateProductType(ctx context.Context, name, description string) (model.ProductType, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return model.ProductType{}, validationErrorf("product type name is required")
	}

	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	types, err := s.productTypes(ctx)
	if err != nil {
		return model.ProductType{}, err
	}
	for _, t := range types {
		if strings.EqualFold(t.Name, name) {
			return model.ProductType{}, validationErrorf("product type %q already exists", name)
		}
	}

	ids := make([]int64, len(types))
	for i, t := range types {
		ids[i] = t.ID
	}
	created := model.ProductType{
		ID:          nextID(ids),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	types = append(types, created)

	if err := s.kv.Set(ctx, kv.KeyProductTypes, types); err != nil {
		return model.ProductType{}, err
	}
	return created, nil
}

// DeleteProductType removes the record with the given name, refusing when
// any machine still references it. The machine list is re-read here, not
// taken from whatever the caller last rendered, because machines may have
// changed since.
func (s *kvStore) DeleteProductType(ctx context.Context, name string) error {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	machines, err := s.ListMachines(ctx)
	if err != nil {
		return err
	}
	var referencing []string
	for _, m := range machines {
		if m.Product == name {
			referencing = append(referencing, m.Name)
		}
	}
	if len(referencing) > 0 {
		return &InUseError{Product: name, Machines: referencing}
	}

	types, err := s.productTypes(ctx)
	if err != nil {
		return err
	}
	kept := types[:0]
	for _, t := range types {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(types) {
		return ErrNotFound
	}
	return s.kv.Set(ctx, kv.KeyProductTypes, kept)
}
