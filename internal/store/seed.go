package store

import (
	"context"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

// EnsureSampleData writes demo machines and stations on first boot so the
// dashboard is not empty. Keys that already exist are left alone.
func (s *kvStore) EnsureSampleData(ctx context.Context) error {
	s.machinesMu.Lock()
	hasMachines, err := s.kv.Has(ctx, kv.KeyMachines)
	if err == nil && !hasMachines {
		err = s.kv.Set(ctx, kv.KeyMachines, []model.Machine{
			{ID: 1, Name: "Machine 1", Product: "Product A", Count: 1250},
			{ID: 2, Name: "Machine 2", Product: "Product A", Count: 980},
			{ID: 3, Name: "Machine 3", Product: "Product B", Count: 1520},
			{ID: 4, Name: "Machine 4", Product: "Product B", Count: 1100},
		})
	}
	s.machinesMu.Unlock()
	if err != nil {
		return err
	}

	s.stationsMu.Lock()
	defer s.stationsMu.Unlock()
	hasStations, err := s.kv.Has(ctx, kv.KeyStations)
	if err != nil || hasStations {
		return err
	}
	return s.kv.Set(ctx, kv.KeyStations, []model.Station{
		{ID: 1, Name: "Station A", Employees: []model.Employee{
			{ID: 1, Name: "Employee A", Boxes: 145},
			{ID: 2, Name: "Employee B", Boxes: 132},
		}},
		{ID: 2, Name: "Station B", Employees: []model.Employee{
			{ID: 1, Name: "Employee A", Boxes: 98},
		}},
		{ID: 3, Name: "Station C", Employees: []model.Employee{
			{ID: 1, Name: "Employee A", Boxes: 167},
			{ID: 2, Name: "Employee B", Boxes: 154},
		}},
	})
}
