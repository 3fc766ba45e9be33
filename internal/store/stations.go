package store

import (
	"context"
	"strings"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

// StationInput carries the editable station fields. EmployeeNames is the
// ordered position-to-name sequence from the form; its length is the target
// employee count.
type StationInput struct {
	ID            int64
	Name          string
	EmployeeNames []string
}

func (s *kvStore) stations(ctx context.Context) ([]model.Station, error) {
	stations := []model.Station{}
	if err := s.kv.Get(ctx, kv.KeyStations, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// ListStations returns all stations in insertion order.
func (s *kvStore) ListStations(ctx context.Context) ([]model.Station, error) {
	s.stationsMu.Lock()
	defer s.stationsMu.Unlock()
	return s.stations(ctx)
}

// buildEmployees maps form names onto the existing employee sequence:
// positions that existed before keep their box counts, new positions start
// at zero, and ids are recomputed 1..N. Employee identity is the position
// within the station, so reordering names reassigns box counts by position.
func buildEmployees(names []string, existing []model.Employee) []model.Employee {
	employees := make([]model.Employee, len(names))
	for i, name := range names {
		boxes := 0
		if i < len(existing) {
			boxes = existing[i].Boxes
		}
		employees[i] = model.Employee{ID: int64(i + 1), Name: name, Boxes: boxes}
	}
	return employees
}

// UpsertStation creates a station or replaces an existing station's name and
// employee sequence, carrying forward box counts by position.
func (s *kvStore) UpsertStation(ctx context.Context, in StationInput) (model.Station, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Station{}, validationErrorf("station name is required")
	}
	if len(in.EmployeeNames) == 0 {
		return model.Station{}, validationErrorf("a station needs at least one employee")
	}
	for i, name := range in.EmployeeNames {
		if strings.TrimSpace(name) == "" {
			return model.Station{}, validationErrorf("employee %d name is required", i+1)
		}
	}

	s.stationsMu.Lock()
	defer s.stationsMu.Unlock()

	stations, err := s.stations(ctx)
	if err != nil {
		return model.Station{}, err
	}

	var saved model.Station
	if in.ID != 0 {
		idx := -1
		for i, st := range stations {
			if st.ID == in.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.Station{}, ErrNotFound
		}
		saved = model.Station{
			ID:        in.ID,
			Name:      in.Name,
			Employees: buildEmployees(in.EmployeeNames, stations[idx].Employees),
		}
		stations[idx] = saved
	} else {
		ids := make([]int64, len(stations))
		for i, st := range stations {
			ids[i] = st.ID
		}
		saved = model.Station{
			ID:        nextID(ids),
			Name:      in.Name,
			Employees: buildEmployees(in.EmployeeNames, nil),
		}
		stations = append(stations, saved)
	}

	if err := s.kv.Set(ctx, kv.KeyStations, stations); err != nil {
		return model.Station{}, err
	}
	return saved, nil
}

// DeleteStation removes the station with the given id.
func (s *kvStore) DeleteStation(ctx context.Context, id int64) error {
	s.stationsMu.Lock()
	defer s.stationsMu.Unlock()

	stations, err := s.stations(ctx)
	if err != nil {
		return err
	}

	kept := stations[:0]
	for _, st := range stations {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	if len(kept) == len(stations) {
		return ErrNotFound
	}
	return s.kv.Set(ctx, kv.KeyStations, kept)
}

// SetEmployeeBoxes is the count-feed entry point for box counts. Position is
// the 0-based index within the station's employee sequence.
func (s *kvStore) SetEmployeeBoxes(ctx context.Context, stationID int64, position, boxes int) (model.Station, error) {
	if boxes < 0 {
		return model.Station{}, validationErrorf("box count must not be negative")
	}

	s.stationsMu.Lock()
	defer s.stationsMu.Unlock()

	stations, err := s.stations(ctx)
	if err != nil {
		return model.Station{}, err
	}
	for i := range stations {
		if stations[i].ID != stationID {
			continue
		}
		if position < 0 || position >= len(stations[i].Employees) {
			return model.Station{}, ErrNotFound
		}
		stations[i].Employees[position].Boxes = boxes
		if err := s.kv.Set(ctx, kv.KeyStations, stations); err != nil {
			return model.Station{}, err
		}
		return stations[i], nil
	}
	return model.Station{}, ErrNotFound
}
