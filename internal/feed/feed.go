// Package feed implements the count-feed collaborator: the sole writer of
// machine counts and employee box counts after creation. A built-in
// simulator stands in for the real producer; external producers use the
// same Apply entry points through the feed HTTP endpoints.
package feed

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/config"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/metrics"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/notification"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

// Service applies count-feed updates and announces production milestones.
type Service struct {
	cfg   *config.Config
	store store.Store
	pool  *notification.WorkerPool
	rng   *rand.Rand
}

// NewService creates the feed service and its notification pool.
func NewService(cfg *config.Config, st store.Store) *Service {
	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	return &Service{
		cfg:   cfg,
		store: st,
		pool:  notification.NewWorkerPool(cfg.WorkerPool.Size, st, &webpushOptions),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Pool returns the notification worker pool for testing.
func (s *Service) Pool() *notification.WorkerPool {
	return s.pool
}

// Run starts the notification workers and, when the simulator is enabled,
// ticks random updates until the context is cancelled. The HTTP feed
// endpoints keep working either way.
func (s *Service) Run(ctx context.Context) {
	s.pool.Start(ctx)

	if !s.cfg.Feed.SimulatorEnabled {
		log.Println("Feed simulator is disabled. Waiting for external feed updates only.")
		<-ctx.Done()
		return
	}
	log.Println("Starting feed simulator...")

	timer := time.NewTimer(s.cfg.Feed.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Feed simulator shutting down.")
			return
		case <-timer.C:
			s.SimulateOnce(ctx)
			timer.Reset(s.cfg.Feed.Interval)
		}
	}
}

// SimulateOnce performs one simulator cycle: bump one random machine's count
// and one random employee's box count, mirroring a burst from the real feed.
func (s *Service) SimulateOnce(ctx context.Context) {
	machines, err := s.store.ListMachines(ctx)
	if err != nil {
		log.Printf("Feed cycle: failed to list machines: %v", err)
	} else if len(machines) > 0 {
		m := machines[s.rng.Intn(len(machines))]
		if _, err := s.ApplyMachineCount(ctx, m.ID, m.Count+s.rng.Intn(5)); err != nil {
			log.Printf("Feed cycle: failed to update machine %d: %v", m.ID, err)
		}
	}

	stations, err := s.store.ListStations(ctx)
	if err != nil {
		log.Printf("Feed cycle: failed to list stations: %v", err)
		return
	}
	if len(stations) == 0 {
		return
	}
	st := stations[s.rng.Intn(len(stations))]
	if len(st.Employees) == 0 {
		return
	}
	pos := s.rng.Intn(len(st.Employees))
	boxes := st.Employees[pos].Boxes + s.rng.Intn(2)
	if _, err := s.ApplyEmployeeBoxes(ctx, st.ID, pos, boxes); err != nil {
		log.Printf("Feed cycle: failed to update station %d employee %d: %v", st.ID, pos, err)
	}
}

// ApplyMachineCount writes a machine's count and dispatches a milestone
// notification when the count crosses a configured multiple.
func (s *Service) ApplyMachineCount(ctx context.Context, id int64, count int) (model.Machine, error) {
	machines, err := s.store.ListMachines(ctx)
	if err != nil {
		return model.Machine{}, err
	}
	old := 0
	for _, m := range machines {
		if m.ID == id {
			old = m.Count
			break
		}
	}

	updated, err := s.store.SetMachineCount(ctx, id, count)
	if err != nil {
		return model.Machine{}, err
	}
	metrics.FeedUpdates.WithLabelValues("machine").Inc()

	if milestone := s.cfg.Feed.Milestone; milestone > 0 && count/milestone > old/milestone {
		s.pool.Dispatch(notification.Milestone{
			MachineID:   updated.ID,
			MachineName: updated.Name,
			Count:       updated.Count,
		})
	}
	return updated, nil
}

// ApplyEmployeeBoxes writes one employee's box count by station and 0-based
// position.
func (s *Service) ApplyEmployeeBoxes(ctx context.Context, stationID int64, position, boxes int) (model.Station, error) {
	updated, err := s.store.SetEmployeeBoxes(ctx, stationID, position, boxes)
	if err != nil {
		return model.Station{}, err
	}
	metrics.FeedUpdates.WithLabelValues("employee").Inc()
	return updated, nil
}
