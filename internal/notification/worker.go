package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/metrics"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

// Milestone is one production milestone to announce: a machine's count
// crossed a configured multiple.
type Milestone struct {
	MachineID   int64
	MachineName string
	Count       int
}

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real Sender implementation using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers for sending milestone notifications.
type WorkerPool struct {
	size    int
	jobs    chan Milestone
	store   store.Store
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, st store.Store, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan Milestone, size),
		store:   st,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// SetSender replaces the delivery mechanism; tests use it to capture sends.
func (wp *WorkerPool) SetSender(s Sender) {
	wp.sender = s
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Notification worker %d started", id)
	for {
		select {
		case m := <-wp.jobs:
			wp.notify(ctx, m)
		case <-ctx.Done():
			log.Printf("Notification worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool.
func (wp *WorkerPool) Dispatch(m Milestone) {
	wp.jobs <- m
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan Milestone {
	return wp.jobs
}

// notify fans the milestone out to every subscription watching the machine.
func (wp *WorkerPool) notify(ctx context.Context, m Milestone) {
	subs, err := wp.store.SubscriptionsForMachine(ctx, m.MachineID)
	if err != nil {
		log.Printf("Error fetching subscriptions for machine %d: %v", m.MachineID, err)
		return
	}
	if len(subs) == 0 {
		return
	}

	label := m.MachineName
	if label == "" {
		label = fmt.Sprintf("%d", m.MachineID)
	}
	payload := []byte(fmt.Sprintf("Machine %s reached %d units", label, m.Count))

	log.Printf("Sending %d notifications for machine %d", len(subs), m.MachineID)
	for _, sub := range subs {
		wp.send(ctx, sub.Endpoint, sub.P256DH, sub.Auth, payload)
	}
}

func (wp *WorkerPool) send(ctx context.Context, endpoint, p256dh, auth string, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: endpoint,
		Keys: webpush.Keys{
			P256dh: p256dh,
			Auth:   auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("error").Inc()
		log.Printf("Error sending notification to %s: %v", endpoint, err)
		return
	}
	defer resp.Body.Close()
	metrics.NotificationsSent.WithLabelValues("ok").Inc()

	// Handle expired subscriptions
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", endpoint)
		if err := wp.store.DeleteSubscription(ctx, endpoint); err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", endpoint, err)
		}
	}
}
