package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

// GetSubscription looks up a push subscription by its endpoint.
func (s *kvStore) GetSubscription(ctx context.Context, endpoint string) (model.PushSubscription, error) {
	var sub model.PushSubscription
	err := s.db.WithContext(ctx).First(&sub, "endpoint = ?", endpoint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PushSubscription{}, ErrNotFound
	}
	if err != nil {
		return model.PushSubscription{}, fmt.Errorf("failed to load subscription: %w", err)
	}
	return sub, nil
}

// PutSubscription creates or replaces a subscription. Machine ids that no
// longer exist are dropped rather than rejected, so stale clients can still
// resubscribe.
func (s *kvStore) PutSubscription(ctx context.Context, sub model.PushSubscription) error {
	machines, err := s.ListMachines(ctx)
	if err != nil {
		return err
	}
	known := make(map[int64]struct{}, len(machines))
	for _, m := range machines {
		known[m.ID] = struct{}{}
	}
	ids := sub.MachineIDs[:0]
	for _, id := range sub.MachineIDs {
		if _, ok := known[id]; ok {
			ids = append(ids, id)
		}
	}
	sub.MachineIDs = ids

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "machine_ids"}),
	}).Create(&sub).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// DeleteSubscription removes a subscription by endpoint.
func (s *kvStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	if err := s.db.WithContext(ctx).Delete(&model.PushSubscription{Endpoint: endpoint}).Error; err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

// SubscriptionsForMachine returns every subscription interested in the given
// machine. The id list is a serialized JSON column, so filtering happens
// here rather than in SQL; subscription counts are small.
func (s *kvStore) SubscriptionsForMachine(ctx context.Context, machineID int64) ([]model.PushSubscription, error) {
	var subs []model.PushSubscription
	if err := s.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}
	matched := subs[:0]
	for _, sub := range subs {
		if slices.Contains(sub.MachineIDs, machineID) {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}
