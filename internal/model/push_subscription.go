package model

import "time"

// PushSubscription holds the information for a browser push subscription
// and the machines whose milestone alerts it wants. Machines live inside a
// JSON collection document rather than their own table, so the id list is
// serialized in place instead of a join table.
type PushSubscription struct {
	Endpoint   string    `gorm:"primaryKey"`
	P256DH     string    `gorm:"column:p256dh;not null"`
	Auth       string    `gorm:"not null"`
	MachineIDs []int64   `gorm:"serializer:json"`
	CreatedAt  time.Time `gorm:"not null"`
}
