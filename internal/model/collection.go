package model

import "time"

// Collection is a persisted key-value row holding one whole JSON-serialized
// collection (machines, stations, product types, current user).
type Collection struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
