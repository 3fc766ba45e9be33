package model

import "time"

// ProductType carries metadata for a product name. A product is identified
// by its name alone; machines may reference names that have no ProductType
// record.
type ProductType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
