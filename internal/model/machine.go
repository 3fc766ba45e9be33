package model

// Machine represents a production machine and its running unit count.
// Count is written exclusively by the count feed; the edit form never
// touches it.
type Machine struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Product string `json:"product"`
	Count   int    `json:"count"`
}
