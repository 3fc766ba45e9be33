package model

// Station is a named group of employees whose box-completion counts are
// tracked.
type Station struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Employees []Employee `json:"employees"`
}

// Employee belongs to exactly one station. Its ID is the 1-based position
// within the station and is recomputed on every save, so it is not stable
// across employee-count changes. Boxes is written exclusively by the count
// feed.
type Employee struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Boxes int    `json:"boxes"`
}
