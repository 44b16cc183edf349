package entity

// Record is a single data point: an identifier, a value and the category it belongs to.
type Record struct {
	ID       uint32  `json:"id" yaml:"id"`
	Value    float64 `json:"value" yaml:"value"`
	Category string  `json:"category" yaml:"category"`
}

// CategoryTotal represents the accumulated value of every record sharing a category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
