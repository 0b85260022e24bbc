package models

// Item is a configured product or service with a default unit price (HT).
// The catalog lives in the configuration file; document lines reference an
// item by key but copy its price at creation time.
type Item struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
}
