package models

import "time"

// Preferences holds display-only settings. The aggregation layer never
// reads these; amounts are stored and computed currency-agnostic.
type Preferences struct {
	Currency  string    `firestore:"currency" json:"currency"`
	Theme     string    `firestore:"theme" json:"theme"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
