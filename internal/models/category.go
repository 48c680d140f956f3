package models

import "time"

// Category is a suggested label for transactions. The suggestion set is
// global, not per-user, and transactions may still use free-form labels.
type Category struct {
	CategoryID string    `firestore:"categoryId" json:"categoryId"`
	Name       string    `firestore:"name" json:"name"`
	Kind       string    `firestore:"type" json:"type"` // "income" or "expense"
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}
