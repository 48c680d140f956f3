package models

import "time"

// Account is a user-named pot of money (cash, bank, savings). Balances
// are user-entered; nothing syncs them from an institution.
type Account struct {
	AccountID string    `firestore:"accountId" json:"accountId"`
	Name      string    `firestore:"name" json:"name"`
	Balance   float64   `firestore:"balance" json:"balance"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
