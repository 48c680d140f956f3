package models

import (
	"time"
)

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction is a single income or expense record. Ownership is implied
// by the subcollection it lives in; the struct never carries a user id.
type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	Kind          string    `firestore:"type" json:"type"` // "income" or "expense"
	Category      string    `firestore:"category" json:"category"`
	Amount        float64   `firestore:"amount" json:"amount"`
	Date          string    `firestore:"date" json:"date"` // YYYY-MM-DD
	Note          string    `firestore:"note" json:"note,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
