package models

import "time"

// Goal is a savings target. CurrentAmount may exceed TargetAmount in
// storage; display clamping happens in the aggregation layer.
type Goal struct {
	GoalID        string    `firestore:"goalId" json:"goalId"`
	Title         string    `firestore:"title" json:"title"`
	TargetAmount  float64   `firestore:"targetAmount" json:"targetAmount"`
	CurrentAmount float64   `firestore:"currentAmount" json:"currentAmount"`
	Deadline      string    `firestore:"deadline" json:"deadline"` // YYYY-MM-DD
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
