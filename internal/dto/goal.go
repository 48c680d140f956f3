package dto

type CreateGoalRequest struct {
	Title         string   `json:"title"`
	TargetAmount  float64  `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
	Deadline      string   `json:"deadline"`
}

type UpdateGoalRequest struct {
	Title         *string  `json:"title,omitempty"`
	TargetAmount  *float64 `json:"targetAmount,omitempty"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
}

// AddGoalProgressRequest records a contribution toward a goal.
type AddGoalProgressRequest struct {
	Amount float64 `json:"amount"`
}

// GoalProgressResponse decorates a goal with its derived display fields.
type GoalProgressResponse struct {
	GoalID        string  `json:"goalId"`
	Progress      float64 `json:"progress"` // clamped percentage
	Remaining     float64 `json:"remaining"`
	DaysRemaining int     `json:"daysRemaining"`
}
