package dto

type CreateAccountRequest struct {
	Name    string   `json:"name"`
	Balance *float64 `json:"balance,omitempty"`
}

type UpdateAccountRequest struct {
	Name    *string  `json:"name,omitempty"`
	Balance *float64 `json:"balance,omitempty"`
}
