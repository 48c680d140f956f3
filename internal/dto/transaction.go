package dto

// CreateTransactionRequest is the payload for POST /transactions.
type CreateTransactionRequest struct {
	Kind     string  `json:"type"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Note     string  `json:"note,omitempty"`
}

// UpdateTransactionRequest is a partial update; absent fields are left
// untouched. Present fields are validated before anything is written.
type UpdateTransactionRequest struct {
	Kind     *string  `json:"type,omitempty"`
	Category *string  `json:"category,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Date     *string  `json:"date,omitempty"`
	Note     *string  `json:"note,omitempty"`
}

// TransactionQuery filters a list. Kind nil means both kinds.
type TransactionQuery struct {
	Kind *string
}
