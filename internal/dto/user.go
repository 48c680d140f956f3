package dto

type RegisterUserRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// DeleteAccountResponse confirms a completed full deletion.
type DeleteAccountResponse struct {
	Message string `json:"message"`
}

type UpdatePreferencesRequest struct {
	Currency *string `json:"currency,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}
