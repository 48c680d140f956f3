package services

import (
	"strings"
	"time"

	"github.com/GregMSThompson/pocketledger/internal/errs"
	"github.com/GregMSThompson/pocketledger/internal/finance"
	"github.com/GregMSThompson/pocketledger/internal/models"
)

const monthLayout = "2006-01"

// Validation runs before any store write. A rejection names the field
// and the constraint, and nothing is partially applied.

func validateKind(kind string) error {
	if kind != models.KindIncome && kind != models.KindExpense {
		return errs.NewValidationError("type must be 'income' or 'expense'")
	}
	return nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValidationError("category must be a non-empty string")
	}
	return nil
}

func validatePositive(field string, amount float64) error {
	if amount <= 0 {
		return errs.NewValidationError(field + " must be a positive number")
	}
	return nil
}

func validateNonNegative(field string, amount float64) error {
	if amount < 0 {
		return errs.NewValidationError(field + " must be a non-negative number")
	}
	return nil
}

func validateDate(field, value string) error {
	if value == "" {
		return errs.NewValidationError(field + " is required")
	}
	if _, err := time.Parse(finance.DateLayout, value); err != nil {
		return errs.NewValidationError(field + " must be a YYYY-MM-DD date")
	}
	return nil
}

func validateMonth(value string) error {
	if _, err := time.Parse(monthLayout, value); err != nil {
		return errs.NewValidationError("month must be a YYYY-MM month key")
	}
	return nil
}

func validateTitle(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValidationError(field + " must be a non-empty string")
	}
	return nil
}
