package dashboard

import "errors"

var (
	// ErrNoTransactions is the recoverable empty-result state: the merchant
	// has no datable rows in the extract. Handlers surface it as a warning,
	// not a failure.
	ErrNoTransactions = errors.New("no transactions found for merchant")

	ErrInvalidRange = errors.New("start date must not be after end date")
)
