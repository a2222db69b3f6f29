package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")

	ErrInvalidAmount  = errors.New("amount must be a number")
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrJobNotPayable: job absent, already paid, contract not active, or
	// the caller is not the contract's client. One error on purpose.
	ErrJobNotPayable      = errors.New("job not found or not payable")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDepositCapExceeded = errors.New("deposit cap exceeded")

	ErrNoDataInRange = errors.New("no data for selected period")
)
