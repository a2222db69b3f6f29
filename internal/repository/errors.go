package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrJobNotPayable covers every reason the payment query can miss: job
	// absent, already paid, contract not in progress, or the caller is not
	// the contract's client. Deliberately not distinguished.
	ErrJobNotPayable = errors.New("job not payable")

	ErrInsufficientFunds = errors.New("insufficient funds")
)

// DepositCapError carries the computed cap so callers can surface it.
type DepositCapError struct {
	Cap float64
}

func (e *DepositCapError) Error() string {
	return fmt.Sprintf("deposit exceeds allowed cap of %.2f", e.Cap)
}
