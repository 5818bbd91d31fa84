package leave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange     = errors.New("to date before from date")
	ErrNonPositiveDays  = errors.New("days must be positive")
	ErrAlreadyResolved  = errors.New("leave request already resolved")
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)

type UnknownCategoryError struct {
	Category string
}

func (e UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown leave category %q", e.Category)
}

// InsufficientBalanceError carries the available and requested counts so the
// caller can render them verbatim.
type InsufficientBalanceError struct {
	Category  Category
	Available int
	Requested int
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s leave balance: available %d, requested %d", e.Category, e.Available, e.Requested)
}
