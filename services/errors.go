package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound marks a referenced Restaurant, MenuItem or Order that does
// not exist (or is soft-deleted). Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed input (empty address, empty
// selection, non-positive quantity, unknown payment method).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// InvalidSelectionError rejects a menu item that cannot be ordered from
// the target restaurant. It always names the offending item.
type InvalidSelectionError struct {
	MenuItemID uint
	Reason     string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("menu item %d: %s", e.MenuItemID, e.Reason)
}

// AmountMismatchError rejects a payment whose amount disagrees with the
// order total.
type AmountMismatchError struct {
	Expected decimal.Decimal
	Got      decimal.Decimal
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("payment amount %s does not match order total %s", e.Got, e.Expected)
}
