package boost

import "errors"

var (
	ErrUnknownCode      = errors.New("unknown discount code")
	ErrStayTooShort     = errors.New("stay is too short for the discount")
	ErrPaydayNotSpanned = errors.New("stay does not span a payday")
)
