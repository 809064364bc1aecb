package hotel

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
)

var (
	ErrEmptyName         = fmt.Errorf("name must not be empty: %w", ErrInvalidInput)
	ErrInvalidBasePrice  = fmt.Errorf("base price must be at least %v: %w", MinBasePrice, ErrInvalidInput)
	ErrInvalidDate       = fmt.Errorf("date must be within [%d, %d]: %w", FirstDate, LastDate, ErrInvalidInput)
	ErrInvalidRate       = fmt.Errorf("price rate must be within [%v, %v]: %w", MinRate, MaxRate, ErrInvalidInput)
	ErrInvalidStay       = fmt.Errorf("check-out must be after check-in and not later than %d: %w", LastDate+1, ErrInvalidInput)
	ErrInvalidCategory   = fmt.Errorf("room category must be Standard, Deluxe or Executive: %w", ErrInvalidInput)
	ErrNilRoom           = fmt.Errorf("room is required: %w", ErrInvalidInput)
	ErrNilReservation    = fmt.Errorf("reservation is required: %w", ErrInvalidInput)
	ErrRoomNotEmpty      = fmt.Errorf("room has reservations: %w", ErrConflict)
	ErrPriceNotUpdatable = fmt.Errorf("every room has reservations: %w", ErrConflict)
	ErrRoomNotFound      = fmt.Errorf("room: %w", ErrNotFound)
)

type AvailabilityError struct {
	RoomName  string
	CheckIn   int
	CheckOut  int
	conflicts []*Reservation
}

func IsAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}

	var availabilityError *AvailabilityError

	if errors.As(err, &availabilityError) {
		return availabilityError
	}

	return nil
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf(
		"room '%v' is unavailable for [%d, %d): %d overlapping reservation(s)",
		e.RoomName,
		e.CheckIn,
		e.CheckOut,
		len(e.conflicts),
	)
}

func (e *AvailabilityError) Unwrap() error {
	return ErrConflict
}

func (e *AvailabilityError) Conflicts() []*Reservation {
	return append([]*Reservation(nil), e.conflicts...)
}
