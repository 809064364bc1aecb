package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/avstrong/hotel/internal/hotel"
)

var (
	ErrIdempotencyKey      = errors.New("idempotency key not found")
	ErrRecordNotFound      = fmt.Errorf("record: %w", hotel.ErrNotFound)
	ErrHotelExists         = fmt.Errorf("hotel with this name already exists: %w", hotel.ErrConflict)
	ErrDuplicateRoom       = fmt.Errorf("room with this name already exists: %w", hotel.ErrConflict)
	ErrTooManyRooms        = fmt.Errorf("maximum number of rooms reached: %w", hotel.ErrConflict)
	ErrReservationNotFound = fmt.Errorf("reservation: %w", hotel.ErrNotFound)
)

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) orNil() error {
	if ie.fieldsCount() > 0 {
		return ie
	}

	return nil
}

func (ie *InputError) Error() string {
	keys := make([]string, 0, len(ie.fields))
	for key := range ie.fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(ie.fields[key], "; ")))
	}

	return "invalid input: " + strings.Join(parts, ", ")
}

func (ie *InputError) Unwrap() error {
	return hotel.ErrInvalidInput
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
