package hotel

import (
	"strings"

	"github.com/google/uuid"
)

// Room is not safe for concurrent use; callers serialize access per hotel.
type Room struct {
	name         string
	price        float64
	category     Category
	reservations []*Reservation
}

// NewRoom derives the stored name and initial price from the category.
func NewRoom(name string, basePrice float64, category Category) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	//nolint:exhaustruct
	return &Room{
		name:     name + category.Suffix(),
		price:    basePrice * category.Multiplier(),
		category: category,
	}, nil
}

func (r *Room) Name() string {
	return r.name
}

func (r *Room) Price() float64 {
	return r.price
}

func (r *Room) SetPrice(price float64) {
	r.price = price
}

func (r *Room) Category() Category {
	return r.category
}

func (r *Room) Reservations() []*Reservation {
	return append([]*Reservation(nil), r.reservations...)
}

func overlaps(checkIn, checkOut int, reservation *Reservation) bool {
	return checkIn < reservation.CheckOut() && checkOut > reservation.CheckIn()
}

func (r *Room) conflicts(checkIn, checkOut int) []*Reservation {
	var out []*Reservation

	for _, reservation := range r.reservations {
		if overlaps(checkIn, checkOut, reservation) {
			out = append(out, reservation)
		}
	}

	return out
}

func (r *Room) IsAvailable(checkIn, checkOut int) bool {
	for _, reservation := range r.reservations {
		if overlaps(checkIn, checkOut, reservation) {
			return false
		}
	}

	return true
}

// AddReservation checks availability again right before storing the reservation,
// so a reservation built from stale availability data is still rejected.
func (r *Room) AddReservation(reservation *Reservation) error {
	if reservation == nil {
		return ErrNilReservation
	}

	if clashes := r.conflicts(reservation.CheckIn(), reservation.CheckOut()); len(clashes) > 0 {
		return &AvailabilityError{
			RoomName:  r.name,
			CheckIn:   reservation.CheckIn(),
			CheckOut:  reservation.CheckOut(),
			conflicts: clashes,
		}
	}

	r.reservations = append(r.reservations, reservation)

	return nil
}

// RemoveReservation drops the first reservation booked under guestName,
// in booking order. Use RemoveReservationByID when a guest holds several.
func (r *Room) RemoveReservation(guestName string) bool {
	for idx, reservation := range r.reservations {
		if reservation.GuestName() == guestName {
			r.removeAt(idx)

			return true
		}
	}

	return false
}

func (r *Room) RemoveReservationByID(id uuid.UUID) bool {
	for idx, reservation := range r.reservations {
		if reservation.ID() == id {
			r.removeAt(idx)

			return true
		}
	}

	return false
}

func (r *Room) removeAt(idx int) {
	r.reservations = append(r.reservations[:idx], r.reservations[idx+1:]...)
}

func (r *Room) IsEmpty() bool {
	return len(r.reservations) == 0
}

func (r *Room) Earnings() float64 {
	var total float64

	for _, reservation := range r.reservations {
		total += reservation.TotalCost()
	}

	return total
}

// AvailableDates lists every date of the month on which a one-night stay fits.
func (r *Room) AvailableDates() []int {
	dates := make([]int, 0, LastDate)

	for date := FirstDate; date <= LastDate; date++ {
		if r.IsAvailable(date, date+1) {
			dates = append(dates, date)
		}
	}

	return dates
}
