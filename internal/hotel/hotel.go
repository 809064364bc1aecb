package hotel

import (
	"math"
	"strings"
)

const MinBasePrice = 100.0

// validBasePrice also rejects NaN and infinities.
func validBasePrice(basePrice float64) bool {
	return basePrice >= MinBasePrice && !math.IsInf(basePrice, 0)
}

// Hotel aggregates rooms and a price calendar. Like Room it has no internal
// locking: the whole hotel is one unit of mutual exclusion for callers.
type Hotel struct {
	name      string
	basePrice float64
	rooms     []*Room
	calendar  *PriceCalendar
}

func New(name string, basePrice float64) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if !validBasePrice(basePrice) {
		return nil, ErrInvalidBasePrice
	}

	//nolint:exhaustruct
	return &Hotel{
		name:      name,
		basePrice: basePrice,
		calendar:  NewPriceCalendar(),
	}, nil
}

func (h *Hotel) Name() string {
	return h.name
}

func (h *Hotel) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	h.name = name

	return nil
}

func (h *Hotel) BasePrice() float64 {
	return h.basePrice
}

func (h *Hotel) Calendar() *PriceCalendar {
	return h.calendar
}

func (h *Hotel) SetRate(date int, rate float64) error {
	return h.calendar.SetRate(date, rate)
}

func (h *Hotel) Rate(date int) float64 {
	return h.calendar.Rate(date)
}

func (h *Hotel) Rooms() []*Room {
	return append([]*Room(nil), h.rooms...)
}

func (h *Hotel) TotalRooms() int {
	return len(h.rooms)
}

// NewRoom builds a room priced from the current base price. It does not add it.
func (h *Hotel) NewRoom(name string, category Category) (*Room, error) {
	return NewRoom(name, h.basePrice, category)
}

// AddRoom ignores a nil room.
func (h *Hotel) AddRoom(room *Room) {
	if room == nil {
		return
	}

	h.rooms = append(h.rooms, room)
}

func (h *Hotel) RemoveRoom(room *Room) bool {
	for idx, candidate := range h.rooms {
		if candidate == room {
			h.rooms = append(h.rooms[:idx], h.rooms[idx+1:]...)

			return true
		}
	}

	return false
}

func (h *Hotel) RoomByName(name string) (*Room, bool) {
	for _, room := range h.rooms {
		if room.Name() == name {
			return room, true
		}
	}

	return nil, false
}

// RemoveRoomByName only removes rooms without any reservation.
func (h *Hotel) RemoveRoomByName(name string) error {
	room, ok := h.RoomByName(name)
	if !ok {
		return ErrRoomNotFound
	}

	if !room.IsEmpty() {
		return ErrRoomNotEmpty
	}

	h.RemoveRoom(room)

	return nil
}

func (h *Hotel) CheckDuplicateRoomName(name string) bool {
	_, ok := h.RoomByName(name)

	return ok
}

// IsPriceUpdateable reports whether at least one room has no reservations.
func (h *Hotel) IsPriceUpdateable() bool {
	for _, room := range h.rooms {
		if room.IsEmpty() {
			return true
		}
	}

	return false
}

// SetBasePrice sets the price of every room to basePrice as is,
// category multipliers are not applied again.
func (h *Hotel) SetBasePrice(basePrice float64) error {
	if !validBasePrice(basePrice) {
		return ErrInvalidBasePrice
	}

	if !h.IsPriceUpdateable() {
		return ErrPriceNotUpdatable
	}

	h.basePrice = basePrice

	for _, room := range h.rooms {
		room.SetPrice(basePrice)
	}

	return nil
}

func (h *Hotel) EstimatedEarnings() float64 {
	var total float64

	for _, room := range h.rooms {
		total += room.Earnings()
	}

	return total
}

func (h *Hotel) AvailableRooms(date int) int {
	var available int

	for _, room := range h.rooms {
		if room.IsAvailable(date, date+1) {
			available++
		}
	}

	return available
}

func (h *Hotel) BookedRooms(date int) int {
	return h.TotalRooms() - h.AvailableRooms(date)
}

// FindReservations returns every reservation held under guestName, room by room.
func (h *Hotel) FindReservations(guestName string) []*Reservation {
	var out []*Reservation

	for _, room := range h.rooms {
		for _, reservation := range room.reservations {
			if reservation.GuestName() == guestName {
				out = append(out, reservation)
			}
		}
	}

	return out
}
