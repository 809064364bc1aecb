package hotel

import (
	"strings"

	"github.com/google/uuid"

	"github.com/avstrong/hotel/internal/boost"
)

// Reservation is immutable. Its total cost is fixed when it is built,
// later calendar changes do not reach it.
type Reservation struct {
	id        uuid.UUID
	guestName string
	checkIn   int
	checkOut  int
	roomName  string
	basePrice float64
	totalCost float64
}

func NewReservation(
	guestName string,
	checkIn, checkOut int,
	roomName string,
	rates RateSource,
	room *Room,
) (*Reservation, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyName
	}

	if room == nil || rates == nil {
		return nil, ErrNilRoom
	}

	if !ValidDate(checkIn) {
		return nil, ErrInvalidDate
	}

	if checkOut <= checkIn || checkOut > LastDate+1 {
		return nil, ErrInvalidStay
	}

	basePrice := room.Price()

	return &Reservation{
		id:        uuid.New(),
		guestName: guestName,
		checkIn:   checkIn,
		checkOut:  checkOut,
		roomName:  roomName,
		basePrice: basePrice,
		totalCost: totalCost(checkIn, checkOut, basePrice, rates),
	}, nil
}

func totalCost(checkIn, checkOut int, basePrice float64, rates RateSource) float64 {
	var total float64

	for date := checkIn; date < checkOut; date++ {
		total += basePrice * rates.Rate(date)
	}

	return total
}

func (r *Reservation) ID() uuid.UUID {
	return r.id
}

func (r *Reservation) GuestName() string {
	return r.guestName
}

func (r *Reservation) CheckIn() int {
	return r.checkIn
}

func (r *Reservation) CheckOut() int {
	return r.checkOut
}

func (r *Reservation) Nights() int {
	return r.checkOut - r.checkIn
}

func (r *Reservation) RoomName() string {
	return r.roomName
}

func (r *Reservation) BasePrice() float64 {
	return r.basePrice
}

func (r *Reservation) TotalCost() float64 {
	return r.totalCost
}

func (r *Reservation) stay() boost.Stay {
	return boost.Stay{
		CheckIn:      r.checkIn,
		CheckOut:     r.checkOut,
		NightlyPrice: r.basePrice,
		Total:        r.totalCost,
	}
}

func (r *Reservation) IsValidDiscountCode(code string) bool {
	return boost.Eligible(code, r.stay())
}

// CalculateDiscountedPrice returns the total after applying code, or the
// undiscounted total when the code does not apply. TotalCost is not changed.
func (r *Reservation) CalculateDiscountedPrice(code string) float64 {
	return boost.Apply(code, r.stay())
}

// CheckDiscountCode explains why code cannot be applied, nil when it can.
func (r *Reservation) CheckDiscountCode(code string) error {
	return boost.Check(code, r.stay())
}
