package hotel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotel/internal/boost"
)

func TestPriceCalendar(t *testing.T) {
	calendar := NewPriceCalendar()

	for date := FirstDate; date <= LastDate; date++ {
		assert.Equal(t, DefaultRate, calendar.Rate(date))
	}

	require.NoError(t, calendar.SetRate(10, 1.25))
	require.NoError(t, calendar.SetRate(10, 0.75))
	require.NoError(t, calendar.SetRate(1, MinRate))
	require.NoError(t, calendar.SetRate(30, MaxRate))

	tests := []struct {
		name string
		date int
		rate float64
		err  error
	}{
		{"rate too low", 10, 0.49, ErrInvalidRate},
		{"rate too high", 10, 1.51, ErrInvalidRate},
		{"rate not a number", 10, math.NaN(), ErrInvalidRate},
		{"rate infinite", 10, math.Inf(1), ErrInvalidRate},
		{"date zero", 0, 1.0, ErrInvalidDate},
		{"date after month", 31, 1.0, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := calendar.SetRate(tt.date, tt.rate)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Equal(t, 0.75, calendar.Rate(10))
	assert.Equal(t, MinRate, calendar.Rate(1))
	assert.Equal(t, MaxRate, calendar.Rate(30))
	assert.Equal(t, DefaultRate, calendar.Rate(31))

	rates := calendar.Rates()
	assert.Len(t, rates, LastDate)
	assert.Equal(t, 0.75, rates[10])
	assert.Equal(t, DefaultRate, rates[11])
}

func TestNewReservation_Validation(t *testing.T) {
	calendar := NewPriceCalendar()
	room, err := NewRoom("Room 1", 1000, Standard)
	require.NoError(t, err)

	tests := []struct {
		name     string
		guest    string
		checkIn  int
		checkOut int
		room     *Room
		err      error
	}{
		{"empty guest", " ", 1, 2, room, ErrEmptyName},
		{"no room", "Jack", 1, 2, nil, ErrNilRoom},
		{"check-in before month", "Jack", 0, 2, room, ErrInvalidDate},
		{"check-in after month", "Jack", 31, 32, room, ErrInvalidDate},
		{"same day", "Jack", 5, 5, room, ErrInvalidStay},
		{"reversed", "Jack", 6, 5, room, ErrInvalidStay},
		{"check-out too late", "Jack", 29, 32, room, ErrInvalidStay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReservation(tt.guest, tt.checkIn, tt.checkOut, "Room 1", calendar, tt.room)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	reservation, err := NewReservation("Jack", 30, 31, room.Name(), calendar, room)
	require.NoError(t, err)
	assert.Equal(t, "Jack", reservation.GuestName())
	assert.Equal(t, "Room 1", reservation.RoomName())
	assert.Equal(t, 1, reservation.Nights())
	assert.Equal(t, 1000.0, reservation.BasePrice())
	assert.Equal(t, 1000.0, reservation.TotalCost())
	assert.NotEqual(t, reservation.ID(), mustReservation(t, "Jack", 1, 2, 1000, calendar).ID())
}

func TestReservation_SnapshotCost(t *testing.T) {
	calendar := NewPriceCalendar()
	require.NoError(t, calendar.SetRate(3, 0.5))

	room, err := NewRoom("Room 1", 1000, Deluxe)
	require.NoError(t, err)

	reservation, err := NewReservation("Jack", 2, 5, room.Name(), calendar, room)
	require.NoError(t, err)
	assert.InDelta(t, 1200+600+1200, reservation.TotalCost(), 1e-9)

	require.NoError(t, calendar.SetRate(2, 1.5))
	require.NoError(t, calendar.SetRate(4, 1.5))
	room.SetPrice(5000)

	assert.InDelta(t, 3000.0, reservation.TotalCost(), 1e-9)
	assert.InDelta(t, 1200.0, reservation.BasePrice(), 1e-9)
}

func mustReservation(t *testing.T, guest string, checkIn, checkOut int, price float64, rates RateSource) *Reservation {
	t.Helper()

	room, err := NewRoom("Room", price, Standard)
	require.NoError(t, err)

	reservation, err := NewReservation(guest, checkIn, checkOut, room.Name(), rates, room)
	require.NoError(t, err)

	return reservation
}

func TestReservation_Discounts(t *testing.T) {
	calendar := NewPriceCalendar()

	tests := []struct {
		name     string
		code     string
		checkIn  int
		checkOut int
		eligible bool
		want     float64
	}{
		{"employee", boost.EmployeeCode, 1, 4, true, 2700},
		{"free night on five nights", boost.FreeNightCode, 1, 6, true, 4000},
		{"free night on four nights", boost.FreeNightCode, 1, 5, false, 4000},
		{"payday from the fifteenth", boost.PaydayCode, 15, 20, true, 4650},
		{"payday before the fifteenth", boost.PaydayCode, 10, 14, false, 4000},
		{"payday checking out on the fifteenth", boost.PaydayCode, 10, 15, false, 5000},
		{"payday over the thirtieth", boost.PaydayCode, 29, 31, true, 1860},
		{"unknown", "BLACK_FRIDAY", 1, 4, false, 3000},
		{"typo of employee code", "_WORK_HERE", 1, 4, false, 3000},
		{"empty", "", 1, 4, false, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := mustReservation(t, "Jack", tt.checkIn, tt.checkOut, 1000, calendar)
			original := reservation.TotalCost()

			assert.Equal(t, tt.eligible, reservation.IsValidDiscountCode(tt.code))
			assert.Equal(t, tt.eligible, reservation.CheckDiscountCode(tt.code) == nil)
			assert.InDelta(t, tt.want, reservation.CalculateDiscountedPrice(tt.code), 1e-9)
			assert.Equal(t, original, reservation.TotalCost())
		})
	}
}

func TestReservation_FreeNightUsesBookedPrice(t *testing.T) {
	calendar := NewPriceCalendar()
	require.NoError(t, calendar.SetRate(1, 1.5))

	reservation := mustReservation(t, "Jack", 1, 6, 1000, calendar)
	assert.Equal(t, 5500.0, reservation.TotalCost())
	assert.Equal(t, 4500.0, reservation.CalculateDiscountedPrice(boost.FreeNightCode))
}
