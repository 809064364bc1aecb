package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/avstrong/hotel/internal/hotel"
)

type CreateHotelInput struct {
	Name      string   `json:"name"`
	BasePrice *float64 `json:"base_price,omitempty"`
}

type AddRoomInput struct {
	Hotel    string `json:"hotel"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type BookInput struct {
	Hotel        string `json:"hotel"`
	Room         string `json:"room"`
	Guest        string `json:"guest"`
	CheckIn      int    `json:"check_in"`
	CheckOut     int    `json:"check_out"`
	DiscountCode string `json:"discount_code,omitempty"`
}

type Receipt struct {
	ID              uuid.UUID `json:"id"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	Hotel           string    `json:"hotel"`
	Room            string    `json:"room"`
	Guest           string    `json:"guest"`
	CheckIn         int       `json:"check_in"`
	CheckOut        int       `json:"check_out"`
	NightlyPrice    float64   `json:"nightly_price"`
	TotalCost       float64   `json:"total_cost"`
	Price           float64   `json:"price"`
	DiscountCode    string    `json:"discount_code,omitempty"`
	DiscountApplied bool      `json:"discount_applied"`
	DiscountNote    string    `json:"discount_note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type HotelSummary struct {
	Name  string `json:"name"`
	Rooms int    `json:"rooms"`
}

type HotelDetails struct {
	Name              string          `json:"name"`
	BasePrice         float64         `json:"base_price"`
	EstimatedEarnings float64         `json:"estimated_earnings"`
	Rooms             []RoomSummary   `json:"rooms"`
	Rates             map[int]float64 `json:"rates"`
}

type RoomSummary struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Earnings     float64 `json:"earnings"`
	Reservations int     `json:"reservations"`
}

type RoomDetails struct {
	RoomSummary
	AvailableDates []int             `json:"available_dates"`
	Bookings       []ReservationView `json:"bookings"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	Guest     string    `json:"guest"`
	Room      string    `json:"room"`
	CheckIn   int       `json:"check_in"`
	CheckOut  int       `json:"check_out"`
	BasePrice float64   `json:"base_price"`
	TotalCost float64   `json:"total_cost"`
}

type Availability struct {
	Date      int `json:"date"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

func summarizeRoom(room *hotel.Room) RoomSummary {
	return RoomSummary{
		Name:         room.Name(),
		Category:     room.Category().String(),
		Price:        room.Price(),
		Earnings:     room.Earnings(),
		Reservations: len(room.Reservations()),
	}
}

func viewReservation(r *hotel.Reservation) ReservationView {
	return ReservationView{
		ID:        r.ID(),
		Guest:     r.GuestName(),
		Room:      r.RoomName(),
		CheckIn:   r.CheckIn(),
		CheckOut:  r.CheckOut(),
		BasePrice: r.BasePrice(),
		TotalCost: r.TotalCost(),
	}
}

func detailHotel(h *hotel.Hotel) *HotelDetails {
	rooms := make([]RoomSummary, 0, h.TotalRooms())
	for _, room := range h.Rooms() {
		rooms = append(rooms, summarizeRoom(room))
	}

	return &HotelDetails{
		Name:              h.Name(),
		BasePrice:         h.BasePrice(),
		EstimatedEarnings: h.EstimatedEarnings(),
		Rooms:             rooms,
		Rates:             h.Calendar().Rates(),
	}
}
