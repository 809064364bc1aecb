package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

const (
	DefaultBasePrice = 1299.0
	MaxRooms         = 50
)

type storageReader interface {
	GetHotel(ctx context.Context, name string) (*hotel.Hotel, error)
	ListHotels(ctx context.Context) ([]*hotel.Hotel, error)
	GetReceiptByIdempotencyKey(ctx context.Context) (*Receipt, error)
}

type storageWriter interface {
	SaveHotel(ctx context.Context, h *hotel.Hotel) error
	RenameHotel(ctx context.Context, oldName, newName string) error
	DeleteHotel(ctx context.Context, name string) error
	SaveReceipt(ctx context.Context, receipt *Receipt) error
}

type storage interface {
	storageReader
	storageWriter
}

// Manager is the only entry point that mutates hotels. The engine types are
// not synchronized, so every call runs under a single lock.
type Manager struct {
	mu      sync.Mutex
	l       *logger.Logger
	storage storage
}

func New(l *logger.Logger, storage storage) *Manager {
	//nolint:exhaustruct
	return &Manager{
		l:       l,
		storage: storage,
	}
}

func (m *Manager) getHotel(ctx context.Context, name string) (*hotel.Hotel, error) {
	h, err := m.storage.GetHotel(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get hotel %q: %w", name, err)
	}

	return h, nil
}

func (m *Manager) getRoom(ctx context.Context, hotelName, roomName string) (*hotel.Hotel, *hotel.Room, error) {
	h, err := m.getHotel(ctx, hotelName)
	if err != nil {
		return nil, nil, err
	}

	room, ok := h.RoomByName(roomName)
	if !ok {
		return nil, nil, fmt.Errorf("room %q in hotel %q: %w", roomName, hotelName, hotel.ErrRoomNotFound)
	}

	return h, room, nil
}

// CreateHotel falls back to DefaultBasePrice when no price or a price below
// hotel.MinBasePrice is given.
func (m *Manager) CreateHotel(ctx context.Context, input *CreateHotelInput) (*HotelDetails, error) {
	inputErr := newInputError()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		inputErr.addError("name", "hotel name cannot be empty")
	}

	if err := inputErr.orNil(); err != nil {
		return nil, err
	}

	basePrice := DefaultBasePrice
	if input.BasePrice != nil && *input.BasePrice >= hotel.MinBasePrice {
		basePrice = *input.BasePrice
	} else {
		m.l.LogInfo("Using default base price %v for hotel %q", DefaultBasePrice, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := hotel.New(name, basePrice)
	if err != nil {
		return nil, fmt.Errorf("build hotel: %w", err)
	}

	if err = m.storage.SaveHotel(ctx, h); err != nil {
		return nil, fmt.Errorf("save hotel %q: %w", name, err)
	}

	m.l.LogInfo("Hotel %q has been created with base price %v", name, basePrice)

	return detailHotel(h), nil
}

func (m *Manager) ListHotels(ctx context.Context) ([]HotelSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hotels, err := m.storage.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, HotelSummary{Name: h.Name(), Rooms: h.TotalRooms()})
	}

	return out, nil
}

func (m *Manager) HotelDetails(ctx context.Context, name string) (*HotelDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, name)
	if err != nil {
		return nil, err
	}

	return detailHotel(h), nil
}

func (m *Manager) RemoveHotel(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.DeleteHotel(ctx, name); err != nil {
		return fmt.Errorf("delete hotel %q: %w", name, err)
	}

	m.l.LogInfo("Hotel %q has been removed", name)

	return nil
}

func (m *Manager) RenameHotel(ctx context.Context, name, newName string) (*HotelDetails, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		inputErr := newInputError()
		inputErr.addError("name", "hotel name cannot be empty")

		return nil, inputErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, name)
	if err != nil {
		return nil, err
	}

	if err = m.storage.RenameHotel(ctx, name, newName); err != nil {
		return nil, fmt.Errorf("rename hotel %q to %q: %w", name, newName, err)
	}

	if err = h.SetName(newName); err != nil {
		return nil, fmt.Errorf("set hotel name: %w", err)
	}

	m.l.LogInfo("Hotel %q has been renamed to %q", name, newName)

	return detailHotel(h), nil
}

// ChangeBasePrice reprices every room when at least one room is still empty.
func (m *Manager) ChangeBasePrice(ctx context.Context, name string, basePrice float64) (*HotelDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, name)
	if err != nil {
		return nil, err
	}

	if err = h.SetBasePrice(basePrice); err != nil {
		return nil, fmt.Errorf("set base price of hotel %q: %w", name, err)
	}

	m.l.LogInfo("Base price of hotel %q has been updated to %v", name, basePrice)

	return detailHotel(h), nil
}

func (m *Manager) SetDateRate(ctx context.Context, name string, date int, rate float64) (*HotelDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, name)
	if err != nil {
		return nil, err
	}

	if err = h.SetRate(date, rate); err != nil {
		return nil, fmt.Errorf("set rate of hotel %q on %d: %w", name, date, err)
	}

	m.l.LogInfo("Price rate of hotel %q on date %d has been set to %v", name, date, rate)

	return detailHotel(h), nil
}

func (m *Manager) Availability(ctx context.Context, name string, date int) (*Availability, error) {
	if !hotel.ValidDate(date) {
		inputErr := newInputError()
		inputErr.addError("date", fmt.Sprintf("date must be within [%d, %d]", hotel.FirstDate, hotel.LastDate))

		return nil, inputErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, name)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Date:      date,
		Available: h.AvailableRooms(date),
		Booked:    h.BookedRooms(date),
	}, nil
}

func (a *AddRoomInput) validate() (hotel.Category, error) {
	inputErr := newInputError()

	if strings.TrimSpace(a.Name) == "" {
		inputErr.addError("name", "room name cannot be empty")
	}

	category, err := hotel.ParseCategory(a.Category)
	if err != nil {
		inputErr.addError("category", "room category must be Standard, Deluxe or Executive")
	}

	return category, inputErr.orNil()
}

func (m *Manager) AddRoom(ctx context.Context, input *AddRoomInput) (*RoomSummary, error) {
	category, err := input.validate()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, input.Hotel)
	if err != nil {
		return nil, err
	}

	if h.TotalRooms() >= MaxRooms {
		return nil, fmt.Errorf("hotel %q has %d rooms: %w", h.Name(), h.TotalRooms(), ErrTooManyRooms)
	}

	room, err := h.NewRoom(input.Name, category)
	if err != nil {
		return nil, fmt.Errorf("build room: %w", err)
	}

	if h.CheckDuplicateRoomName(room.Name()) {
		return nil, fmt.Errorf("room %q in hotel %q: %w", room.Name(), h.Name(), ErrDuplicateRoom)
	}

	h.AddRoom(room)

	m.l.LogInfo("Room %q (%v) has been added to hotel %q", room.Name(), category, h.Name())

	summary := summarizeRoom(room)

	return &summary, nil
}

func (m *Manager) RoomDetails(ctx context.Context, hotelName, roomName string) (*RoomDetails, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, room, err := m.getRoom(ctx, hotelName, roomName)
	if err != nil {
		return nil, err
	}

	reservations := room.Reservations()
	bookings := make([]ReservationView, 0, len(reservations))

	for _, reservation := range reservations {
		bookings = append(bookings, viewReservation(reservation))
	}

	return &RoomDetails{
		RoomSummary:    summarizeRoom(room),
		AvailableDates: room.AvailableDates(),
		Bookings:       bookings,
	}, nil
}

func (m *Manager) RemoveRoom(ctx context.Context, hotelName, roomName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, hotelName)
	if err != nil {
		return err
	}

	if err = h.RemoveRoomByName(roomName); err != nil {
		return fmt.Errorf("remove room %q from hotel %q: %w", roomName, hotelName, err)
	}

	m.l.LogInfo("Room %q has been removed from hotel %q", roomName, hotelName)

	return nil
}

func (m *Manager) FindReservations(ctx context.Context, hotelName, guest string) ([]ReservationView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, err := m.getHotel(ctx, hotelName)
	if err != nil {
		return nil, err
	}

	found := h.FindReservations(guest)
	if len(found) == 0 {
		return nil, fmt.Errorf("guest %q in hotel %q: %w", guest, hotelName, ErrReservationNotFound)
	}

	out := make([]ReservationView, 0, len(found))
	for _, reservation := range found {
		out = append(out, viewReservation(reservation))
	}

	return out, nil
}

// CancelReservation removes the earliest booked reservation of guest in the room.
func (m *Manager) CancelReservation(ctx context.Context, hotelName, roomName, guest string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, room, err := m.getRoom(ctx, hotelName, roomName)
	if err != nil {
		return err
	}

	if !room.RemoveReservation(guest) {
		return fmt.Errorf("guest %q in room %q: %w", guest, roomName, ErrReservationNotFound)
	}

	m.l.LogInfo("Reservation of %q in room %q of hotel %q has been cancelled", guest, roomName, hotelName)

	return nil
}

func (b *BookInput) validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(b.Hotel) == "" {
		inputErr.addError("hotel", "provide hotel")
	}

	if strings.TrimSpace(b.Room) == "" {
		inputErr.addError("room", "provide room")
	}

	if strings.TrimSpace(b.Guest) == "" {
		inputErr.addError("guest", "provide guest name")
	}

	if !hotel.ValidDate(b.CheckIn) {
		inputErr.addError("check_in", fmt.Sprintf("check_in must be within [%d, %d]", hotel.FirstDate, hotel.LastDate))
	}

	if b.CheckOut <= b.CheckIn || b.CheckOut > hotel.LastDate+1 {
		inputErr.addError("check_out", fmt.Sprintf("check_out must be after check_in and not later than %d", hotel.LastDate+1))
	}

	return inputErr.orNil()
}

func applyDiscount(reservation *hotel.Reservation, receipt *Receipt, code string) {
	receipt.Price = reservation.TotalCost()

	if code == "" {
		return
	}

	receipt.DiscountCode = code

	if err := reservation.CheckDiscountCode(code); err != nil {
		receipt.DiscountNote = err.Error()

		return
	}

	receipt.Price = reservation.CalculateDiscountedPrice(code)
	receipt.DiscountApplied = true
}

// Book reserves a room. With an idempotency key in ctx a repeated call returns
// the receipt of the first one instead of booking again.
func (m *Manager) Book(ctx context.Context, input *BookInput) (*Receipt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, withKey := IdempotencyKeyFromContext(ctx)
	if withKey {
		receipt, err := m.storage.GetReceiptByIdempotencyKey(ctx)
		if err != nil && !errors.Is(err, ErrRecordNotFound) {
			return nil, fmt.Errorf("get receipt by idempotency key: %w", err)
		}

		if err == nil {
			return receipt, nil
		}
	}

	h, room, err := m.getRoom(ctx, input.Hotel, input.Room)
	if err != nil {
		return nil, err
	}

	reservation, err := hotel.NewReservation(input.Guest, input.CheckIn, input.CheckOut, room.Name(), h.Calendar(), room)
	if err != nil {
		return nil, fmt.Errorf("build reservation: %w", err)
	}

	receipt := &Receipt{
		ID:            uuid.New(),
		ReservationID: reservation.ID(),
		Hotel:         h.Name(),
		Room:          room.Name(),
		Guest:         reservation.GuestName(),
		CheckIn:       reservation.CheckIn(),
		CheckOut:      reservation.CheckOut(),
		NightlyPrice:  reservation.BasePrice(),
		TotalCost:     reservation.TotalCost(),
		CreatedAt:     time.Now().UTC(),
	}

	applyDiscount(reservation, receipt, strings.TrimSpace(input.DiscountCode))

	if err = room.AddReservation(reservation); err != nil {
		return nil, fmt.Errorf("add reservation: %w", err)
	}

	if withKey {
		if err = m.storage.SaveReceipt(ctx, receipt); err != nil {
			room.RemoveReservationByID(reservation.ID())

			return nil, fmt.Errorf("save receipt: %w", err)
		}
	}

	m.l.LogInfo(
		"Room %q of hotel %q has been booked for %q on [%d, %d), price %v",
		room.Name(),
		h.Name(),
		reservation.GuestName(),
		reservation.CheckIn(),
		reservation.CheckOut(),
		receipt.Price,
	)

	return receipt, nil
}
