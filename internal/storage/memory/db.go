package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avstrong/hotel/internal/booking"
	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB keeps hotels in registration order and booking receipts by idempotency key.
// Nothing survives a restart.
type DB struct {
	mu                     sync.Mutex
	l                      *logger.Logger
	hotels                 map[string]*hotel.Hotel
	order                  []string
	receiptIdempotencyKeys map[string]*booking.Receipt
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:                      conf.L,
		hotels:                 make(map[string]*hotel.Hotel),
		receiptIdempotencyKeys: make(map[string]*booking.Receipt),
	}
}

func (db *DB) SaveHotel(_ context.Context, h *hotel.Hotel) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.hotels[h.Name()]; exists {
		return fmt.Errorf("hotel %q: %w", h.Name(), booking.ErrHotelExists)
	}

	db.hotels[h.Name()] = h
	db.order = append(db.order, h.Name())

	return nil
}

func (db *DB) GetHotel(_ context.Context, name string) (*hotel.Hotel, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	h, exists := db.hotels[name]
	if !exists {
		return nil, booking.ErrRecordNotFound
	}

	return h, nil
}

func (db *DB) ListHotels(_ context.Context) ([]*hotel.Hotel, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]*hotel.Hotel, 0, len(db.order))
	for _, name := range db.order {
		out = append(out, db.hotels[name])
	}

	return out, nil
}

func (db *DB) RenameHotel(_ context.Context, oldName, newName string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	h, exists := db.hotels[oldName]
	if !exists {
		return booking.ErrRecordNotFound
	}

	if oldName == newName {
		return nil
	}

	if _, taken := db.hotels[newName]; taken {
		return fmt.Errorf("hotel %q: %w", newName, booking.ErrHotelExists)
	}

	delete(db.hotels, oldName)
	db.hotels[newName] = h

	for idx, name := range db.order {
		if name == oldName {
			db.order[idx] = newName
		}
	}

	return nil
}

func (db *DB) DeleteHotel(_ context.Context, name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.hotels[name]; !exists {
		return booking.ErrRecordNotFound
	}

	delete(db.hotels, name)

	for idx, candidate := range db.order {
		if candidate == name {
			db.order = append(db.order[:idx], db.order[idx+1:]...)

			break
		}
	}

	return nil
}

func (db *DB) SaveReceipt(ctx context.Context, receipt *booking.Receipt) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	key, ok := booking.IdempotencyKeyFromContext(ctx)
	if !ok {
		return booking.ErrIdempotencyKey
	}

	if _, exists := db.receiptIdempotencyKeys[key]; exists {
		db.l.LogInfo("Receipt for idempotency key %q already stored, keeping the first one", key)

		return nil
	}

	db.receiptIdempotencyKeys[key] = receipt

	return nil
}

func (db *DB) GetReceiptByIdempotencyKey(ctx context.Context) (*booking.Receipt, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	key, ok := booking.IdempotencyKeyFromContext(ctx)
	if !ok {
		return nil, booking.ErrIdempotencyKey
	}

	receipt, exists := db.receiptIdempotencyKeys[key]
	if exists {
		return receipt, nil
	}

	return nil, booking.ErrRecordNotFound
}
