package migration

import (
	"context"
	"fmt"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

type storage interface {
	SaveHotel(ctx context.Context, h *hotel.Hotel) error
}

type Seed struct {
	HotelName string
	BasePrice float64
}

// inventory is the default room layout of a new demo hotel: rooms 1-7 are
// Standard, 8-9 Deluxe and 10 Executive.
func inventory() []hotel.Category {
	layout := make([]hotel.Category, 0, 10) //nolint:gomnd

	for i := 1; i <= 10; i++ {
		switch {
		case i <= 7:
			layout = append(layout, hotel.Standard)
		case i < 10:
			layout = append(layout, hotel.Deluxe)
		default:
			layout = append(layout, hotel.Executive)
		}
	}

	return layout
}

func Up(ctx context.Context, l *logger.Logger, storage storage, seed Seed) error {
	h, err := hotel.New(seed.HotelName, seed.BasePrice)
	if err != nil {
		return fmt.Errorf("build demo hotel: %w", err)
	}

	for idx, category := range inventory() {
		room, err := h.NewRoom(fmt.Sprintf("Room %d", idx+1), category)
		if err != nil {
			return fmt.Errorf("build room %d: %w", idx+1, err)
		}

		h.AddRoom(room)
	}

	if err = storage.SaveHotel(ctx, h); err != nil {
		return fmt.Errorf("save demo hotel: %w", err)
	}

	l.LogInfo("Demo hotel %q has been seeded with %d rooms", h.Name(), h.TotalRooms())

	return nil
}
