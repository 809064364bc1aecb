package migration

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveHotel(ctx context.Context, h *hotel.Hotel) error {
	args := m.Called(ctx, h)

	return args.Error(0)
}

func TestUp_SeedsInventory(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStorage)

	var saved *hotel.Hotel

	storage.On("SaveHotel", ctx, mock.AnythingOfType("*hotel.Hotel")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*hotel.Hotel) }).
		Return(nil)

	err := Up(ctx, logger.New(io.Discard, "test"), storage, Seed{HotelName: "Grand Budapest", BasePrice: 1000})
	require.NoError(t, err)
	storage.AssertExpectations(t)

	require.NotNil(t, saved)
	assert.Equal(t, "Grand Budapest", saved.Name())
	assert.Equal(t, 10, saved.TotalRooms())

	for _, name := range []string{"Room 1", "Room 7", "Room 8 (DX)", "Room 9 (DX)", "Room 10 (EC)"} {
		assert.True(t, saved.CheckDuplicateRoomName(name), name)
	}

	executive, ok := saved.RoomByName("Room 10 (EC)")
	require.True(t, ok)
	assert.InDelta(t, 1350.0, executive.Price(), 1e-9)
}

func TestUp_Errors(t *testing.T) {
	ctx := context.Background()
	l := logger.New(io.Discard, "test")

	err := Up(ctx, l, new(MockStorage), Seed{HotelName: "Grand Budapest", BasePrice: 10})
	assert.ErrorIs(t, err, hotel.ErrInvalidBasePrice)

	storage := new(MockStorage)
	storage.On("SaveHotel", ctx, mock.Anything).Return(assert.AnError)

	err = Up(ctx, l, storage, Seed{HotelName: "Grand Budapest", BasePrice: 1000})
	assert.ErrorIs(t, err, assert.AnError)
}
