//go:build unit || e2e

package builder

import (
	"time"

	"event-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	Name      string
	Image     string
	Rooms     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewHotelBuilder() *HotelBuilder {
	now := time.Now()
	return &HotelBuilder{
		Name:      "Grand Plaza",
		Image:     "https://example.com/grand-plaza.jpg",
		Rooms:     []string{"101", "102"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:        uuid.New(),
		Name:      b.Name,
		Image:     b.Image,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *HotelBuilder) BuildViewWithRooms() *queries.HotelWithRoomsView {
	hotel := b.BuildView()
	rooms := make([]queries.RoomView, 0, len(b.Rooms))
	for _, name := range b.Rooms {
		rooms = append(rooms, queries.RoomView{
			ID:        uuid.New(),
			Name:      name,
			Capacity:  2,
			HotelID:   hotel.ID,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		})
	}
	return &queries.HotelWithRoomsView{
		HotelView: *hotel,
		Rooms:     rooms,
	}
}

// Fluent builder methods
func (b *HotelBuilder) WithName(name string) *HotelBuilder {
	b.Name = name
	return b
}

func (b *HotelBuilder) WithRooms(rooms ...string) *HotelBuilder {
	b.Rooms = rooms
	return b
}
