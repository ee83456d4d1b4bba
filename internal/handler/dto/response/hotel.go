package response

import (
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/usecase/queries"
)

type HotelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	HotelID   uuid.UUID `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"Rooms"`
}

func FromHotelView(rm *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Image:     rm.Image,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromHotelWithRoomsView(rm *queries.HotelWithRoomsView) *HotelWithRoomsResponse {
	rooms := make([]RoomResponse, len(rm.Rooms))
	for i, room := range rm.Rooms {
		rooms[i] = RoomResponse{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			HotelID:   room.HotelID,
			CreatedAt: room.CreatedAt,
			UpdatedAt: room.UpdatedAt,
		}
	}

	return &HotelWithRoomsResponse{
		HotelResponse: *FromHotelView(&rm.HotelView),
		Rooms:         rooms,
	}
}
