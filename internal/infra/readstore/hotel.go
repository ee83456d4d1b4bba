package readstore

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/infra"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
	"event-booking-api/internal/pkg/pgconv"
	"event-booking-api/internal/usecase/queries"
)

type HotelReadQueries interface {
	ListHotels(ctx context.Context, db sqlc.DBTX) ([]sqlc.Hotels, error)
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	ListRoomsByHotelID(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Rooms, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) FindAll(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := r.queries.ListHotels(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	result := make([]*queries.HotelView, len(rows))
	for i, row := range rows {
		result[i] = toHotelView(row)
	}

	return result, nil
}

func (r *HotelReadStore) FindByIDWithRooms(ctx context.Context, id uuid.UUID) (*queries.HotelWithRoomsView, error) {
	hotelRow, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	roomRows, err := r.queries.ListRoomsByHotelID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	rooms := make([]queries.RoomView, len(roomRows))
	for i, row := range roomRows {
		rooms[i] = queries.RoomView{
			ID:        row.ID,
			Name:      row.Name,
			Capacity:  row.Capacity,
			HotelID:   row.HotelID,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}

	return &queries.HotelWithRoomsView{
		HotelView: *toHotelView(hotelRow),
		Rooms:     rooms,
	}, nil
}

func toHotelView(row sqlc.Hotels) *queries.HotelView {
	return &queries.HotelView{
		ID:        row.ID,
		Name:      row.Name,
		Image:     row.Image,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
