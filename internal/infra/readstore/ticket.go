package readstore

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/infra"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
	"event-booking-api/internal/pkg/pgconv"
	"event-booking-api/internal/usecase/queries"
)

type TicketReadQueries interface {
	ListTicketTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.TicketTypes, error)
	GetTicketTypeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.TicketTypes, error)
	GetTicketByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetTicketByIDRow, error)
	GetTicketByEnrollmentID(ctx context.Context, db sqlc.DBTX, enrollmentID uuid.UUID) (sqlc.GetTicketByEnrollmentIDRow, error)
	GetTicketWithTypeAndOwner(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetTicketWithTypeAndOwnerRow, error)
}

type TicketReadStore struct {
	queries TicketReadQueries
	db      sqlc.DBTX
}

func NewTicketReadStore(queries TicketReadQueries, db sqlc.DBTX) *TicketReadStore {
	return &TicketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TicketReadStore) FindTypes(ctx context.Context) ([]*queries.TicketTypeView, error) {
	rows, err := r.queries.ListTicketTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ticket types", err)
	}

	result := make([]*queries.TicketTypeView, len(rows))
	for i, row := range rows {
		result[i] = &queries.TicketTypeView{
			ID:            row.ID,
			Name:          row.Name,
			Price:         row.Price,
			IsRemote:      row.IsRemote,
			IncludesHotel: row.IncludesHotel,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}

	return result, nil
}

func (r *TicketReadStore) FindTypeByID(ctx context.Context, typeID uuid.UUID) (*queries.TicketTypeView, error) {
	row, err := r.queries.GetTicketTypeByID(ctx, r.db, typeID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket type by ID", err)
	}

	return &queries.TicketTypeView{
		ID:            row.ID,
		Name:          row.Name,
		Price:         row.Price,
		IsRemote:      row.IsRemote,
		IncludesHotel: row.IncludesHotel,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *TicketReadStore) FindByID(ctx context.Context, ticketID uuid.UUID) (*queries.TicketView, error) {
	row, err := r.queries.GetTicketByID(ctx, r.db, ticketID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket by ID", err)
	}

	return &queries.TicketView{
		ID:           row.ID,
		Status:       row.Status,
		EnrollmentID: row.EnrollmentID,
		TicketTypeID: row.TicketTypeID,
		Type: queries.TicketTypeView{
			ID:            row.TicketTypeID,
			Name:          row.TypeName,
			Price:         row.TypePrice,
			IsRemote:      row.TypeIsRemote,
			IncludesHotel: row.TypeIncludesHotel,
			CreatedAt:     pgconv.TimeFromPgtype(row.TypeCreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.TypeUpdatedAt),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *TicketReadStore) FindByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (*queries.TicketView, error) {
	row, err := r.queries.GetTicketByEnrollmentID(ctx, r.db, enrollmentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket by enrollment ID", err)
	}

	return &queries.TicketView{
		ID:           row.ID,
		Status:       row.Status,
		EnrollmentID: row.EnrollmentID,
		TicketTypeID: row.TicketTypeID,
		Type: queries.TicketTypeView{
			ID:            row.TicketTypeID,
			Name:          row.TypeName,
			Price:         row.TypePrice,
			IsRemote:      row.TypeIsRemote,
			IncludesHotel: row.TypeIncludesHotel,
			CreatedAt:     pgconv.TimeFromPgtype(row.TypeCreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.TypeUpdatedAt),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *TicketReadStore) FindOwnedByID(ctx context.Context, ticketID uuid.UUID) (*queries.OwnedTicketView, error) {
	row, err := r.queries.GetTicketWithTypeAndOwner(ctx, r.db, ticketID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket with owner", err)
	}

	return &queries.OwnedTicketView{
		ID:           row.ID,
		EnrollmentID: row.EnrollmentID,
		OwnerUserID:  row.OwnerUserID,
		Status:       row.Status,
		TicketTypeID: row.TicketTypeID,
		TypeName:     row.TypeName,
		Price:        row.TypePrice,
	}, nil
}
