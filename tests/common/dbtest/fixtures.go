//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestEnrollment(t *testing.T, db DBLike, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	enrollmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO enrollments (id, user_id, name) VALUES ($1, $2, $3)",
		enrollmentID, userID, name)
	require.NoError(t, err)

	return enrollmentID
}

func CreateTestTicketType(t *testing.T, db DBLike, name string, price int32, isRemote, includesHotel bool) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO ticket_types (id, name, price, is_remote, includes_hotel) VALUES ($1, $2, $3, $4, $5)",
		typeID, name, price, isRemote, includesHotel)
	require.NoError(t, err)

	return typeID
}

func CreateTestTicket(t *testing.T, db DBLike, enrollmentID, ticketTypeID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	ticketID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO tickets (id, ticket_type_id, enrollment_id, status) VALUES ($1, $2, $3, $4)",
		ticketID, ticketTypeID, enrollmentID, status)
	require.NoError(t, err)

	return ticketID
}

func CreateTestHotel(t *testing.T, db DBLike, name string, rooms ...string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO hotels (id, name, image) VALUES ($1, $2, $3)",
		hotelID, name, "https://example.com/"+name+".jpg")
	require.NoError(t, err)

	for _, room := range rooms {
		_, err := db.Exec(ctx, "INSERT INTO rooms (id, name, capacity, hotel_id) VALUES ($1, $2, 2, $3)",
			uuid.New(), room, hotelID)
		require.NoError(t, err)
	}

	return hotelID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO ticket_types (id, name, price, is_remote, includes_hotel) VALUES
		    (gen_random_uuid(), 'Remote Pass', 100, true, false),
		    (gen_random_uuid(), 'Conference Pass', 300, false, false),
		    (gen_random_uuid(), 'Full Pass', 500, false, true);
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		WITH hotel AS (
		    INSERT INTO hotels (id, name, image)
		    VALUES (gen_random_uuid(), 'Grand Plaza', 'https://example.com/grand-plaza.jpg')
		    RETURNING id
		)
		INSERT INTO rooms (id, name, capacity, hotel_id)
		SELECT gen_random_uuid(), r.name, 2, hotel.id
		FROM hotel, (VALUES ('101'), ('102')) AS r(name);
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
