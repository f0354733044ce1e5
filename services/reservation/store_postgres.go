package reservation

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const migrationLockID int64 = 731902214

//go:embed migrations/*.sql
var migrationFiles embed.FS

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(c context.Context, databaseURL string) (*PostgresStore, func(), error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error parsing database url: %s", err)
	}

	pool, err := pgxpool.NewWithConfig(c, cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating database pool: %s", err)
	}

	err = pool.Ping(c)
	if err != nil {
		pool.Close()
		return nil, func() {}, fmt.Errorf("error connecting to database: %s", err)
	}

	err = migrate(c, pool)
	if err != nil {
		pool.Close()
		return nil, func() {}, err
	}

	return &PostgresStore{pool: pool}, pool.Close, nil
}

func (s *PostgresStore) CreateIfAbsent(c context.Context, r Reservation) (bool, error) {
	const stmt = `
INSERT INTO reservations (user_id, vehicle_id, vehicle_name, price, amount_total, currency, stripe_session_id, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (stripe_session_id) DO NOTHING`

	tag, err := s.pool.Exec(c, stmt, r.UserID, r.VehicleID, r.VehicleName, r.Price, r.AmountTotal, r.Currency,
		r.StripeSessionID, r.Status, r.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("error inserting reservation %s: %w", r.StripeSessionID, err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *PostgresStore) FindBySessionID(c context.Context, sessionID string) (Reservation, bool, error) {
	const query = `
SELECT user_id, vehicle_id, vehicle_name, price::float8, amount_total, currency, stripe_session_id, status, created_at
FROM reservations
WHERE stripe_session_id = $1`

	r, err := scanReservation(s.pool.QueryRow(c, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Reservation{}, false, nil
		}
		return Reservation{}, false, fmt.Errorf("error fetching reservation %s: %w", sessionID, err)
	}

	return r, true, nil
}

func (s *PostgresStore) ListByUser(c context.Context, userID string) ([]Reservation, error) {
	const query = `
SELECT user_id, vehicle_id, vehicle_name, price::float8, amount_total, currency, stripe_session_id, status, created_at
FROM reservations
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := s.pool.Query(c, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations of %s: %w", userID, err)
	}
	defer rows.Close()

	result := []Reservation{}
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		result = append(result, r)
	}

	return result, rows.Err()
}

func scanReservation(row pgx.Row) (Reservation, error) {
	r := Reservation{}
	err := row.Scan(&r.UserID, &r.VehicleID, &r.VehicleName, &r.Price, &r.AmountTotal, &r.Currency,
		&r.StripeSessionID, &r.Status, &r.CreatedAt)
	return r, err
}

// migrate applies the embedded migrations in filename order, serialized across instances by an advisory lock.
func migrate(c context.Context, pool *pgxpool.Pool) error {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("error reading migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	conn, err := pool.Acquire(c)
	if err != nil {
		return fmt.Errorf("error acquiring connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(c, `SELECT pg_advisory_lock($1)`, migrationLockID)
	if err != nil {
		return fmt.Errorf("error acquiring migration lock: %w", err)
	}
	defer func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, migrationLockID)
	}()

	_, err = conn.Exec(c, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	name TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`)
	if err != nil {
		return fmt.Errorf("error creating schema_migrations: %w", err)
	}

	for _, name := range names {
		applied := false
		err = conn.QueryRow(c, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&applied)
		if err != nil {
			return fmt.Errorf("error checking migration %s: %w", name, err)
		}
		if applied {
			continue
		}

		sqlBytes, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("error reading migration %s: %w", name, err)
		}
		sql := strings.TrimSpace(string(sqlBytes))
		if sql == "" {
			continue
		}

		_, err = conn.Exec(c, sql)
		if err != nil {
			return fmt.Errorf("error executing migration %s: %w", name, err)
		}
		_, err = conn.Exec(c, `INSERT INTO schema_migrations (name) VALUES ($1)`, name)
		if err != nil {
			return fmt.Errorf("error recording migration %s: %w", name, err)
		}
	}

	return nil
}
