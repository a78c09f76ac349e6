package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/agent"
)

// execer is the pgx surface the recorder needs; satisfied by *pgxpool.Pool
// and by pgxmock in tests.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const insertBookingSQL = `
	INSERT INTO bookings (
		id, patient_name, patient_phone, patient_email, reason,
		slot_id, slot_date, slot_time, duration_minutes, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// PostgresRecorder persists bookings to the bookings table.
type PostgresRecorder struct {
	db execer
}

// NewPostgresRecorder creates a recorder backed by a pgx pool.
func NewPostgresRecorder(pool *pgxpool.Pool) *PostgresRecorder {
	if pool == nil {
		panic("booking: pgx pool required")
	}
	return &PostgresRecorder{db: pool}
}

// NewPostgresRecorderWithDB allows injecting mocks for tests.
func NewPostgresRecorderWithDB(db execer) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

// Book inserts a booking row and returns its identifier.
func (r *PostgresRecorder) Book(ctx context.Context, patient agent.PatientInfo, slot agent.Slot) (string, error) {
	if !patient.Complete() {
		return "", fmt.Errorf("booking: incomplete patient info")
	}

	id := uuid.New().String()
	_, err := r.db.Exec(ctx, insertBookingSQL,
		id,
		patient.Name,
		patient.Phone,
		patient.Email,
		patient.Reason,
		slot.ID,
		slot.Date,
		slot.Time,
		slot.Duration,
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("booking: insert: %w", err)
	}
	return id, nil
}
