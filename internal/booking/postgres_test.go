package booking

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/agent"
)

func TestPostgresRecorderBook(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
			pgxmock.AnyArg(),
			"John Doe",
			"(555) 123-4567",
			"john.doe@email.com",
			"Annual checkup",
			"slot_0_9",
			"2024-01-15",
			"9:00",
			30,
			pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	r := NewPostgresRecorderWithDB(mock)
	id, err := r.Book(context.Background(), testPatient(), testSlot())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRecorderBookInsertError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(errors.New("connection refused"))

	r := NewPostgresRecorderWithDB(mock)
	_, err = r.Book(context.Background(), testPatient(), testSlot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking: insert")
}

func TestPostgresRecorderRejectsIncompletePatient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := NewPostgresRecorderWithDB(mock)
	_, err = r.Book(context.Background(), agent.PatientInfo{Email: "a@b.com"}, testSlot())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no insert should be attempted")
}
