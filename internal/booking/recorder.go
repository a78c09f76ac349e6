// Package booking persists finalized bookings and issues confirmation
// identifiers. Two recorders are provided: an in-memory one for development
// and tests, and a Postgres-backed one for production.
package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/agent"
)

// ErrNotFound is returned when a booking identifier is unknown.
var ErrNotFound = errors.New("booking: not found")

// Record is a persisted booking.
type Record struct {
	BookingID string            `json:"booking_id"`
	Patient   agent.PatientInfo `json:"patient"`
	Slot      agent.Slot        `json:"slot"`
	CreatedAt time.Time         `json:"created_at"`
}

// MemoryRecorder keeps bookings in memory and issues sequential BOOK<n> ids.
type MemoryRecorder struct {
	mu       sync.Mutex
	counter  int
	bookings map[string]Record
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{
		bookings: make(map[string]Record),
	}
}

// Book records the booking and returns its confirmation identifier.
func (r *MemoryRecorder) Book(ctx context.Context, patient agent.PatientInfo, slot agent.Slot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !patient.Complete() {
		return "", errors.New("booking: incomplete patient info")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	id := fmt.Sprintf("BOOK%d", r.counter)
	r.bookings[id] = Record{
		BookingID: id,
		Patient:   patient,
		Slot:      slot,
		CreatedAt: time.Now().UTC(),
	}
	return id, nil
}

// Get returns a previously recorded booking.
func (r *MemoryRecorder) Get(bookingID string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.bookings[bookingID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Len returns the number of recorded bookings.
func (r *MemoryRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}
