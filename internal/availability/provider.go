// Package availability produces candidate appointment slots for the dialogue
// engine. The default provider synthesizes a fixed daily schedule; a real
// calendar integration would sit behind the same agent.SlotProvider contract.
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/adeshkhole/Medical-Appointment-Scheduling-Agent/internal/agent"
)

// defaultHours are the clinic's daily start hours for bookable slots.
var defaultHours = []int{9, 11, 14, 16}

// ScheduleProvider generates slots on a fixed daily grid starting today.
type ScheduleProvider struct {
	now   func() time.Time
	hours []int
}

// Option configures a ScheduleProvider.
type Option func(*ScheduleProvider)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(p *ScheduleProvider) { p.now = now }
}

// WithHours overrides the daily slot hours.
func WithHours(hours []int) Option {
	return func(p *ScheduleProvider) {
		if len(hours) > 0 {
			p.hours = hours
		}
	}
}

// NewScheduleProvider creates a provider with the clinic's default schedule.
func NewScheduleProvider(opts ...Option) *ScheduleProvider {
	p := &ScheduleProvider{
		now:   time.Now,
		hours: defaultHours,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ListSlots returns slots for the next daysAhead days, ordered by day then
// hour. Slot duration follows the appointment type.
func (p *ScheduleProvider) ListSlots(ctx context.Context, daysAhead int, apptType agent.AppointmentType) ([]agent.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if daysAhead <= 0 {
		daysAhead = 1
	}

	duration := agent.DurationFor(apptType)
	now := p.now()
	slots := make([]agent.Slot, 0, daysAhead*len(p.hours))
	for day := 0; day < daysAhead; day++ {
		date := now.AddDate(0, 0, day).Format("2006-01-02")
		for _, hour := range p.hours {
			slots = append(slots, agent.Slot{
				ID:       fmt.Sprintf("slot_%d_%d", day, hour),
				Date:     date,
				Time:     fmt.Sprintf("%d:00", hour),
				Duration: duration,
			})
		}
	}
	return slots, nil
}
