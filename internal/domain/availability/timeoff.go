package availability

import (
	"time"

	"github.com/google/uuid"
)

// TimeOff blocks slots on one date. When both times are absent the whole day
// is blocked. Created and deleted by the administrator, never mutated.
type TimeOff struct {
	id     uuid.UUID
	date   time.Time // civil date, midnight in the business timezone
	start  *TimeOfDay
	end    *TimeOfDay
	reason string
}

func NewTimeOff(id uuid.UUID, date time.Time, startTime, endTime *string, reason string) (*TimeOff, error) {
	// Half-open intervals need both bounds; a lone start or end is a
	// configuration error, as is start >= end.
	if (startTime == nil) != (endTime == nil) {
		return nil, ErrInvalidInterval
	}

	t := &TimeOff{id: id, date: truncateToDate(date), reason: reason}

	if startTime != nil {
		start, err := ParseTimeOfDay(*startTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseTimeOfDay(*endTime)
		if err != nil {
			return nil, err
		}
		if !start.Before(end) {
			return nil, ErrInvalidInterval
		}
		t.start = &start
		t.end = &end
	}

	return t, nil
}

func (t *TimeOff) ID() uuid.UUID   { return t.id }
func (t *TimeOff) Date() time.Time { return t.date }
func (t *TimeOff) Reason() string  { return t.reason }

func (t *TimeOff) IsWholeDay() bool {
	return t.start == nil
}

func (t *TimeOff) StartTime() *TimeOfDay { return t.start }
func (t *TimeOff) EndTime() *TimeOfDay   { return t.end }

// Blocks reports whether the candidate instant falls inside this interval.
// Instants on other dates are never blocked.
func (t *TimeOff) Blocks(instant time.Time) bool {
	if !sameDate(t.date, instant) {
		return false
	}
	if t.IsWholeDay() {
		return true
	}
	start := t.start.On(instant)
	end := t.end.On(instant)
	return !instant.Before(start) && instant.Before(end)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
