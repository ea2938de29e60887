package availability

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("rule start time must not be after end time")

// Rule is the weekly operating-hours entry for one weekday. At most one rule
// exists per weekday; an inactive or absent rule means the salon is closed
// that day.
type Rule struct {
	weekday time.Weekday
	start   TimeOfDay
	end     TimeOfDay
	active  bool
}

func NewRule(weekday int, startTime, endTime string, active bool) (*Rule, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseTimeOfDay(endTime)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidWindow
	}

	return &Rule{
		weekday: time.Weekday(weekday),
		start:   start,
		end:     end,
		active:  active,
	}, nil
}

func (r *Rule) Weekday() time.Weekday { return r.weekday }
func (r *Rule) Start() TimeOfDay      { return r.start }
func (r *Rule) End() TimeOfDay        { return r.end }
func (r *Rule) IsActive() bool        { return r.active }
