package availability

import "time"

// SlotGranularity is fixed: a booked slot consumes exactly one hour no matter
// how long the selected service actually runs. Callers relying on service
// duration must account for this themselves.
const SlotGranularity = time.Hour

// ResolveSlots computes the ordered bookable instants for one calendar date.
//
// Candidates are generated at SlotGranularity from rule.Start up to but not
// including rule.End, then filtered against time-off intervals and instants
// already occupied by bookings. Canceled bookings must not appear in booked;
// the repository query is responsible for excluding them.
//
// A nil or inactive rule yields no slots (the legitimate "closed" case), as
// does a zero-width rule. The result is ascending and recomputed per call.
func ResolveSlots(date time.Time, rule *Rule, timeOff []*TimeOff, booked []time.Time) []time.Time {
	if rule == nil || !rule.IsActive() {
		return []time.Time{}
	}

	day := truncateToDate(date)
	start := rule.Start().On(day)
	end := rule.End().On(day)

	slots := make([]time.Time, 0, int(end.Sub(start)/SlotGranularity))
	for t := start; t.Before(end); t = t.Add(SlotGranularity) {
		if isBlocked(t, timeOff) || isOccupied(t, booked) {
			continue
		}
		slots = append(slots, t)
	}
	return slots
}

func isBlocked(instant time.Time, timeOff []*TimeOff) bool {
	for _, off := range timeOff {
		if off.Blocks(instant) {
			return true
		}
	}
	return false
}

func isOccupied(instant time.Time, booked []time.Time) bool {
	for _, b := range booked {
		if b.Equal(instant) {
			return true
		}
	}
	return false
}
