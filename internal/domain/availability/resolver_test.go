//go:build unit

package availability_test

import (
	"testing"
	"time"

	"beautify-api/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nairobi = time.FixedZone("EAT", 3*60*60)

// monday 2026-03-02 in the business timezone
func testDate() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, nairobi)
}

func at(hour int) time.Time {
	d := testDate()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

func activeRule(t *testing.T, start, end string) *availability.Rule {
	t.Helper()
	rule, err := availability.NewRule(1, start, end, true)
	require.NoError(t, err)
	return rule
}

func TestResolveSlots(t *testing.T) {
	t.Run("full business day", func(t *testing.T) {
		slots := availability.ResolveSlots(testDate(), activeRule(t, "09:00", "18:00"), nil, nil)

		require.Len(t, slots, 9)
		assert.Equal(t, at(9), slots[0])
		assert.Equal(t, at(17), slots[len(slots)-1])
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, availability.SlotGranularity, slots[i].Sub(slots[i-1]))
		}
	})

	t.Run("nil rule means closed", func(t *testing.T) {
		slots := availability.ResolveSlots(testDate(), nil, nil, nil)
		assert.Empty(t, slots)
		assert.NotNil(t, slots)
	})

	t.Run("inactive rule means closed", func(t *testing.T) {
		rule, err := availability.NewRule(1, "09:00", "18:00", false)
		require.NoError(t, err)

		slots := availability.ResolveSlots(testDate(), rule, nil, nil)
		assert.Empty(t, slots)
	})

	t.Run("zero width rule", func(t *testing.T) {
		slots := availability.ResolveSlots(testDate(), activeRule(t, "09:00", "09:00"), nil, nil)
		assert.Empty(t, slots)
	})

	t.Run("end hour is exclusive", func(t *testing.T) {
		slots := availability.ResolveSlots(testDate(), activeRule(t, "16:00", "18:00"), nil, nil)
		assert.Equal(t, []time.Time{at(16), at(17)}, slots)
	})

	t.Run("partial time off removes covered slots", func(t *testing.T) {
		start, end := "12:00", "13:00"
		off, err := availability.NewTimeOff(uuid.New(), testDate(), &start, &end, "lunch")
		require.NoError(t, err)

		slots := availability.ResolveSlots(testDate(), activeRule(t, "09:00", "18:00"), []*availability.TimeOff{off}, nil)

		require.Len(t, slots, 8)
		assert.NotContains(t, slots, at(12))
		assert.Contains(t, slots, at(11))
		assert.Contains(t, slots, at(13))
	})

	t.Run("whole day off removes everything", func(t *testing.T) {
		off, err := availability.NewTimeOff(uuid.New(), testDate(), nil, nil, "public holiday")
		require.NoError(t, err)

		slots := availability.ResolveSlots(testDate(), activeRule(t, "09:00", "18:00"), []*availability.TimeOff{off}, nil)
		assert.Empty(t, slots)
	})

	t.Run("time off on another date is ignored", func(t *testing.T) {
		off, err := availability.NewTimeOff(uuid.New(), testDate().AddDate(0, 0, 1), nil, nil, "")
		require.NoError(t, err)

		slots := availability.ResolveSlots(testDate(), activeRule(t, "09:00", "18:00"), []*availability.TimeOff{off}, nil)
		assert.Len(t, slots, 9)
	})

	t.Run("booked instants are removed", func(t *testing.T) {
		slots := availability.ResolveSlots(
			testDate(),
			activeRule(t, "09:00", "18:00"),
			nil,
			[]time.Time{at(14), at(9)},
		)

		require.Len(t, slots, 7)
		assert.NotContains(t, slots, at(9))
		assert.NotContains(t, slots, at(14))
	})

	t.Run("bookings and time off combine", func(t *testing.T) {
		start, end := "10:00", "12:00"
		off, err := availability.NewTimeOff(uuid.New(), testDate(), &start, &end, "")
		require.NoError(t, err)

		slots := availability.ResolveSlots(
			testDate(),
			activeRule(t, "09:00", "13:00"),
			[]*availability.TimeOff{off},
			[]time.Time{at(12)},
		)

		assert.Equal(t, []time.Time{at(9)}, slots)
	})
}

func TestTimeOffBlocks(t *testing.T) {
	start, end := "10:00", "12:00"
	off, err := availability.NewTimeOff(uuid.New(), testDate(), &start, &end, "")
	require.NoError(t, err)

	assert.False(t, off.Blocks(at(9)))
	assert.True(t, off.Blocks(at(10)))
	assert.True(t, off.Blocks(at(11)))
	assert.False(t, off.Blocks(at(12)), "interval end is exclusive")
}

func TestNewTimeOffValidation(t *testing.T) {
	start, end := "10:00", "12:00"

	t.Run("lone start time", func(t *testing.T) {
		_, err := availability.NewTimeOff(uuid.New(), testDate(), &start, nil, "")
		assert.ErrorIs(t, err, availability.ErrInvalidInterval)
	})

	t.Run("lone end time", func(t *testing.T) {
		_, err := availability.NewTimeOff(uuid.New(), testDate(), nil, &end, "")
		assert.ErrorIs(t, err, availability.ErrInvalidInterval)
	})

	t.Run("inverted interval", func(t *testing.T) {
		_, err := availability.NewTimeOff(uuid.New(), testDate(), &end, &start, "")
		assert.ErrorIs(t, err, availability.ErrInvalidInterval)
	})

	t.Run("whole day flag", func(t *testing.T) {
		off, err := availability.NewTimeOff(uuid.New(), testDate(), nil, nil, "maintenance")
		require.NoError(t, err)
		assert.True(t, off.IsWholeDay())
		assert.Equal(t, "maintenance", off.Reason())
	})
}

func TestNewRuleValidation(t *testing.T) {
	t.Run("weekday out of range", func(t *testing.T) {
		_, err := availability.NewRule(7, "09:00", "18:00", true)
		assert.ErrorIs(t, err, availability.ErrInvalidWeekday)

		_, err = availability.NewRule(-1, "09:00", "18:00", true)
		assert.ErrorIs(t, err, availability.ErrInvalidWeekday)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, err := availability.NewRule(1, "18:00", "09:00", true)
		assert.ErrorIs(t, err, availability.ErrInvalidWindow)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := availability.NewRule(1, "9am", "18:00", true)
		assert.ErrorIs(t, err, availability.ErrInvalidTimeOfDay)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{in: "00:00", hour: 0, minute: 0, ok: true},
		{in: "09:30", hour: 9, minute: 30, ok: true},
		{in: "23:59", hour: 23, minute: 59, ok: true},
		{in: "24:00", ok: false},
		{in: "12:60", ok: false},
		{in: "9:00", ok: false},
		{in: "12-30", ok: false},
		{in: "09:0a", ok: false},
		{in: "09:5x", ok: false},
		{in: "1a:00", ok: false},
		{in: "+9:30", ok: false},
		{in: "", ok: false},
	}
	for _, c := range cases {
		t.Run("parse "+c.in, func(t *testing.T) {
			tod, err := availability.ParseTimeOfDay(c.in)
			if !c.ok {
				assert.ErrorIs(t, err, availability.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.hour, tod.Hour())
			assert.Equal(t, c.minute, tod.Minute())
		})
	}
}
