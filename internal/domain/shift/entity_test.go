package shift

import (
	"strings"
	"testing"
	"time"

	"github.com/rosterhub/roster-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shiftTimes(t *testing.T, date string, start, end string) (time.Time, time.Time, time.Time) {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	st, err := time.Parse("2006-01-02 15:04", date+" "+start)
	require.NoError(t, err)
	en, err := time.Parse("2006-01-02 15:04", date+" "+end)
	require.NoError(t, err)
	return day, st, en
}

func TestNewShift(t *testing.T) {
	day, start, end := shiftTimes(t, "2025-01-06", "09:00", "17:30")

	s, err := New("emp-1", day, start, end, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.InDelta(t, 8.5, s.HoursWorked(), 1e-9)
	assert.False(t, s.IsDeleted())
}

func TestNewShiftValidation(t *testing.T) {
	day, start, end := shiftTimes(t, "2025-01-06", "09:00", "17:00")
	longNotes := strings.Repeat("x", 501)

	cases := []struct {
		name      string
		build     func() (Shift, error)
		wantField string
	}{
		{"empty employee id", func() (Shift, error) {
			return New("", day, start, end, nil)
		}, "employee_id"},
		{"zero date", func() (Shift, error) {
			return New("emp-1", time.Time{}, start, end, nil)
		}, "date"},
		{"start equals end", func() (Shift, error) {
			return New("emp-1", day, start, start, nil)
		}, "start_time"},
		{"start after end", func() (Shift, error) {
			return New("emp-1", day, end, start, nil)
		}, "start_time"},
		{"duration over 24 hours", func() (Shift, error) {
			return New("emp-1", day, start, start.Add(25*time.Hour), nil)
		}, "end_time"},
		{"notes too long", func() (Shift, error) {
			return New("emp-1", day, start, end, &longNotes)
		}, "notes"},
		{"notes of 501 multibyte characters", func() (Shift, error) {
			tooLong := strings.Repeat("é", 501)
			return New("emp-1", day, start, end, &tooLong)
		}, "notes"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.build()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.wantField)
		})
	}
}

// The limit counts characters, not bytes: 500 two-byte characters fit.
func TestShiftNotesLengthByCharacter(t *testing.T) {
	day, start, end := shiftTimes(t, "2025-01-06", "09:00", "17:00")
	notes := strings.Repeat("é", 500)

	_, err := New("emp-1", day, start, end, &notes)
	assert.NoError(t, err)
}

func TestShiftUpdate(t *testing.T) {
	day, start, end := shiftTimes(t, "2025-01-06", "09:00", "17:00")
	s, err := New("emp-1", day, start, end, nil)
	require.NoError(t, err)

	newDay, newStart, newEnd := shiftTimes(t, "2025-01-07", "12:00", "20:00")
	notes := "evening cover"
	require.NoError(t, s.Update(newDay, newStart, newEnd, &notes))

	assert.Equal(t, newDay, s.Date)
	assert.InDelta(t, 8.0, s.HoursWorked(), 1e-9)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "evening cover", *s.Notes)
}

func TestShiftUpdateRejectedLeavesEntityUntouched(t *testing.T) {
	day, start, end := shiftTimes(t, "2025-01-06", "09:00", "17:00")
	s, err := New("emp-1", day, start, end, nil)
	require.NoError(t, err)

	err = s.Update(day, end, start, nil)
	require.Error(t, err)
	assert.Equal(t, start, s.StartTime)
	assert.Equal(t, end, s.EndTime)
}
