package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "09:00", want: "09:00"},
		{name: "single digit hour is padded", input: "9:30", want: "09:30"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "surrounding spaces", input: " 10:15 ", want: "10:15"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "missing colon", input: "1000", wantErr: true},
		{name: "single digit minute", input: "10:5", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	ts := TimeString("10:30")

	assert.Equal(t, 630, ts.Minutes())

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), next)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:00").Validate())
	assert.Error(t, TimeString("8:00").Validate())
	assert.Error(t, TimeString("").Validate())
	assert.True(t, TimeString("").IsZero())
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 1, 7, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("07:05"), NewTimeString(moment))
}
