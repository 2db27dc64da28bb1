package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHhMmToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"17:30", 1050, true},
		{"23:59", 1439, true},
		{"09:00:00", 540, true},
		{"9:5", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"", 0, false},
		{"noon", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseHhMmToMinutes(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMinutesFormatting(t *testing.T) {
	assert.Equal(t, "09:05", MinutesToHhMm(545))
	assert.Equal(t, "16:00", MinutesToHhMm(960))

	assert.Equal(t, "12:00 AM", MinutesToDisplay(0))
	assert.Equal(t, "9:05 AM", MinutesToDisplay(545))
	assert.Equal(t, "12:30 PM", MinutesToDisplay(750))
	assert.Equal(t, "4:00 PM", MinutesToDisplay(960))
}
