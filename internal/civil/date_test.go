package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

func TestParseYmd_LocalMidnight(t *testing.T) {
	got, err := ParseYmd("2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, time.Local, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, "2025-03-10", ToYmd(got))
}

func TestParseYmd_Malformed(t *testing.T) {
	for _, in := range []string{"", "2025-3-10", "2025-02-30", "10.03.2025"} {
		_, err := ParseYmd(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestEachDateInclusive(t *testing.T) {
	got := EachDateInclusive("2024-02-27", "2024-03-02")
	assert.Equal(t, []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, got)

	assert.Equal(t, []string{"2025-01-01"}, EachDateInclusive("2025-01-01", "2025-01-01"))
	assert.Empty(t, EachDateInclusive("2025-01-02", "2025-01-01"))
}

func TestEachDateInclusive_AcrossDST(t *testing.T) {
	// 2025-03-09 переход на летнее время в США; даты не должны пропускаться или повторяться
	got := EachDateInclusive("2025-03-08", "2025-03-10")
	assert.Equal(t, []string{"2025-03-08", "2025-03-09", "2025-03-10"}, got)
}

func TestWeekdayCodeOf(t *testing.T) {
	assert.Equal(t, model.Monday, WeekdayCodeOf("2025-03-10"))
	assert.Equal(t, model.Sunday, WeekdayCodeOf("2025-03-16"))
	assert.Equal(t, model.WeekdayCode(""), WeekdayCodeOf("nope"))
}

func TestDayIndex(t *testing.T) {
	epoch, err := DayIndex("1970-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), epoch)

	before, err := DayIndex("1969-12-31")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), before)

	diff, err := DaysBetween("2025-03-08", "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, int64(3), diff)

	_, err = DayIndex("bad")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSplitDateTime(t *testing.T) {
	ymd, hhmm, err := SplitDateTime("2025-04-01 13:45")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", ymd)
	assert.Equal(t, "13:45", hhmm)

	_, _, err = SplitDateTime("2025-04-01T13:45")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "2025-03-10", Today(now, time.UTC))
	assert.Equal(t, "2025-03-11", Today(now, tokyo))
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-02-27", 3)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got)

	got, err = AddDays("2025-01-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", got)

	_, err = AddDays("nope", 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
