package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	artistStr   = "3f1c2a9e-5b7d-4c1e-9a2f-0d8e6b4c2a11"
	locationStr = "9b2e4d6f-1a3c-4e5b-8d7f-2c4a6e8b0d22"
)

func TestParseDatesArgs(t *testing.T) {
	args, err := ParseDatesArgs("/dates " + artistStr + " " + locationStr + " 2025-03-10 2025-03-20")
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse(artistStr), args.ArtistID)
	assert.Equal(t, uuid.MustParse(locationStr), args.LocationID)
	assert.Equal(t, "2025-03-10", args.From)
	assert.Equal(t, "2025-03-20", args.To)
}

func TestParseDatesArgs_MainStudioAndDefaults(t *testing.T) {
	args, err := ParseDatesArgs("/dates@tattoo_bot " + artistStr + " -")
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, args.LocationID)

	from, to, err := args.Window("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", from)
	assert.Equal(t, "2025-04-06", to)
}

func TestParseDatesArgs_Errors(t *testing.T) {
	cases := []string{
		"/dates",
		"/dates " + artistStr,
		"/dates not-a-uuid -",
		"/dates " + artistStr + " - 2025-13-01",
		"/dates " + artistStr + " - 2025-03-10 2025-03-11 extra",
	}
	for _, text := range cases {
		_, err := ParseDatesArgs(text)
		assert.ErrorIs(t, err, errBadArgs, text)
	}
}

func TestParseTimesArgs(t *testing.T) {
	args, err := ParseTimesArgs("/times " + artistStr + " - 2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", args.Date)
	assert.Equal(t, defaultDuration, args.Duration)
	assert.Equal(t, 0, args.Break)

	args, err = ParseTimesArgs("/times " + artistStr + " " + locationStr + " 2025-03-10 120 15")
	require.NoError(t, err)
	assert.Equal(t, 120, args.Duration)
	assert.Equal(t, 15, args.Break)
}

func TestParseTimesArgs_Errors(t *testing.T) {
	cases := []string{
		"/times " + artistStr + " -",
		"/times " + artistStr + " - 10.03.2025",
		"/times " + artistStr + " - 2025-03-10 0",
		"/times " + artistStr + " - 2025-03-10 -30",
		"/times " + artistStr + " - 2025-03-10 60 abc",
	}
	for _, text := range cases {
		_, err := ParseTimesArgs(text)
		assert.ErrorIs(t, err, errBadArgs, text)
	}
}

func TestParseCheckDatesArgs(t *testing.T) {
	args, err := ParseCheckDatesArgs("/checkdates " + artistStr + " - 2025-03-10 2025-03-12")
	require.NoError(t, err)
	assert.Nil(t, args.ClientID)
	assert.Equal(t, []string{"2025-03-10", "2025-03-12"}, args.Dates)

	args, err = ParseCheckDatesArgs("/checkdates " + artistStr + " " + locationStr + " 2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, args.ClientID)
	assert.Equal(t, uuid.MustParse(locationStr), *args.ClientID)
}

func TestParseCheckDatesArgs_Errors(t *testing.T) {
	_, err := ParseCheckDatesArgs("/checkdates " + artistStr + " -")
	assert.ErrorIs(t, err, errBadArgs)

	text := "/checkdates " + artistStr + " -"
	for i := 0; i < maxDatesPerPick+1; i++ {
		text += " 2025-03-10"
	}
	_, err = ParseCheckDatesArgs(text)
	assert.ErrorIs(t, err, errBadArgs)
}
