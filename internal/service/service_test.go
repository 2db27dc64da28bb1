package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/availability"
	"github.com/danielleeas/simple-tattooer-sub000/internal/calendar"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

// 2025-03-10 понедельник
var fixedNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type fakeArtists struct {
	mu      sync.Mutex
	artists map[uuid.UUID]*model.Artist
	err     error
}

func (f *fakeArtists) GetByID(_ context.Context, id uuid.UUID) (*model.Artist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.artists[id], nil
}

func (f *fakeArtists) ListAll(_ context.Context) ([]*model.Artist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*model.Artist, 0, len(f.artists))
	for _, a := range f.artists {
		out = append(out, a)
	}
	return out, nil
}

type env struct {
	store   *calendar.MemoryStore
	artists *fakeArtists
	artist  *model.Artist
	avail   *AvailabilityService
	booking *BookingService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := calendar.NewMemoryStore()
	artist := &model.Artist{
		ID:             uuid.New(),
		Name:           "Test Artist",
		MainLocationID: uuid.New(),
		Schedule: model.RecurringSchedule{
			WorkDays:          model.NewWeekdaySet(model.Monday, model.Tuesday, model.Wednesday),
			StartTimes:        map[model.WeekdayCode]string{model.Monday: "09:00", model.Tuesday: "09:00", model.Wednesday: "09:00"},
			EndTimes:          map[model.WeekdayCode]string{model.Monday: "17:00", model.Tuesday: "17:00", model.Wednesday: "17:00"},
			BackToBackEnabled: true,
			MaxBackToBack:     2,
		},
		Consultation: model.RecurringSchedule{
			WorkDays: model.NewWeekdaySet(model.Friday),
		},
	}
	artists := &fakeArtists{artists: map[uuid.UUID]*model.Artist{artist.ID: artist}}

	reader := calendar.NewReader(store, store, calendar.ReaderConfig{}, zap.NewNop())
	engine := availability.NewEngine(reader, store, zap.NewNop(),
		availability.WithClock(func() time.Time { return fixedNow }),
		availability.WithLocation(time.UTC))

	return &env{
		store:   store,
		artists: artists,
		artist:  artist,
		avail:   NewAvailabilityService(artists, engine, zap.NewNop()),
		booking: NewBookingService(artists, engine, zap.NewNop()),
	}
}

func TestAvailabilityService_Dates(t *testing.T) {
	e := newEnv(t)

	got, err := e.avail.Dates(context.Background(), e.artist.ID, e.artist.MainLocationID, "2025-03-10", "2025-03-16")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10", "2025-03-11", "2025-03-12"}, got)
}

func TestAvailabilityService_ConsultationDates(t *testing.T) {
	e := newEnv(t)

	got, err := e.avail.ConsultationDates(context.Background(), e.artist.ID, e.artist.MainLocationID, "2025-03-10", "2025-03-23")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-14", "2025-03-21"}, got)
}

func TestAvailabilityService_UnknownArtist(t *testing.T) {
	e := newEnv(t)

	_, err := e.avail.Dates(context.Background(), uuid.New(), uuid.New(), "2025-03-10", "2025-03-16")
	assert.ErrorIs(t, err, ErrArtistNotFound)

	_, err = e.avail.Times(context.Background(), uuid.New(), uuid.New(), "2025-03-10", 60, 0)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestAvailabilityService_ArtistReadFailure(t *testing.T) {
	e := newEnv(t)
	e.artists.err = errors.New("connection refused")

	_, err := e.avail.Dates(context.Background(), e.artist.ID, e.artist.MainLocationID, "2025-03-10", "2025-03-16")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrArtistNotFound)
}

func TestAvailabilityService_Times(t *testing.T) {
	e := newEnv(t)
	e.store.AddEvent(&model.CalendarEvent{
		ArtistID:  e.artist.ID,
		StartDate: "2025-03-11 11:00",
		EndDate:   "2025-03-11 13:00",
		Type:      model.EventTypeItem,
		Source:    model.SourceSession,
	})

	got, err := e.avail.Times(context.Background(), e.artist.ID, e.artist.MainLocationID, "2025-03-11", 120, 0)
	require.NoError(t, err)

	assert.Equal(t, []model.TimeOption{
		{Value: "09:00", Label: "9:00 AM"},
		{Value: "13:00", Label: "1:00 PM"},
		{Value: "15:00", Label: "3:00 PM"},
	}, got)
}

func TestAvailabilityService_TimesInvalidDate(t *testing.T) {
	e := newEnv(t)

	_, err := e.avail.Times(context.Background(), e.artist.ID, e.artist.MainLocationID, "11/03/2025", 60, 0)
	assert.Error(t, err)
}

func TestAvailabilityService_WarmUp(t *testing.T) {
	e := newEnv(t)
	off := &model.OffDay{ArtistID: e.artist.ID, StartDate: "2025-03-11", EndDate: "2025-03-11"}
	e.store.AddOffDay(off)

	require.NoError(t, e.avail.WarmUp(context.Background(), 2))
	assert.NoError(t, e.avail.WarmUp(context.Background(), 0))

	e.artists.err = errors.New("db down")
	assert.Error(t, e.avail.WarmUp(context.Background(), 1))
}

func TestBookingService_ValidateDates(t *testing.T) {
	e := newEnv(t)

	verdict := e.booking.ValidateDates(context.Background(), e.artist.ID, nil, []string{"2025-03-10", "2025-03-11"})
	assert.True(t, verdict.OK)

	verdict = e.booking.ValidateDates(context.Background(), e.artist.ID, nil, []string{"2025-03-10", "2025-03-11", "2025-03-12"})
	assert.False(t, verdict.OK)
	assert.NotEmpty(t, verdict.Error)
}

func TestBookingService_ValidateDatesWithClientSessions(t *testing.T) {
	e := newEnv(t)
	client := uuid.New()
	e.store.AddProject(&model.Project{
		ID:       uuid.New(),
		ArtistID: e.artist.ID,
		ClientID: client,
		Sessions: []model.Session{{ID: uuid.New(), Date: "2025-03-12", StartTime: "10:00", Duration: 120}},
	})

	verdict := e.booking.ValidateDates(context.Background(), e.artist.ID, &client, []string{"2025-03-12"})
	assert.False(t, verdict.OK)
	assert.Contains(t, verdict.Error, "2025-03-12")

	verdict = e.booking.ValidateDates(context.Background(), e.artist.ID, &client, []string{"2025-03-10", "2025-03-11"})
	assert.False(t, verdict.OK, "three consecutive days with the existing session")
}

func TestBookingService_UnknownArtist(t *testing.T) {
	e := newEnv(t)

	verdict := e.booking.ValidateDates(context.Background(), uuid.New(), nil, []string{"2025-03-10"})
	assert.Equal(t, model.Reject(msgArtistNotFound), verdict)

	e.artists.err = errors.New("timeout")
	verdict = e.booking.ValidateDates(context.Background(), e.artist.ID, nil, []string{"2025-03-10"})
	assert.Equal(t, model.Reject(msgArtistReadFail), verdict)
}

func TestAvailabilityService_NilLocationMeansMainStudio(t *testing.T) {
	e := newEnv(t)

	got, err := e.avail.Dates(context.Background(), e.artist.ID, uuid.Nil, "2025-03-10", "2025-03-16")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10", "2025-03-11", "2025-03-12"}, got)
	assert.Equal(t, "2025-03-10", e.avail.Today())
}
