package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

func newTestReader(store *MemoryStore) *Reader {
	return NewReader(store, store, ReaderConfig{}, zap.NewNop())
}

func TestEventsInRange_OverlapAndOrder(t *testing.T) {
	store := NewMemoryStore()
	artist := uuid.New()

	store.AddEvent(&model.CalendarEvent{ArtistID: artist, Title: "late", StartDate: "2025-03-12 15:00", EndDate: "2025-03-12 16:00", Type: model.EventTypeItem, Source: model.SourceSession})
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, Title: "spanning", StartDate: "2025-03-01 00:00", EndDate: "2025-03-10 23:59", Type: model.EventTypeBackground, Source: model.SourceMarkUnavailable})
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, Title: "before", StartDate: "2025-03-01 10:00", EndDate: "2025-03-01 11:00", Type: model.EventTypeItem, Source: model.SourceSession})
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, Title: "after", StartDate: "2025-03-16 10:00", EndDate: "2025-03-16 11:00", Type: model.EventTypeItem, Source: model.SourceSession})
	store.AddEvent(&model.CalendarEvent{ArtistID: uuid.New(), Title: "other artist", StartDate: "2025-03-12 10:00", EndDate: "2025-03-12 11:00", Type: model.EventTypeItem, Source: model.SourceSession})

	events, err := newTestReader(store).EventsInRange(context.Background(), artist, "2025-03-10", "2025-03-15")
	require.NoError(t, err)

	var titles []string
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"spanning", "late"}, titles)
}

func TestEventsInRange_ReadFailure(t *testing.T) {
	store := NewMemoryStore()
	store.Err = errors.New("connection reset")

	_, err := newTestReader(store).EventsInRange(context.Background(), uuid.New(), "2025-03-10", "2025-03-15")
	assert.ErrorContains(t, err, "connection reset")
}

func TestLoad_ClassifiesAndResolves(t *testing.T) {
	store := NewMemoryStore()
	artist := uuid.New()
	studio := uuid.New()

	store.AddOffDay(&model.OffDay{ArtistID: artist, StartDate: "2025-03-10", EndDate: "2025-03-11"})
	store.AddTempChange(&model.TempChange{ArtistID: artist, StartDate: "2025-03-12", EndDate: "2025-03-14", WorkDays: model.NewWeekdaySet(model.Wednesday), LocationID: studio})
	store.AddSpotConvention(&model.SpotConvention{ArtistID: artist, Dates: []string{"2025-03-13", "2025-03-14"}, LocationID: studio})
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, StartDate: "2025-03-12 00:00", EndDate: "2025-03-12 23:59", Type: model.EventTypeBackground, Source: model.SourceMarkUnavailable})
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, StartDate: "2025-03-13 10:00", EndDate: "2025-03-13 12:00", Type: model.EventTypeItem, Source: model.SourceSession})
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, StartDate: "2025-03-13 13:00", EndDate: "2025-03-13 13:30", Type: model.EventTypeItem, Source: model.SourceQuickAppointment})
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, StartDate: "2025-03-13 18:00", EndDate: "2025-03-13 19:00", Type: model.EventTypeItem, Source: model.SourceBlockTime})

	snap, err := newTestReader(store).Load(context.Background(), artist, "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	assert.Len(t, snap.OffDays, 1)
	assert.Len(t, snap.TempChanges, 1)
	// два фоновых события ссылаются на один спот
	assert.Len(t, snap.SpotConventions, 1)
	assert.Len(t, snap.Unavailable, 1)
	assert.Len(t, snap.Bookings, 2)
	assert.Len(t, snap.Blocks, 1)
	assert.Empty(t, snap.Unresolved)

	assert.Len(t, snap.BookingsOn("2025-03-13"), 2)
	assert.Empty(t, snap.BookingsOn("2025-03-14"))
}

func TestLoad_MissingAndMalformedOverridesAreSkipped(t *testing.T) {
	store := NewMemoryStore()
	artist := uuid.New()

	missing := uuid.New()
	store.AddEvent(&model.CalendarEvent{ArtistID: artist, StartDate: "2025-03-10 00:00", EndDate: "2025-03-10 23:59", Type: model.EventTypeBackground, Source: model.SourceBookOff, SourceID: &missing})
	store.AddTempChange(&model.TempChange{ArtistID: artist, StartDate: "2025-03-12", EndDate: "2025-03-11", LocationID: uuid.New()})
	store.AddOffDay(&model.OffDay{ArtistID: artist, StartDate: "2025-03-14", EndDate: "2025-03-14"})

	snap, err := newTestReader(store).Load(context.Background(), artist, "2025-03-10", "2025-03-16")
	require.NoError(t, err)

	assert.Len(t, snap.OffDays, 1)
	assert.Empty(t, snap.TempChanges)
	assert.Len(t, snap.Unresolved, 2)
	assert.Contains(t, snap.Unresolved, missing)
}

func TestOverrideByID_Contract(t *testing.T) {
	store := NewMemoryStore()
	reader := newTestReader(store)
	ctx := context.Background()

	_, err := reader.OffDayByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	bad := &model.SpotConvention{ArtistID: uuid.New(), Dates: []string{"2025-13-01"}, LocationID: uuid.New()}
	store.AddSpotConvention(bad)
	_, err = reader.SpotConventionByID(ctx, bad.ID)
	assert.ErrorIs(t, err, ErrMalformedOverride)

	good := &model.TempChange{ArtistID: uuid.New(), StartDate: "2025-03-01", EndDate: "2025-03-05", LocationID: uuid.New()}
	store.AddTempChange(good)
	got, err := reader.TempChangeByID(ctx, good.ID)
	require.NoError(t, err)
	assert.Equal(t, good.ID, got.ID)
}

func TestLoad_UsesOverrideCache(t *testing.T) {
	store := NewMemoryStore()
	artist := uuid.New()
	off := &model.OffDay{ArtistID: artist, StartDate: "2025-03-10", EndDate: "2025-03-10"}
	store.AddOffDay(off)

	reader := newTestReader(store)
	ctx := context.Background()

	_, err := reader.Load(ctx, artist, "2025-03-10", "2025-03-10")
	require.NoError(t, err)

	// записи в хранилище больше нет, но кэш ещё отдаёт её
	store.mu.Lock()
	delete(store.offDays, off.ID)
	store.mu.Unlock()

	snap, err := reader.Load(ctx, artist, "2025-03-10", "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, snap.OffDays, 1)

	reader.Invalidate(off.ID)
	snap, err = reader.Load(ctx, artist, "2025-03-10", "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, snap.OffDays)
	assert.Equal(t, []uuid.UUID{off.ID}, snap.Unresolved)
}
