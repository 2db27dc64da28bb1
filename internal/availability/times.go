package availability

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/calendar"
	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

// AvailableTimes возвращает стартовые времена на dateYmd для сессии длиной durationMinutes.
// До и после других записей остаётся breakMinutes, личные блоки не пересекаются.
func (e *Engine) AvailableTimes(
	ctx context.Context,
	artist *model.Artist,
	dateYmd string,
	durationMinutes, breakMinutes int,
	locationID uuid.UUID,
) (options []model.TimeOption, err error) {
	defer e.recoverAs("times", &err)

	if !civil.IsValidYmd(dateYmd) {
		return nil, fmt.Errorf("available times: %w", civil.ErrInvalidDate)
	}
	if durationMinutes <= 0 || dateYmd < e.Today() {
		return []model.TimeOption{}, nil
	}
	if breakMinutes < 0 {
		breakMinutes = 0
	}

	ctx, span := e.tracer.Start(ctx, "availability.times", trace.WithAttributes(
		attribute.String("artist_id", artist.ID.String()),
		attribute.String("date", dateYmd),
	))
	defer span.End()

	snap, err := e.load(ctx, artist.ID, dateYmd, dateYmd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	startHhMm, endHhMm, ok := resolveWindow(artist, snap, dateYmd, locationID)
	if !ok {
		return []model.TimeOption{}, nil
	}
	start, end, err := parseWindow(startHhMm, endHhMm)
	if err != nil {
		e.logger.Warn("Malformed working hours",
			zap.Stringer("artist_id", artist.ID),
			zap.String("date", dateYmd),
			zap.Error(err))
		return []model.TimeOption{}, nil
	}
	if start >= end {
		return []model.TimeOption{}, nil
	}

	bookings := spans(snap.BookingsOn(dateYmd), dateYmd)
	blocks := spans(snap.BlocksOn(dateYmd), dateYmd)

	options = []model.TimeOption{}
	for _, slot := range packSlots(start, end, durationMinutes, breakMinutes) {
		slotEnd := slot + durationMinutes
		if conflictsWithBooking(slot, slotEnd, breakMinutes, bookings) {
			continue
		}
		if overlapsAny(slot, slotEnd, blocks) {
			continue
		}
		options = append(options, model.TimeOption{
			Value: civil.MinutesToHhMm(slot),
			Label: civil.MinutesToDisplay(slot),
		})
	}

	span.SetAttributes(attribute.Int("slots", len(options)))
	return options, nil
}

// resolveWindow выбирает рабочие часы дня.
// Временное изменение, покрывающее дату, заменяет обычное расписание везде:
// на своей локации оно даёт часы своих рабочих дней, на остальных отключает часы по умолчанию.
// Гостевой спот на этой локации даёт часы на свои даты, как и в AvailableDates.
func resolveWindow(artist *model.Artist, snap *calendar.Snapshot, ymd string, locationID uuid.UUID) (start, end string, ok bool) {
	day := civil.WeekdayCodeOf(ymd)

	covered := false
	for _, tc := range snap.TempChanges {
		if !tc.Covers(ymd) {
			continue
		}
		covered = true
		if tc.LocationID != locationID || !tc.WorkDays.Has(day) {
			continue
		}
		start, end = tc.StartTimes[day], tc.EndTimes[day]
		if start != "" && end != "" {
			return start, end, true
		}
	}

	for _, sc := range snap.SpotConventions {
		if sc.LocationID != locationID || !sc.HasDate(ymd) {
			continue
		}
		start, end = sc.StartTimes[ymd], sc.EndTimes[ymd]
		if start != "" && end != "" {
			return start, end, true
		}
	}

	if covered || locationID != artist.MainLocationID {
		return "", "", false
	}
	return artist.Schedule.HoursFor(day)
}

// parseWindow переводит часы "HH:mm" в минуты от полуночи
func parseWindow(startHhMm, endHhMm string) (start, end int, err error) {
	start, okStart := civil.ParseHhMmToMinutes(startHhMm)
	end, okEnd := civil.ParseHhMmToMinutes(endHhMm)
	if !okStart || !okEnd {
		return 0, 0, fmt.Errorf("working hours %q-%q: %w", startHhMm, endHhMm, civil.ErrInvalidTime)
	}
	return start, end, nil
}

// packSlots шагает от start на duration+break, пока сессия помещается.
// Если последняя сессия кончается раньше end, добавляется ещё старт вплотную к end.
func packSlots(start, end, duration, brk int) []int {
	var slots []int
	for cur := start; cur+duration <= end; cur += duration + brk {
		slots = append(slots, cur)
	}

	if n := len(slots); n > 0 {
		last := slots[n-1]
		if flush := end - duration; flush > last {
			slots = append(slots, flush)
		}
	}
	return slots
}

type minuteSpan struct {
	start, end int
}

// spans переводит события, начинающиеся в ymd, в интервалы минут этого дня.
// События на весь день и переходящие через полночь тянутся до конца дня.
func spans(events []*model.CalendarEvent, ymd string) []minuteSpan {
	out := make([]minuteSpan, 0, len(events))
	for _, ev := range events {
		if ev.AllDay {
			out = append(out, minuteSpan{0, civil.MinutesPerDay})
			continue
		}

		start, ok := civil.ParseHhMmToMinutes(ev.StartClock())
		if !ok {
			start = 0
		}
		end, ok := civil.ParseHhMmToMinutes(ev.EndClock())
		if !ok || ev.EndYmd() > ymd {
			end = civil.MinutesPerDay
		}
		out = append(out, minuteSpan{start, end})
	}
	return out
}

// Слот не конфликтует с записью, только если перерыв целиком помещается с одной из сторон
func conflictsWithBooking(start, end, brk int, bookings []minuteSpan) bool {
	for _, b := range bookings {
		before := end <= b.start-brk
		after := start >= b.end+brk
		if !before && !after {
			return true
		}
	}
	return false
}

func overlapsAny(start, end int, blocks []minuteSpan) bool {
	for _, b := range blocks {
		if start < b.end && end > b.start {
			return true
		}
	}
	return false
}
