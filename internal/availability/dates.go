package availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/danielleeas/simple-tattooer-sub000/internal/calendar"
	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

// AvailableDates возвращает даты для записи на сессию в [startYmd, endYmd] на locationID:
// по возрастанию, без повторов и не раньше сегодняшнего дня
func (e *Engine) AvailableDates(ctx context.Context, artist *model.Artist, locationID uuid.UUID, startYmd, endYmd string) ([]string, error) {
	return e.availableDates(ctx, "dates", artist, &artist.Schedule, locationID, startYmd, endYmd)
}

// AvailableConsultationDates то же самое по расписанию консультаций
func (e *Engine) AvailableConsultationDates(ctx context.Context, artist *model.Artist, locationID uuid.UUID, startYmd, endYmd string) ([]string, error) {
	return e.availableDates(ctx, "consultation_dates", artist, &artist.Consultation, locationID, startYmd, endYmd)
}

func (e *Engine) availableDates(
	ctx context.Context,
	op string,
	artist *model.Artist,
	schedule *model.RecurringSchedule,
	locationID uuid.UUID,
	startYmd, endYmd string,
) (dates []string, err error) {
	defer e.recoverAs(op, &err)

	if !civil.IsValidYmd(startYmd) || !civil.IsValidYmd(endYmd) {
		return nil, fmt.Errorf("available dates: %w", civil.ErrInvalidDate)
	}
	if startYmd > endYmd {
		return []string{}, nil
	}

	ctx, span := e.tracer.Start(ctx, "availability."+op, trace.WithAttributes(
		attribute.String("artist_id", artist.ID.String()),
		attribute.String("location_id", locationID.String()),
	))
	defer span.End()

	snap, err := e.load(ctx, artist.ID, startYmd, endYmd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	dates = computeDates(dateQuery{
		schedule:     schedule,
		mainLocation: artist.MainLocationID,
		location:     locationID,
		start:        startYmd,
		end:          endYmd,
		today:        e.Today(),
	}, snap)

	span.SetAttributes(attribute.Int("dates", len(dates)))
	return dates, nil
}

type dateQuery struct {
	schedule     *model.RecurringSchedule
	mainLocation uuid.UUID
	location     uuid.UUID
	start, end   string
	today        string
}

func (q dateQuery) inWindow(ymd string) bool {
	return ymd >= q.start && ymd <= q.end && ymd >= q.today
}

type dateSet map[string]struct{}

func (s dateSet) add(d string)    { s[d] = struct{}{} }
func (s dateSet) remove(d string) { delete(s, d) }

func (s dateSet) addRange(startYmd, endYmd string) {
	for _, d := range civil.EachDateInclusive(startYmd, endYmd) {
		s[d] = struct{}{}
	}
}

func (s dateSet) removeRange(startYmd, endYmd string) {
	for _, d := range civil.EachDateInclusive(startYmd, endYmd) {
		delete(s, d)
	}
}

// computeDates применяет слои по порядку, каждый работает с результатом предыдущего
func computeDates(q dateQuery, snap *calendar.Snapshot) []string {
	result := make(dateSet)

	// обычное расписание, только основная студия
	if q.location == q.mainLocation {
		for _, d := range civil.EachDateInclusive(q.start, q.end) {
			if d >= q.today && q.schedule.WorkDays.Has(civil.WeekdayCodeOf(d)) {
				result.add(d)
			}
		}
	}

	// временные изменения забирают свои даты у обычного расписания на всех локациях
	// и возвращают свои рабочие дни только на своей локации
	for _, tc := range snap.TempChanges {
		result.removeRange(tc.StartDate, tc.EndDate)
	}
	for _, tc := range snap.TempChanges {
		if tc.LocationID != q.location {
			continue
		}
		for _, d := range civil.EachDateInclusive(tc.StartDate, tc.EndDate) {
			if q.inWindow(d) && tc.WorkDays.Has(civil.WeekdayCodeOf(d)) {
				result.add(d)
			}
		}
	}

	// выходные и недоступность перекрывают всё: даты удаляются здесь,
	// и даты гостевых спотов внутри них потом не добавляются
	stops := make(dateSet)
	for _, off := range snap.OffDays {
		stops.addRange(off.StartDate, off.EndDate)
	}
	for _, ev := range snap.Unavailable {
		stops.addRange(ev.StartYmd(), ev.EndYmd())
	}
	for d := range stops {
		result.remove(d)
	}

	for _, sc := range snap.SpotConventions {
		if sc.LocationID != q.location {
			continue
		}
		for _, d := range sc.Dates {
			if _, stopped := stops[d]; !stopped && q.inWindow(d) {
				result.add(d)
			}
		}
	}

	limit := 1
	if q.schedule.MultipleSessionsEnabled && q.schedule.SessionsPerDay > 1 {
		limit = q.schedule.SessionsPerDay
	}
	booked := make(map[string]int)
	for _, ev := range snap.Bookings {
		booked[ev.StartYmd()]++
	}
	for d, n := range booked {
		if n >= limit {
			result.remove(d)
		}
	}

	dates := make([]string, 0, len(result))
	for d := range result {
		if d >= q.today {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}
