package calendar

import (
	"github.com/google/uuid"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

// Snapshot все события артиста за период, разложенные по ролям,
// с уже прочитанными записями фоновых событий
type Snapshot struct {
	Events []*model.CalendarEvent

	OffDays         []*model.OffDay
	TempChanges     []*model.TempChange
	SpotConventions []*model.SpotConvention

	Unavailable []*model.CalendarEvent // mark_unavailable, период хранится в самом событии
	Bookings    []*model.CalendarEvent // session + quick_appointment
	Blocks      []*model.CalendarEvent // block_time

	// Unresolved id записей, которые не удалось прочитать или они битые
	Unresolved []uuid.UUID
}

// BookingsOn сессии и быстрые записи, начинающиеся в ymd
func (s *Snapshot) BookingsOn(ymd string) []*model.CalendarEvent {
	return eventsOn(s.Bookings, ymd)
}

// BlocksOn личные блоки, начинающиеся в ymd
func (s *Snapshot) BlocksOn(ymd string) []*model.CalendarEvent {
	return eventsOn(s.Blocks, ymd)
}

func eventsOn(events []*model.CalendarEvent, ymd string) []*model.CalendarEvent {
	var out []*model.CalendarEvent
	for _, e := range events {
		if e.StartYmd() == ymd {
			out = append(out, e)
		}
	}
	return out
}

// classify раскладывает события по ролям и собирает id переопределений
func classify(events []*model.CalendarEvent) (*Snapshot, []overrideRef) {
	snap := &Snapshot{Events: events}
	var refs []overrideRef

	for _, e := range events {
		switch e.Type {
		case model.EventTypeBackground:
			switch e.Source {
			case model.SourceBookOff, model.SourceTempChange, model.SourceSpotConvention:
				if e.SourceID == nil {
					continue
				}
				refs = append(refs, overrideRef{source: e.Source, id: *e.SourceID})
			case model.SourceMarkUnavailable:
				snap.Unavailable = append(snap.Unavailable, e)
			}
		case model.EventTypeItem:
			switch {
			case e.IsBooking():
				snap.Bookings = append(snap.Bookings, e)
			case e.Source == model.SourceBlockTime:
				snap.Blocks = append(snap.Blocks, e)
			}
		}
	}

	return snap, dedupRefs(refs)
}

type overrideRef struct {
	source model.EventSource
	id     uuid.UUID
}

// Многодневное переопределение может быть несколькими событиями с одним источником
func dedupRefs(refs []overrideRef) []overrideRef {
	seen := make(map[overrideRef]struct{}, len(refs))
	out := refs[:0]
	for _, r := range refs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
