package model

import (
	"strings"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeBackground EventType = "background" // период-правило: выходной, временное изменение, гостевой спот, недоступность
	EventTypeItem       EventType = "item"       // занятость: сессия, быстрая запись, личный блок
)

type EventSource string

const (
	SourceBookOff          EventSource = "book_off"
	SourceTempChange       EventSource = "temp_change"
	SourceSpotConvention   EventSource = "spot_convention"
	SourceMarkUnavailable  EventSource = "mark_unavailable"
	SourceSession          EventSource = "session"
	SourceQuickAppointment EventSource = "quick_appointment"
	SourceBlockTime        EventSource = "block_time"
)

// CalendarEvent строка календаря артиста.
// StartDate и EndDate локальные значения "YYYY-MM-DD HH:mm".
type CalendarEvent struct {
	ID        uuid.UUID   `json:"id"`
	ArtistID  uuid.UUID   `json:"artist_id"`
	Title     string      `json:"title"`
	AllDay    bool        `json:"all_day"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Color     string      `json:"color"`
	Type      EventType   `json:"type"`
	Source    EventSource `json:"source"`
	SourceID  *uuid.UUID  `json:"source_id"`
}

// IsBooking занимает ли событие место для записи
func (e *CalendarEvent) IsBooking() bool {
	return e.Source == SourceSession || e.Source == SourceQuickAppointment
}

// StartYmd дата из StartDate
func (e *CalendarEvent) StartYmd() string {
	return datePart(e.StartDate)
}

// EndYmd дата из EndDate
func (e *CalendarEvent) EndYmd() string {
	return datePart(e.EndDate)
}

// StartClock время "HH:mm" из StartDate или ""
func (e *CalendarEvent) StartClock() string {
	return clockPart(e.StartDate)
}

// EndClock время "HH:mm" из EndDate или ""
func (e *CalendarEvent) EndClock() string {
	return clockPart(e.EndDate)
}

func datePart(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, " T"); i >= 0 {
		return v[:i]
	}
	return v
}

func clockPart(v string) string {
	v = strings.TrimSpace(v)
	i := strings.IndexAny(v, " T")
	if i < 0 {
		return ""
	}
	clock := v[i+1:]
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return clock
}
