package calendar

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

// MemoryStore хранит события, переопределения и проекты в памяти.
// Реализует EventStore, OverrideStore и ProjectStore.
type MemoryStore struct {
	mu              sync.RWMutex
	events          []*model.CalendarEvent
	offDays         map[uuid.UUID]*model.OffDay
	tempChanges     map[uuid.UUID]*model.TempChange
	spotConventions map[uuid.UUID]*model.SpotConvention
	projects        []*model.Project

	// Err, если задан, возвращается любым чтением
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		offDays:         make(map[uuid.UUID]*model.OffDay),
		tempChanges:     make(map[uuid.UUID]*model.TempChange),
		spotConventions: make(map[uuid.UUID]*model.SpotConvention),
	}
}

func (m *MemoryStore) AddEvent(e *model.CalendarEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	m.events = append(m.events, e)
}

// AddOffDay сохраняет выходной и фоновое событие, ссылающееся на него
func (m *MemoryStore) AddOffDay(o *model.OffDay) {
	m.mu.Lock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	m.offDays[o.ID] = o
	m.mu.Unlock()

	m.addBackground(o.ArtistID, model.SourceBookOff, o.ID, o.StartDate, o.EndDate)
}

// AddTempChange сохраняет изменение и фоновое событие, ссылающееся на него
func (m *MemoryStore) AddTempChange(t *model.TempChange) {
	m.mu.Lock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	m.tempChanges[t.ID] = t
	m.mu.Unlock()

	m.addBackground(t.ArtistID, model.SourceTempChange, t.ID, t.StartDate, t.EndDate)
}

// AddSpotConvention сохраняет гостевой спот и по фоновому событию на каждую дату
func (m *MemoryStore) AddSpotConvention(s *model.SpotConvention) {
	m.mu.Lock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.spotConventions[s.ID] = s
	m.mu.Unlock()

	for _, d := range s.Dates {
		m.addBackground(s.ArtistID, model.SourceSpotConvention, s.ID, d, d)
	}
}

func (m *MemoryStore) AddProject(p *model.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.projects = append(m.projects, p)
}

func (m *MemoryStore) addBackground(artistID uuid.UUID, source model.EventSource, sourceID uuid.UUID, start, end string) {
	id := sourceID
	m.AddEvent(&model.CalendarEvent{
		ArtistID:  artistID,
		AllDay:    true,
		StartDate: start + " 00:00",
		EndDate:   end + " 23:59",
		Type:      model.EventTypeBackground,
		Source:    source,
		SourceID:  &id,
	})
}

func (m *MemoryStore) ListOverlapping(_ context.Context, artistID uuid.UUID, from, to string) ([]*model.CalendarEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	var out []*model.CalendarEvent
	for _, e := range m.events {
		if e.ArtistID != artistID {
			continue
		}
		if e.StartDate <= to && e.EndDate >= from {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryStore) OffDayByID(_ context.Context, id uuid.UUID) (*model.OffDay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.offDays[id], nil
}

func (m *MemoryStore) TempChangeByID(_ context.Context, id uuid.UUID) (*model.TempChange, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.tempChanges[id], nil
}

func (m *MemoryStore) SpotConventionByID(_ context.Context, id uuid.UUID) (*model.SpotConvention, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.spotConventions[id], nil
}

func (m *MemoryStore) ClientProjectsWithSessions(_ context.Context, artistID, clientID uuid.UUID) ([]*model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	var out []*model.Project
	for _, p := range m.projects {
		if p.ArtistID == artistID && p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}
