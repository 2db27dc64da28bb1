package calendar

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrMalformedOverride = errors.New("malformed override record")
)

// EventStore отдаёт события, пересекающие [from, to].
// Границы в формате "YYYY-MM-DD HH:mm".
type EventStore interface {
	ListOverlapping(ctx context.Context, artistID uuid.UUID, from, to string) ([]*model.CalendarEvent, error)
}

// OverrideStore читает записи за фоновыми событиями.
// Отсутствующая запись возвращается как (nil, nil).
type OverrideStore interface {
	OffDayByID(ctx context.Context, id uuid.UUID) (*model.OffDay, error)
	TempChangeByID(ctx context.Context, id uuid.UUID) (*model.TempChange, error)
	SpotConventionByID(ctx context.Context, id uuid.UUID) (*model.SpotConvention, error)
}

// ProjectStore читает проекты клиента вместе с сессиями
type ProjectStore interface {
	ClientProjectsWithSessions(ctx context.Context, artistID, clientID uuid.UUID) ([]*model.Project, error)
}
