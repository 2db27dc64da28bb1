// Package availability считает доступные даты и время записи к артисту
// и проверяет выбор нескольких дат по правилам back-to-back и буфера.
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/calendar"
	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
)

// ErrUnexpected возвращается вместо паники при расчёте
var ErrUnexpected = errors.New("availability could not be computed")

// Calendar загружает разобранные события артиста за период
type Calendar interface {
	Load(ctx context.Context, artistID uuid.UUID, startYmd, endYmd string) (*calendar.Snapshot, error)
}

// Engine считает доступность по расписанию и календарю артиста
type Engine struct {
	calendar    Calendar
	projects    calendar.ProjectStore
	logger      *zap.Logger
	tracer      trace.Tracer
	now         func() time.Time
	loc         *time.Location
	strict      bool
	readTimeout time.Duration
}

type Option func(*Engine)

// WithClock подменяет time.Now
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation задаёт часовой пояс, в котором определяется "сегодня"
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithStrictReads превращает ошибки чтения в ошибки вместо пустых данных
func WithStrictReads(strict bool) Option {
	return func(e *Engine) { e.strict = strict }
}

// WithReadTimeout ограничивает чтение сессий клиента в ValidateDates
func WithReadTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.readTimeout = d
		}
	}
}

func NewEngine(cal Calendar, projects calendar.ProjectStore, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		calendar:    cal,
		projects:    projects,
		logger:      logger.Named("availability"),
		tracer:      otel.Tracer("availability"),
		now:         time.Now,
		loc:         time.Local,
		readTimeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// load читает снимок календаря. Вне строгого режима ошибка чтения = пустой календарь
func (e *Engine) load(ctx context.Context, artistID uuid.UUID, startYmd, endYmd string) (*calendar.Snapshot, error) {
	snap, err := e.calendar.Load(ctx, artistID, startYmd, endYmd)
	if err != nil {
		if e.strict {
			return nil, fmt.Errorf("load calendar: %w", err)
		}
		e.logger.Warn("Calendar read failed, treating as empty",
			zap.Stringer("artist_id", artistID),
			zap.String("start", startYmd),
			zap.String("end", endYmd),
			zap.Error(err))
		return &calendar.Snapshot{}, nil
	}
	if e.strict && len(snap.Unresolved) > 0 {
		return nil, fmt.Errorf("load calendar: %d overrides unresolved", len(snap.Unresolved))
	}
	return snap, nil
}

// Today текущая дата в часовом поясе движка
func (e *Engine) Today() string {
	return civil.Today(e.now(), e.loc)
}

// recoverAs превращает панику в err и логирует её
func (e *Engine) recoverAs(op string, err *error) {
	if r := recover(); r != nil {
		e.logger.Error("Panic in availability",
			zap.String("op", op),
			zap.Any("panic", r),
			zap.Stack("stack"))
		*err = ErrUnexpected
	}
}
