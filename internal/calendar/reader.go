package calendar

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

// ReaderConfig настройки читателя. Нулевые значения заменяются дефолтами
type ReaderConfig struct {
	ReadTimeout        time.Duration
	CacheSize          int
	CacheTTL           time.Duration
	ResolveConcurrency int
}

func (c ReaderConfig) withDefaults() ReaderConfig {
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 3 * time.Second
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 512
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.ResolveConcurrency <= 0 {
		c.ResolveConcurrency = 8
	}
	return c
}

// Reader читает события календаря и подгружает записи переопределений за ними
type Reader struct {
	events    EventStore
	overrides OverrideStore
	cache     *expirable.LRU[overrideRef, any]
	cfg       ReaderConfig
	tracer    trace.Tracer
	logger    *zap.Logger
}

// NewReader создаёт читателя поверх хранилищ
func NewReader(events EventStore, overrides OverrideStore, cfg ReaderConfig, logger *zap.Logger) *Reader {
	cfg = cfg.withDefaults()
	return &Reader{
		events:    events,
		overrides: overrides,
		cache:     expirable.NewLRU[overrideRef, any](cfg.CacheSize, nil, cfg.CacheTTL),
		cfg:       cfg,
		tracer:    otel.Tracer("calendar"),
		logger:    logger.Named("calendar"),
	}
}

// EventsInRange возвращает события, пересекающие дни [startYmd, endYmd], по времени начала
func (r *Reader) EventsInRange(ctx context.Context, artistID uuid.UUID, startYmd, endYmd string) ([]*model.CalendarEvent, error) {
	if !civil.IsValidYmd(startYmd) || !civil.IsValidYmd(endYmd) {
		return nil, fmt.Errorf("events in range: %w", civil.ErrInvalidDate)
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	from := civil.JoinDateTime(startYmd, "00:00")
	to := civil.JoinDateTime(endYmd, "23:59")

	events, err := r.events.ListOverlapping(ctx, artistID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate < events[j].StartDate
	})

	return events, nil
}

// Load читает период и подгружает все переопределения фоновых событий.
// Непрочитанные переопределения логируются, попадают в Snapshot.Unresolved и пропускаются.
// Ошибкой Load заканчивается только чтение самих событий.
func (r *Reader) Load(ctx context.Context, artistID uuid.UUID, startYmd, endYmd string) (*Snapshot, error) {
	ctx, span := r.tracer.Start(ctx, "calendar.Load", trace.WithAttributes(
		attribute.String("artist_id", artistID.String()),
		attribute.String("start", startYmd),
		attribute.String("end", endYmd),
	))
	defer span.End()

	events, err := r.EventsInRange(ctx, artistID, startYmd, endYmd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	snap, refs := classify(events)
	r.resolve(ctx, snap, refs)

	span.SetAttributes(
		attribute.Int("events", len(events)),
		attribute.Int("unresolved", len(snap.Unresolved)),
	)
	return snap, nil
}

// resolve читает переопределения параллельно; слияние после завершения всех,
// в порядке событий
func (r *Reader) resolve(ctx context.Context, snap *Snapshot, refs []overrideRef) {
	if len(refs) == 0 {
		return
	}

	results := make([]any, len(refs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.ResolveConcurrency)

	for i, ref := range refs {
		g.Go(func() error {
			rec, err := r.lookup(gctx, ref)
			if err != nil {
				r.logger.Warn("Failed to resolve override",
					zap.String("source", string(ref.source)),
					zap.Stringer("source_id", ref.id),
					zap.Error(err))
				mu.Lock()
				snap.Unresolved = append(snap.Unresolved, ref.id)
				mu.Unlock()
				return nil
			}
			results[i] = rec
			return nil
		})
	}
	_ = g.Wait()

	for _, rec := range results {
		switch v := rec.(type) {
		case *model.OffDay:
			snap.OffDays = append(snap.OffDays, v)
		case *model.TempChange:
			snap.TempChanges = append(snap.TempChanges, v)
		case *model.SpotConvention:
			snap.SpotConventions = append(snap.SpotConventions, v)
		}
	}
}

func (r *Reader) lookup(ctx context.Context, ref overrideRef) (any, error) {
	if rec, ok := r.cache.Get(ref); ok {
		return rec, nil
	}

	var (
		rec any
		err error
	)
	switch ref.source {
	case model.SourceBookOff:
		rec, err = r.OffDayByID(ctx, ref.id)
	case model.SourceTempChange:
		rec, err = r.TempChangeByID(ctx, ref.id)
	case model.SourceSpotConvention:
		rec, err = r.SpotConventionByID(ctx, ref.id)
	default:
		return nil, fmt.Errorf("unsupported override source %q", ref.source)
	}
	if err != nil {
		return nil, err
	}

	r.cache.Add(ref, rec)
	return rec, nil
}

// OffDayByID читает и проверяет выходной
func (r *Reader) OffDayByID(ctx context.Context, id uuid.UUID) (*model.OffDay, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	off, err := r.overrides.OffDayByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get off day: %w", err)
	}
	if off == nil {
		return nil, fmt.Errorf("off day %s: %w", id, ErrNotFound)
	}
	if err := off.Validate(); err != nil {
		return nil, fmt.Errorf("off day %s: %w: %v", id, ErrMalformedOverride, err)
	}
	return off, nil
}

// TempChangeByID читает и проверяет временное изменение
func (r *Reader) TempChangeByID(ctx context.Context, id uuid.UUID) (*model.TempChange, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	tc, err := r.overrides.TempChangeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get temp change: %w", err)
	}
	if tc == nil {
		return nil, fmt.Errorf("temp change %s: %w", id, ErrNotFound)
	}
	if err := tc.Validate(); err != nil {
		return nil, fmt.Errorf("temp change %s: %w: %v", id, ErrMalformedOverride, err)
	}
	return tc, nil
}

// SpotConventionByID читает и проверяет гостевой спот
func (r *Reader) SpotConventionByID(ctx context.Context, id uuid.UUID) (*model.SpotConvention, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	sc, err := r.overrides.SpotConventionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get spot convention: %w", err)
	}
	if sc == nil {
		return nil, fmt.Errorf("spot convention %s: %w", id, ErrNotFound)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("spot convention %s: %w: %v", id, ErrMalformedOverride, err)
	}
	return sc, nil
}

// Invalidate убирает переопределение из кэша после правки или удаления
func (r *Reader) Invalidate(id uuid.UUID) {
	for _, src := range []model.EventSource{model.SourceBookOff, model.SourceTempChange, model.SourceSpotConvention} {
		r.cache.Remove(overrideRef{source: src, id: id})
	}
}
