package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/danielleeas/simple-tattooer-sub000/internal/availability"
	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

var ErrArtistNotFound = errors.New("artist not found")

// ArtistStore читает артистов вместе с их расписаниями
type ArtistStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	ListAll(ctx context.Context) ([]*model.Artist, error)
}

type AvailabilityService struct {
	artists ArtistStore
	engine  *availability.Engine
	logger  *zap.Logger
}

func NewAvailabilityService(artists ArtistStore, engine *availability.Engine, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		artists: artists,
		engine:  engine,
		logger:  logger,
	}
}

// Dates возвращает доступные для записи даты артиста в [from, to].
// uuid.Nil вместо локации означает основную студию.
func (s *AvailabilityService) Dates(ctx context.Context, artistID, locationID uuid.UUID, from, to string) ([]string, error) {
	artist, err := s.artist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	dates, err := s.engine.AvailableDates(ctx, artist, s.location(artist, locationID), from, to)
	if err != nil {
		return nil, fmt.Errorf("available dates: %w", err)
	}

	s.logger.Debug("Available dates computed",
		zap.Stringer("artist_id", artistID),
		zap.Stringer("location_id", locationID),
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("count", len(dates)))

	return dates, nil
}

// ConsultationDates то же самое, но по расписанию консультаций
func (s *AvailabilityService) ConsultationDates(ctx context.Context, artistID, locationID uuid.UUID, from, to string) ([]string, error) {
	artist, err := s.artist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	dates, err := s.engine.AvailableConsultationDates(ctx, artist, s.location(artist, locationID), from, to)
	if err != nil {
		return nil, fmt.Errorf("available consultation dates: %w", err)
	}

	return dates, nil
}

// Times возвращает стартовые времена на дату для сессии заданной длительности
func (s *AvailabilityService) Times(ctx context.Context, artistID, locationID uuid.UUID, date string, duration, breakMinutes int) ([]model.TimeOption, error) {
	artist, err := s.artist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	options, err := s.engine.AvailableTimes(ctx, artist, date, duration, breakMinutes, s.location(artist, locationID))
	if err != nil {
		return nil, fmt.Errorf("available times: %w", err)
	}

	return options, nil
}

// WarmUp считает доступные даты всех артистов на weeks недель вперёд.
// Это заполняет кэш переопределений в календаре.
func (s *AvailabilityService) WarmUp(ctx context.Context, weeks int) error {
	if weeks <= 0 {
		return nil
	}

	artists, err := s.artists.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list artists: %w", err)
	}

	from := s.engine.Today()
	to, err := civil.AddDays(from, weeks*7-1)
	if err != nil {
		return fmt.Errorf("warm-up window: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, artist := range artists {
		g.Go(func() error {
			dates, err := s.engine.AvailableDates(gctx, artist, artist.MainLocationID, from, to)
			if err != nil {
				// один артист не должен ронять весь прогон
				s.logger.Warn("Warm-up failed for artist",
					zap.Stringer("artist_id", artist.ID),
					zap.Error(err))
				return nil
			}
			s.logger.Debug("Warm-up artist done",
				zap.Stringer("artist_id", artist.ID),
				zap.Int("dates", len(dates)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("Warm-up finished",
		zap.Int("artists", len(artists)),
		zap.String("from", from),
		zap.String("to", to))

	return ctx.Err()
}

// Today текущая дата в часовом поясе приложения
func (s *AvailabilityService) Today() string {
	return s.engine.Today()
}

// location подставляет основную студию, если локация не указана
func (s *AvailabilityService) location(artist *model.Artist, locationID uuid.UUID) uuid.UUID {
	if locationID == uuid.Nil {
		return artist.MainLocationID
	}
	return locationID
}

func (s *AvailabilityService) artist(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}
	return artist, nil
}
