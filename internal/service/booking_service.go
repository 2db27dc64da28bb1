package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/availability"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

const (
	msgArtistNotFound = "Artist not found."
	msgArtistReadFail = "Could not load the artist's schedule. Please try again."
)

type BookingService struct {
	artists ArtistStore
	engine  *availability.Engine
	logger  *zap.Logger
}

func NewBookingService(artists ArtistStore, engine *availability.Engine, logger *zap.Logger) *BookingService {
	return &BookingService{
		artists: artists,
		engine:  engine,
		logger:  logger,
	}
}

// ValidateDates проверяет выбранные клиентом даты по правилам back-to-back и буфера.
// clientID может быть nil, тогда существующие сессии не учитываются.
func (s *BookingService) ValidateDates(ctx context.Context, artistID uuid.UUID, clientID *uuid.UUID, dates []string) model.Verdict {
	artist, err := s.artists.GetByID(ctx, artistID)
	if err != nil {
		s.logger.Error("Failed to load artist for validation",
			zap.Stringer("artist_id", artistID),
			zap.Error(err))
		return model.Reject(msgArtistReadFail)
	}
	if artist == nil {
		return model.Reject(msgArtistNotFound)
	}

	verdict := s.engine.ValidateDates(ctx, artist, dates, clientID)

	if !verdict.OK {
		s.logger.Info("Date selection rejected",
			zap.Stringer("artist_id", artistID),
			zap.Strings("dates", dates),
			zap.String("reason", verdict.Error))
	}

	return verdict
}
