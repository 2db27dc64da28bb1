package handlers

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/controller/state"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

// AvailabilityQuerier отвечает на запросы дат и времени
type AvailabilityQuerier interface {
	Today() string
	Dates(ctx context.Context, artistID, locationID uuid.UUID, from, to string) ([]string, error)
	ConsultationDates(ctx context.Context, artistID, locationID uuid.UUID, from, to string) ([]string, error)
	Times(ctx context.Context, artistID, locationID uuid.UUID, date string, duration, breakMinutes int) ([]model.TimeOption, error)
}

// DateValidator проверяет выбор дат клиентом
type DateValidator interface {
	ValidateDates(ctx context.Context, artistID uuid.UUID, clientID *uuid.UUID, dates []string) model.Verdict
}

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	availability AvailabilityQuerier
	booking      DateValidator
	stateManager *state.Manager
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	availability AvailabilityQuerier,
	booking DateValidator,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		availability: availability,
		booking:      booking,
		stateManager: stateManager,
		logger:       logger,
	}
}
