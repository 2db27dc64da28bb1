package availability

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

const (
	msgInvalidSelection = "Invalid date selection."
	msgNoDates          = "Please select at least one date."
	msgUnexpected       = "Something went wrong while checking the dates. Please try again."
	msgSessionsReadFail = "Could not load the client's existing sessions. Please try again."
)

// ValidateDates проверяет выбранные даты вместе с датами уже записанных сессий клиента
// (если clientID задан) по правилам back-to-back и буфера артиста
func (e *Engine) ValidateDates(ctx context.Context, artist *model.Artist, proposed []string, clientID *uuid.UUID) (verdict model.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Panic in date validation", zap.Any("panic", r), zap.Stack("stack"))
			verdict = model.Reject(msgUnexpected)
		}
	}()

	var existing []string
	if clientID != nil {
		dates, err := e.clientSessionDates(ctx, artist.ID, *clientID)
		if err != nil {
			if e.strict {
				return model.Reject(msgSessionsReadFail)
			}
			e.logger.Warn("Client sessions read failed, validating without them",
				zap.Stringer("artist_id", artist.ID),
				zap.Stringer("client_id", *clientID),
				zap.Error(err))
		}
		existing = dates
	}

	return CheckDates(&artist.Schedule, proposed, existing)
}

func (e *Engine) clientSessionDates(ctx context.Context, artistID, clientID uuid.UUID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.readTimeout)
	defer cancel()

	projects, err := e.projects.ClientProjectsWithSessions(ctx, artistID, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client projects: %w", err)
	}

	var dates []string
	for _, p := range projects {
		for _, s := range p.Sessions {
			if s.Date != "" {
				dates = append(dates, s.Date)
			}
		}
	}
	return dates, nil
}

// CheckDates чистая проверка back-to-back и буфера по выбору и уже занятым датам клиента
func CheckDates(schedule *model.RecurringSchedule, proposed, existing []string) model.Verdict {
	if len(proposed) == 0 {
		return model.Reject(msgNoDates)
	}
	for _, d := range proposed {
		if !civil.IsValidYmd(d) {
			return model.Reject(msgInvalidSelection)
		}
	}

	booked := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		booked[d] = struct{}{}
	}

	var duplicates []string
	for _, d := range uniqueSorted(proposed) {
		if _, ok := booked[d]; ok {
			duplicates = append(duplicates, d)
		}
	}
	if len(duplicates) > 0 {
		return model.Reject(fmt.Sprintf(
			"The client already has a session on %s. Please choose different dates.",
			strings.Join(duplicates, ", ")))
	}

	merged := uniqueSorted(append(append([]string{}, proposed...), existing...))

	prev, err := civil.DayIndex(merged[0])
	if err != nil {
		return model.Reject(msgInvalidSelection)
	}

	streak := 1
	for i := 1; i < len(merged); i++ {
		cur, err := civil.DayIndex(merged[i])
		if err != nil {
			return model.Reject(msgInvalidSelection)
		}
		diff := cur - prev

		switch {
		case diff <= 0:
			return model.Reject(msgInvalidSelection)
		case diff == 1:
			streak++
			if !schedule.BackToBackEnabled {
				return model.Reject(fmt.Sprintf(
					"Back-to-back sessions are not allowed: %s and %s are consecutive days.",
					merged[i-1], merged[i]))
			}
			if schedule.MaxBackToBack > 0 && streak > schedule.MaxBackToBack {
				return model.Reject(fmt.Sprintf(
					"No more than %d sessions in a row are allowed (ending %s).",
					schedule.MaxBackToBack, merged[i]))
			}
		default:
			streak = 1
			if buffer := schedule.BufferBetweenSessionsDays; buffer > 0 && diff < int64(buffer) {
				return model.Reject(fmt.Sprintf(
					"%s and %s are too close together. Sessions need at least %d days between them.",
					merged[i-1], merged[i], buffer))
			}
		}

		prev = cur
	}

	return model.Accept()
}

func uniqueSorted(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
