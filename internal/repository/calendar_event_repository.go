package repository

import (
	"context"
	"fmt"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
	"github.com/danielleeas/simple-tattooer-sub000/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CalendarEventRepository хранит события календаря.
// start_date/end_date лежат как текст "YYYY-MM-DD HH:mm", поэтому строковое
// сравнение совпадает с хронологическим.
type CalendarEventRepository struct {
	*base.Repository
}

func NewCalendarEventRepository(pool *pgxpool.Pool) *CalendarEventRepository {
	return &CalendarEventRepository{Repository: base.NewRepository(pool)}
}

// ListOverlapping получает события артиста, пересекающие [from, to]
func (r *CalendarEventRepository) ListOverlapping(ctx context.Context, artistID uuid.UUID, from, to string) ([]*model.CalendarEvent, error) {
	query := `
		SELECT id, artist_id, title, all_day, start_date, end_date, color, type, source, source_id
		FROM calendar_events
		WHERE artist_id = $1
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := r.Query(ctx, query, artistID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list overlapping events: %w", err)
	}
	defer rows.Close()

	var events []*model.CalendarEvent
	for rows.Next() {
		event := &model.CalendarEvent{}
		err := rows.Scan(
			&event.ID,
			&event.ArtistID,
			&event.Title,
			&event.AllDay,
			&event.StartDate,
			&event.EndDate,
			&event.Color,
			&event.Type,
			&event.Source,
			&event.SourceID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
