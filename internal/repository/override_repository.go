package repository

import (
	"context"
	"fmt"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
	"github.com/danielleeas/simple-tattooer-sub000/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OverrideRepository читает записи, на которые ссылаются фоновые события:
// off_days, temp_changes, spot_conventions
type OverrideRepository struct {
	*base.Repository
}

func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{Repository: base.NewRepository(pool)}
}

// OffDayByID получает выходной по ID
func (r *OverrideRepository) OffDayByID(ctx context.Context, id uuid.UUID) (*model.OffDay, error) {
	query := `
		SELECT id, artist_id, title, start_date::text, end_date::text
		FROM off_days
		WHERE id = $1
	`

	off := &model.OffDay{}
	err := r.QueryRow(ctx, query, id).Scan(
		&off.ID,
		&off.ArtistID,
		&off.Title,
		&off.StartDate,
		&off.EndDate,
	)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get off day by id: %w", err)
	}

	return off, nil
}

// TempChangeByID получает временное изменение расписания по ID
func (r *OverrideRepository) TempChangeByID(ctx context.Context, id uuid.UUID) (*model.TempChange, error) {
	query := `
		SELECT id, artist_id, start_date::text, end_date::text, work_days, start_times, end_times, location_id
		FROM temp_changes
		WHERE id = $1
	`

	tc := &model.TempChange{}
	var workDays []string
	err := r.QueryRow(ctx, query, id).Scan(
		&tc.ID,
		&tc.ArtistID,
		&tc.StartDate,
		&tc.EndDate,
		&workDays,
		&tc.StartTimes,
		&tc.EndTimes,
		&tc.LocationID,
	)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get temp change by id: %w", err)
	}

	tc.WorkDays = make(model.WeekdaySet, len(workDays))
	for _, d := range workDays {
		tc.WorkDays[model.WeekdayCode(d)] = struct{}{}
	}

	return tc, nil
}

// SpotConventionByID получает гостевой спот по ID
func (r *OverrideRepository) SpotConventionByID(ctx context.Context, id uuid.UUID) (*model.SpotConvention, error) {
	query := `
		SELECT id, artist_id, title, dates::text[], start_times, end_times, location_id
		FROM spot_conventions
		WHERE id = $1
	`

	sc := &model.SpotConvention{}
	err := r.QueryRow(ctx, query, id).Scan(
		&sc.ID,
		&sc.ArtistID,
		&sc.Title,
		&sc.Dates,
		&sc.StartTimes,
		&sc.EndTimes,
		&sc.LocationID,
	)
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get spot convention by id: %w", err)
	}

	return sc, nil
}
