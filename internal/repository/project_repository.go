package repository

import (
	"context"
	"fmt"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
	"github.com/danielleeas/simple-tattooer-sub000/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	*base.Repository
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{Repository: base.NewRepository(pool)}
}

// ClientProjectsWithSessions получает проекты клиента у артиста вместе с сессиями
func (r *ProjectRepository) ClientProjectsWithSessions(ctx context.Context, artistID, clientID uuid.UUID) ([]*model.Project, error) {
	query := `
		SELECT p.id, p.artist_id, p.client_id, p.title, p.created_at,
		       s.id, s.date::text, s.start_time, s.duration, s.location_id
		FROM projects p
		LEFT JOIN sessions s ON s.project_id = p.id
		WHERE p.artist_id = $1 AND p.client_id = $2
		ORDER BY p.created_at, s.date
	`

	rows, err := r.Query(ctx, query, artistID, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client projects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	byID := make(map[uuid.UUID]*model.Project)

	for rows.Next() {
		var (
			p          model.Project
			sessionID  *uuid.UUID
			date       *string
			startTime  *string
			duration   *int
			locationID *uuid.UUID
		)
		err := rows.Scan(
			&p.ID, &p.ArtistID, &p.ClientID, &p.Title, &p.CreatedAt,
			&sessionID, &date, &startTime, &duration, &locationID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project session: %w", err)
		}

		project, ok := byID[p.ID]
		if !ok {
			project = &p
			byID[p.ID] = project
			projects = append(projects, project)
		}

		// LEFT JOIN: проект без сессий
		if sessionID == nil {
			continue
		}
		session := model.Session{ID: *sessionID, ProjectID: p.ID}
		if date != nil {
			session.Date = *date
		}
		if startTime != nil {
			session.StartTime = *startTime
		}
		if duration != nil {
			session.Duration = *duration
		}
		if locationID != nil {
			session.LocationID = *locationID
		}
		project.Sessions = append(project.Sessions, session)
	}

	return projects, rows.Err()
}
