package model

import (
	"time"

	"github.com/google/uuid"
)

// Project объединяет сессии одного клиента у артиста
type Project struct {
	ID        uuid.UUID `json:"id"`
	ArtistID  uuid.UUID `json:"artist_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Title     string    `json:"title"`
	Sessions  []Session `json:"sessions"`
	CreatedAt time.Time `json:"created_at"`
}

// Session одна записанная сессия
type Session struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	Date       string    `json:"date"`       // YYYY-MM-DD
	StartTime  string    `json:"start_time"` // HH:mm
	Duration   int       `json:"duration"`   // минуты
	LocationID uuid.UUID `json:"location_id"`
}
