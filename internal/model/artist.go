package model

import (
	"time"

	"github.com/google/uuid"
)

// Artist тату-мастер вместе с расписаниями для записи
type Artist struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	MainLocationID uuid.UUID `json:"main_location_id"` // студия, где действует обычное расписание

	Schedule     RecurringSchedule `json:"schedule"`
	Consultation RecurringSchedule `json:"consultation"` // отдельное расписание консультаций

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
