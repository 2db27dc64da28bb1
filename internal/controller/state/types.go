package state

import (
	"time"

	"github.com/google/uuid"
)

// Query запоминает последний запрос дат в чате,
// чтобы нажатие на кнопку с датой знало артиста и локацию
type Query struct {
	ArtistID   uuid.UUID
	LocationID uuid.UUID // uuid.Nil = основная студия
	Duration   int       // минуты
	Break      int       // минуты
	SetAt      time.Time
}
