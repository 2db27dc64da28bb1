package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const ymdLayout = "2006-01-02"

var errEmptyRange = errors.New("start date is after end date")

// OffDay исключает все даты [StartDate, EndDate] на всех локациях
type OffDay struct {
	ID        uuid.UUID `json:"id"`
	ArtistID  uuid.UUID `json:"artist_id"`
	Title     string    `json:"title"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

func (o *OffDay) Validate() error {
	return validateRange(o.StartDate, o.EndDate)
}

// TempChange заменяет рабочие дни и часы на одной локации на период
type TempChange struct {
	ID         uuid.UUID              `json:"id"`
	ArtistID   uuid.UUID              `json:"artist_id"`
	StartDate  string                 `json:"start_date"`
	EndDate    string                 `json:"end_date"`
	WorkDays   WeekdaySet             `json:"work_days"`
	StartTimes map[WeekdayCode]string `json:"start_times"`
	EndTimes   map[WeekdayCode]string `json:"end_times"`
	LocationID uuid.UUID              `json:"location_id"`
}

func (t *TempChange) Validate() error {
	if err := validateRange(t.StartDate, t.EndDate); err != nil {
		return err
	}
	if t.LocationID == uuid.Nil {
		return errors.New("location is required")
	}
	for day := range t.WorkDays {
		if !day.Valid() {
			return fmt.Errorf("unknown weekday %q", day)
		}
	}
	return nil
}

// Covers попадает ли ymd в период изменения
func (t *TempChange) Covers(ymd string) bool {
	return t.StartDate <= ymd && ymd <= t.EndDate
}

// SpotConvention гостевой спот: явный список дат на одной локации
type SpotConvention struct {
	ID         uuid.UUID         `json:"id"`
	ArtistID   uuid.UUID         `json:"artist_id"`
	Title      string            `json:"title"`
	Dates      []string          `json:"dates"`
	StartTimes map[string]string `json:"start_times"` // ключ YYYY-MM-DD
	EndTimes   map[string]string `json:"end_times"`
	LocationID uuid.UUID         `json:"location_id"`
}

func (s *SpotConvention) Validate() error {
	if s.LocationID == uuid.Nil {
		return errors.New("location is required")
	}
	for _, d := range s.Dates {
		if _, err := time.Parse(ymdLayout, d); err != nil {
			return fmt.Errorf("invalid date %q", d)
		}
	}
	return nil
}

// HasDate входит ли ymd в даты спота
func (s *SpotConvention) HasDate(ymd string) bool {
	for _, d := range s.Dates {
		if d == ymd {
			return true
		}
	}
	return false
}

func validateRange(start, end string) error {
	s, err := time.Parse(ymdLayout, start)
	if err != nil {
		return fmt.Errorf("invalid start date %q", start)
	}
	e, err := time.Parse(ymdLayout, end)
	if err != nil {
		return fmt.Errorf("invalid end date %q", end)
	}
	if s.After(e) {
		return errEmptyRange
	}
	return nil
}
