package model

import (
	"encoding/json"
	"fmt"
)

// WeekdayCode короткое имя дня недели, ключ в расписаниях
type WeekdayCode string

const (
	Sunday    WeekdayCode = "sun"
	Monday    WeekdayCode = "mon"
	Tuesday   WeekdayCode = "tue"
	Wednesday WeekdayCode = "wed"
	Thursday  WeekdayCode = "thu"
	Friday    WeekdayCode = "fri"
	Saturday  WeekdayCode = "sat"
)

// Weekdays индексируется time.Weekday (0 = воскресенье)
var Weekdays = [7]WeekdayCode{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Valid один ли c из семи известных кодов
func (c WeekdayCode) Valid() bool {
	for _, w := range Weekdays {
		if w == c {
			return true
		}
	}
	return false
}

// WeekdaySet множество дней недели
type WeekdaySet map[WeekdayCode]struct{}

// NewWeekdaySet собирает множество из кодов
func NewWeekdaySet(codes ...WeekdayCode) WeekdaySet {
	set := make(WeekdaySet, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// Has есть ли c в множестве. nil множество пустое
func (s WeekdaySet) Has(c WeekdayCode) bool {
	_, ok := s[c]
	return ok
}

// Codes элементы по порядку, начиная с воскресенья
func (s WeekdaySet) Codes() []WeekdayCode {
	codes := make([]WeekdayCode, 0, len(s))
	for _, w := range Weekdays {
		if s.Has(w) {
			codes = append(codes, w)
		}
	}
	return codes
}

// MarshalJSON кодирует множество упорядоченным списком: ["mon","wed"]
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Codes())
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var codes []WeekdayCode
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	set := make(WeekdaySet, len(codes))
	for _, c := range codes {
		if !c.Valid() {
			return fmt.Errorf("unknown weekday %q", c)
		}
		set[c] = struct{}{}
	}
	*s = set
	return nil
}

// RecurringSchedule недельное расписание артиста и правила записи
type RecurringSchedule struct {
	WorkDays   WeekdaySet             `json:"work_days"`
	StartTimes map[WeekdayCode]string `json:"start_times"` // "HH:mm"
	EndTimes   map[WeekdayCode]string `json:"end_times"`   // "HH:mm"

	MultipleSessionsEnabled bool `json:"multiple_sessions_enabled"`
	SessionsPerDay          int  `json:"sessions_per_day"`

	BackToBackEnabled bool `json:"back_to_back_enabled"`
	MaxBackToBack     int  `json:"max_back_to_back"` // 0 = без ограничений

	BufferBetweenSessionsDays int `json:"buffer_between_sessions_days"`
}

// HoursFor рабочие часы по умолчанию для дня недели.
// Только для рабочих дней и только если заданы оба времени.
func (s *RecurringSchedule) HoursFor(day WeekdayCode) (start, end string, ok bool) {
	if !s.WorkDays.Has(day) {
		return "", "", false
	}
	start, okStart := s.StartTimes[day]
	end, okEnd := s.EndTimes[day]
	if !okStart || !okEnd || start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}
