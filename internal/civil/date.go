// Package civil работает с локальными датами ("YYYY-MM-DD") и временем ("HH:mm")
// без часовых поясов.
package civil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

const (
	YmdLayout      = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"

	MinutesPerDay = 24 * 60
	msPerDay      = 86_400_000
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// ToYmd форматирует t как YYYY-MM-DD в его собственном поясе
func ToYmd(t time.Time) string {
	return t.Format(YmdLayout)
}

// ParseYmd парсит YYYY-MM-DD в полночь локального пояса
func ParseYmd(s string) (time.Time, error) {
	return ParseYmdIn(s, time.Local)
}

// ParseYmdIn парсит YYYY-MM-DD в полночь пояса loc
func ParseYmdIn(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(YmdLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// IsValidYmd проверяет, что s корректная дата
func IsValidYmd(s string) bool {
	_, err := time.Parse(YmdLayout, s)
	return err == nil
}

// Today текущая дата в поясе loc
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return ToYmd(now)
}

// EachDateInclusive перечисляет даты от start до end включительно.
// nil, если граница битая или start позже end.
func EachDateInclusive(startYmd, endYmd string) []string {
	start, err := time.Parse(YmdLayout, startYmd)
	if err != nil {
		return nil
	}
	end, err := time.Parse(YmdLayout, endYmd)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(YmdLayout))
	}
	return dates
}

// WeekdayCodeOf код дня недели для даты, "" при битом вводе
func WeekdayCodeOf(ymd string) model.WeekdayCode {
	t, err := time.Parse(YmdLayout, ymd)
	if err != nil {
		return ""
	}
	return model.Weekdays[t.Weekday()]
}

// DayIndex число целых дней от Unix epoch от полуночи UTC,
// поэтому разница индексов не зависит от перехода на летнее время
func DayIndex(ymd string) (int64, error) {
	t, err := time.ParseInLocation(YmdLayout, ymd, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, ymd)
	}
	ms := t.UnixMilli()
	idx := ms / msPerDay
	if ms%msPerDay < 0 {
		idx--
	}
	return idx, nil
}

// DaysBetween возвращает DayIndex(b) - DayIndex(a)
func DaysBetween(a, b string) (int64, error) {
	ia, err := DayIndex(a)
	if err != nil {
		return 0, err
	}
	ib, err := DayIndex(b)
	if err != nil {
		return 0, err
	}
	return ib - ia, nil
}

// SplitDateTime делит "YYYY-MM-DD HH:mm" на дату и время
func SplitDateTime(v string) (ymd, hhmm string, err error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(v))
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return t.Format(YmdLayout), t.Format("15:04"), nil
}

// JoinDateTime собирает значение "YYYY-MM-DD HH:mm"
func JoinDateTime(ymd, hhmm string) string {
	return ymd + " " + hhmm
}

// AddDays сдвигает ymd на n дней
func AddDays(ymd string, n int) (string, error) {
	t, err := time.Parse(YmdLayout, ymd)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, ymd)
	}
	return t.AddDate(0, 0, n).Format(YmdLayout), nil
}
