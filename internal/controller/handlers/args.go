package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
)

var errBadArgs = errors.New("bad arguments")

const (
	defaultDuration = 60
	defaultWindow   = 28 // дней, если конец периода не указан
	maxDatesPerPick = 14
)

const (
	usageDates      = "Usage: /dates <artist_id> <location_id|-> [from YYYY-MM-DD] [to YYYY-MM-DD]"
	usageConsult    = "Usage: /consultations <artist_id> <location_id|-> [from YYYY-MM-DD] [to YYYY-MM-DD]"
	usageTimes      = "Usage: /times <artist_id> <location_id|-> <date YYYY-MM-DD> [duration_min] [break_min]"
	usageCheckDates = "Usage: /checkdates <artist_id> <client_id|-> <date YYYY-MM-DD> [date ...]"
)

// DatesArgs аргументы /dates и /consultations
type DatesArgs struct {
	ArtistID   uuid.UUID
	LocationID uuid.UUID
	From       string // пусто = сегодня
	To         string // пусто = From + defaultWindow
}

// TimesArgs аргументы /times
type TimesArgs struct {
	ArtistID   uuid.UUID
	LocationID uuid.UUID
	Date       string
	Duration   int
	Break      int
}

// CheckDatesArgs аргументы /checkdates
type CheckDatesArgs struct {
	ArtistID uuid.UUID
	ClientID *uuid.UUID
	Dates    []string
}

// commandArgs отрезает команду (и @botname) и делит остаток по пробелам
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields[1:]
}

func ParseDatesArgs(text string) (DatesArgs, error) {
	args := commandArgs(text)
	if len(args) < 2 || len(args) > 4 {
		return DatesArgs{}, errBadArgs
	}

	var out DatesArgs
	var err error

	if out.ArtistID, err = parseID(args[0]); err != nil {
		return DatesArgs{}, err
	}
	if out.LocationID, err = parseOptionalID(args[1]); err != nil {
		return DatesArgs{}, err
	}
	if len(args) > 2 {
		if out.From, err = parseDate(args[2]); err != nil {
			return DatesArgs{}, err
		}
	}
	if len(args) > 3 {
		if out.To, err = parseDate(args[3]); err != nil {
			return DatesArgs{}, err
		}
	}

	return out, nil
}

// Window заполняет пустые границы периода от today
func (a DatesArgs) Window(today string) (from, to string, err error) {
	from, to = a.From, a.To
	if from == "" {
		from = today
	}
	if to == "" {
		to, err = civil.AddDays(from, defaultWindow-1)
		if err != nil {
			return "", "", err
		}
	}
	return from, to, nil
}

func ParseTimesArgs(text string) (TimesArgs, error) {
	args := commandArgs(text)
	if len(args) < 3 || len(args) > 5 {
		return TimesArgs{}, errBadArgs
	}

	out := TimesArgs{Duration: defaultDuration}
	var err error

	if out.ArtistID, err = parseID(args[0]); err != nil {
		return TimesArgs{}, err
	}
	if out.LocationID, err = parseOptionalID(args[1]); err != nil {
		return TimesArgs{}, err
	}
	if out.Date, err = parseDate(args[2]); err != nil {
		return TimesArgs{}, err
	}
	if len(args) > 3 {
		if out.Duration, err = parseMinutes(args[3]); err != nil {
			return TimesArgs{}, err
		}
		if out.Duration == 0 {
			return TimesArgs{}, fmt.Errorf("%w: duration must be positive", errBadArgs)
		}
	}
	if len(args) > 4 {
		if out.Break, err = parseMinutes(args[4]); err != nil {
			return TimesArgs{}, err
		}
	}

	return out, nil
}

func ParseCheckDatesArgs(text string) (CheckDatesArgs, error) {
	args := commandArgs(text)
	if len(args) < 3 {
		return CheckDatesArgs{}, errBadArgs
	}
	if len(args)-2 > maxDatesPerPick {
		return CheckDatesArgs{}, fmt.Errorf("%w: at most %d dates", errBadArgs, maxDatesPerPick)
	}

	var out CheckDatesArgs
	var err error

	if out.ArtistID, err = parseID(args[0]); err != nil {
		return CheckDatesArgs{}, err
	}
	client, err := parseOptionalID(args[1])
	if err != nil {
		return CheckDatesArgs{}, err
	}
	if client != uuid.Nil {
		out.ClientID = &client
	}

	// формат дат проверяет валидатор, чтобы ответ был тем же, что и в приложении
	out.Dates = append(out.Dates, args[2:]...)

	return out, nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", errBadArgs, s)
	}
	return id, nil
}

// parseOptionalID: "-" = не указано
func parseOptionalID(s string) (uuid.UUID, error) {
	if s == "-" {
		return uuid.Nil, nil
	}
	return parseID(s)
}

func parseDate(s string) (string, error) {
	if !civil.IsValidYmd(s) {
		return "", fmt.Errorf("%w: invalid date %q", errBadArgs, s)
	}
	return s, nil
}

func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid minutes %q", errBadArgs, s)
	}
	return n, nil
}
