package handlers

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
	"github.com/danielleeas/simple-tattooer-sub000/internal/controller/keyboard"
	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
)

const callbackDatePrefix = "d:"

var weekdayNames = map[model.WeekdayCode]string{
	model.Sunday:    "Sun",
	model.Monday:    "Mon",
	model.Tuesday:   "Tue",
	model.Wednesday: "Wed",
	model.Thursday:  "Thu",
	model.Friday:    "Fri",
	model.Saturday:  "Sat",
}

// FormatDates форматирует список дат с днями недели
func FormatDates(title string, dates []string) string {
	if len(dates) == 0 {
		return title + "\n\nNo available dates in this period."
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	for _, d := range dates {
		fmt.Fprintf(&sb, "\n• %s (%s)", d, weekdayNames[civil.WeekdayCodeOf(d)])
	}
	return sb.String()
}

// FormatTimes форматирует стартовые времена на дату
func FormatTimes(date string, duration int, options []model.TimeOption) string {
	header := fmt.Sprintf("Start times on %s for %s", date, FormatDuration(duration))
	if len(options) == 0 {
		return header + "\n\nNo free time on this date."
	}

	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.Label)
	}
	return header + ":\n\n" + strings.Join(labels, "\n")
}

// FormatVerdict форматирует результат проверки дат
func FormatVerdict(v model.Verdict) string {
	if v.OK {
		return "✅ These dates can be booked."
	}
	return "❌ " + v.Error
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %d min", hours, mins)
}

// DatesKeyboard кнопки для первых дат; нажатие показывает времена
func DatesKeyboard(dates []string) *models.InlineKeyboardMarkup {
	if len(dates) == 0 {
		return nil
	}
	if len(dates) > maxDatesPerPick {
		dates = dates[:maxDatesPerPick]
	}

	buttons := make([]models.InlineKeyboardButton, 0, len(dates))
	for _, d := range dates {
		buttons = append(buttons, keyboard.Button(d[5:], callbackDatePrefix+d))
	}
	return keyboard.NewBuilder().Grid(buttons, 4).Build()
}
