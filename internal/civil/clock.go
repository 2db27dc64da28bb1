package civil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHhMmToMinutes переводит "HH:mm" в минуты от полуночи.
// Секунды ("HH:mm:ss") допускаются и отбрасываются. ok = false при битом вводе.
func ParseHhMmToMinutes(s string) (minutes int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, false
	}

	return h*60 + m, true
}

// MinutesToHhMm форматирует минуты от полуночи как "HH:mm" с ведущими нулями
func MinutesToHhMm(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesToDisplay форматирует минуты от полуночи как "h:mm AM/PM"
func MinutesToDisplay(minutes int) string {
	h := (minutes / 60) % 24
	m := minutes % 60

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}
