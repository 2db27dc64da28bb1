package model

// TimeOption доступное время начала
type TimeOption struct {
	Value string `json:"value"` // HH:mm
	Label string `json:"label"` // h:mm AM/PM
}

// Verdict результат проверки выбора нескольких дат.
// Error показывается пользователю как есть.
type Verdict struct {
	OK    bool   `json:"success"`
	Error string `json:"error,omitempty"`
}

// Reject отказ с сообщением
func Reject(msg string) Verdict {
	return Verdict{OK: false, Error: msg}
}

// Accept выбор без конфликтов
func Accept() Verdict {
	return Verdict{OK: true}
}
