package handlers

import (
	"errors"

	"github.com/danielleeas/simple-tattooer-sub000/internal/availability"
	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
	"github.com/danielleeas/simple-tattooer-sub000/internal/service"
)

// errorText переводит ошибку сервиса в текст для пользователя
func errorText(err error) string {
	switch {
	case errors.Is(err, service.ErrArtistNotFound):
		return "❌ Artist not found."
	case errors.Is(err, civil.ErrInvalidDate):
		return "❌ Invalid date. Use YYYY-MM-DD."
	case errors.Is(err, availability.ErrUnexpected):
		return "❌ Something went wrong. Please try again."
	default:
		return "❌ Availability is temporarily unavailable. Please try again later."
	}
}

// usageText добавляет подсказку к ошибке разбора аргументов
func usageText(err error, usage string) string {
	msg := "❌ " + err.Error()
	if errors.Is(err, errBadArgs) && err.Error() == errBadArgs.Error() {
		msg = "❌ Wrong arguments."
	}
	return msg + "\n\n" + usage
}
