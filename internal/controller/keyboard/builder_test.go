package keyboard

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_Grid(t *testing.T) {
	buttons := []models.InlineKeyboardButton{
		Button("a", "1"), Button("b", "2"), Button("c", "3"), Button("d", "4"), Button("e", "5"),
	}

	kb := NewBuilder().Grid(buttons, 2).Build()

	assert.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[2], 1)
	assert.Equal(t, "5", kb.InlineKeyboard[2][0].CallbackData)
}

func TestBuilder_EmptyRowsSkipped(t *testing.T) {
	b := NewBuilder().Row().Grid(nil, 3)
	assert.Equal(t, 0, b.Len())
}
