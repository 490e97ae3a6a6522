package telegram

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"
)

func TestTruncateText(t *testing.T) {
	require.Equal(t, "abc", TruncateText("abc", 10))
	require.Equal(t, "При", TruncateText("Привет", 3))
	require.Empty(t, TruncateText("", 3))
}

func TestUpdateAccessors(t *testing.T) {
	empty := telego.Update{}
	require.Zero(t, GetChatID(empty))
	require.Empty(t, GetMessageText(empty))
	require.Zero(t, GetCurrentMessageID(empty))

	update := telego.Update{Message: &telego.Message{
		MessageID: 7,
		Chat:      telego.Chat{ID: 42},
		Text:      "https://youtu.be/dQw4w9WgXcQ",
	}}
	require.Equal(t, int64(42), GetChatID(update))
	require.Equal(t, "https://youtu.be/dQw4w9WgXcQ", GetMessageText(update))
	require.Equal(t, 7, GetCurrentMessageID(update))
}
