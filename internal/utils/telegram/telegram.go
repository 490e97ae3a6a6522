package telegram

import (
	"bytes"

	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

const (
	messageLimit = 4096
	captionLimit = 1024
)

// Получение ID чата
func GetChatID(update telego.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	return 0
}

// Получение текста сообщения
func GetMessageText(update telego.Update) string {
	if update.Message != nil {
		return update.Message.Text
	}

	return ""
}

// Получение ID текущего сообщения
func GetCurrentMessageID(update telego.Update) int {
	if update.Message != nil {
		return update.Message.MessageID
	}

	return 0
}

func replyTo(update telego.Update) *telego.ReplyParameters {
	return &telego.ReplyParameters{
		MessageID:                GetCurrentMessageID(update),
		ChatID:                   tu.ID(GetChatID(update)),
		AllowSendingWithoutReply: true,
	}
}

// Отправка текстового ответа
func SendMessage(ctx *th.Context, update telego.Update, text string) int {
	msg, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:          tu.ID(GetChatID(update)),
		Text:            TruncateText(text, messageLimit),
		ReplyParameters: replyTo(update),
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	})
	if err != nil {
		utils.Log.Error(err)

		return 0
	}

	return msg.MessageID
}

// Отправка ролика или аудио прямо из памяти
func SendMedia(ctx *th.Context, update telego.Update, payload *downloaders.MediaPayload, caption string) error {
	file := tu.File(tu.NameReader(bytes.NewReader(payload.Data), payload.FileName))
	caption = TruncateText(caption, captionLimit)

	if payload.MIMEType == downloaders.FormatMP3.MIMEType() {
		_, err := ctx.Bot().SendAudio(ctx, &telego.SendAudioParams{
			ChatID:          tu.ID(GetChatID(update)),
			Audio:           file,
			Caption:         caption,
			ReplyParameters: replyTo(update),
		})

		return err
	}

	_, err := ctx.Bot().SendVideo(ctx, &telego.SendVideoParams{
		ChatID:            tu.ID(GetChatID(update)),
		Video:             file,
		Caption:           caption,
		SupportsStreaming: true,
		ReplyParameters:   replyTo(update),
	})

	return err
}

func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return s
}
