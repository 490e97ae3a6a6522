package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/metrics"
	"github.com/StounhandJ/clipper/internal/stats"
	"github.com/StounhandJ/clipper/internal/utils"
	telegramUtils "github.com/StounhandJ/clipper/internal/utils/telegram"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/sirupsen/logrus"
)

const (
	startText   = "Пришлите ссылку на YouTube или TikTok, в ответ придёт ролик.\n/mp3 <ссылка> - только звук (YouTube)."
	usageText   = "Не вижу ссылку. Пример: /mp3 https://youtu.be/dQw4w9WgXcQ"
	failText    = "Не получилось: %s"
	tooBigText  = "Файл слишком большой для Telegram (%s, лимит %s)"
	sendingFail = "Не удалось отправить файл"
)

type handler struct {
	downloaders   []downloaders.IDownloader
	counter       *stats.Counter
	timeout       time.Duration
	maxUploadSize int64
}

func NewHandler(downloaders []downloaders.IDownloader, counter *stats.Counter, timeout time.Duration, maxUploadSize int64) handler {
	return handler{
		downloaders:   downloaders,
		counter:       counter,
		timeout:       timeout,
		maxUploadSize: maxUploadSize,
	}
}

func (h handler) SetupRoutes(bh *th.BotHandler) {
	// Базовые действия
	bh.Handle(h.StartCommand, th.CommandEqual("start"))

	bh.Handle(h.Clip, th.AnyMessageWithText())
}

// Стартовое сообщение
func (h handler) StartCommand(ctx *th.Context, update telego.Update) error {
	telegramUtils.SendMessage(ctx, update, startText)

	return nil
}

// Clip скачивает ролик по ссылке из сообщения и отправляет его в чат
func (h handler) Clip(ctx *th.Context, update telego.Update) error {
	req, ok := parseRequest(telegramUtils.GetMessageText(update))
	if !ok {
		telegramUtils.SendMessage(ctx, update, usageText)

		return nil
	}

	downloader := downloaders.Pick(h.downloaders, req.URL)
	if downloader == nil {
		telegramUtils.SendMessage(ctx, update, usageText)

		return nil
	}

	log := utils.Log.WithFields(logrus.Fields{
		"chat":     telegramUtils.GetChatID(update),
		"platform": downloader.Name(),
		"format":   req.Format,
	})

	upstream, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	payload, err := downloader.Download(upstream, req)
	if err != nil {
		_, message := downloaders.StatusOf(err)
		log.Warn(err)
		telegramUtils.SendMessage(ctx, update, fmt.Sprintf(failText, message))

		return nil
	}

	if h.maxUploadSize > 0 && int64(payload.Size()) > h.maxUploadSize {
		telegramUtils.SendMessage(ctx, update, fmt.Sprintf(tooBigText,
			utils.FormatFileSize(int64(payload.Size())), utils.FormatFileSize(h.maxUploadSize)))

		return nil
	}

	if err := telegramUtils.SendMedia(ctx, update, payload, payload.FileName); err != nil {
		log.Error(err)
		telegramUtils.SendMessage(ctx, update, sendingFail)

		return nil
	}

	if h.counter != nil {
		h.counter.Inc(ctx, downloader.Name())
	}
	metrics.ObserveDownload(downloader.Name(), string(req.Format), payload.Size())

	return nil
}
