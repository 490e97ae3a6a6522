package bot

import (
	"context"
	"fmt"

	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// Run запускает long polling и блокируется до отмены ctx
func Run(ctx context.Context, token string, debug bool, h handler) error {
	bot, err := telego.NewBot(token, telego.WithDefaultLogger(debug, true))
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	user, err := bot.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("get me: %w", err)
	}

	// Обработка сообщений ботом, канал закроется при отмене ctx
	updates, err := bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return fmt.Errorf("long polling: %w", err)
	}

	bh, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return fmt.Errorf("bot handler: %w", err)
	}

	h.SetupRoutes(bh)

	utils.Log.Infof("TG БОТ ID=%d имя=%s username=@%s", user.ID, user.FirstName, user.Username)

	return bh.Start()
}
