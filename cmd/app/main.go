package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StounhandJ/clipper/internal/bot"
	"github.com/StounhandJ/clipper/internal/config"
	downloadersService "github.com/StounhandJ/clipper/internal/downloaders"
	tiktok "github.com/StounhandJ/clipper/internal/downloaders/tik_tok"
	"github.com/StounhandJ/clipper/internal/downloaders/youtube"
	"github.com/StounhandJ/clipper/internal/handlers"
	"github.com/StounhandJ/clipper/internal/metrics"
	"github.com/StounhandJ/clipper/internal/scratch"
	"github.com/StounhandJ/clipper/internal/stats"
	"github.com/StounhandJ/clipper/internal/transcoder"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
)

const shutdownTimeout = 30 * time.Second

var cfg config.Config

func main() {
	//------ Получение Конфигурации ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel, cfg.Application.LogFormat)
	//---------------//

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//------ HTTP клиент для отправки запросов ------//
	client := http.Client{}

	if cfg.Application.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Application.ProxyURL)
		if err != nil {
			utils.Log.Panic(err)
		}

		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL), // прокси
		}
	}
	//---------------//

	//------ Временные файлы ------//
	space := scratch.New(cfg.Scratch.Dir)
	if err := space.Ensure(); err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	if cfg.Scratch.SweepInterval > 0 {
		go space.RunSweeper(ctx, cfg.Scratch.SweepInterval.Std(), cfg.Scratch.OrphanTTL.Std())
	}

	// без ffmpeg mp3 отдаётся как есть, без перекодирования
	var tc transcoder.Transcoder
	if cfg.Transcoder.FFmpegPath != "" {
		tc = transcoder.New(cfg.Transcoder.FFmpegPath)
	}
	//---------------//

	//------ Счётчики и метрики ------//
	var rdb *redis.Client
	if cfg.Redis.Address != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				utils.Log.Error(err)
			}
		}()

		if err := rdb.Ping(ctx).Err(); err != nil {
			utils.Log.Warn("Redis недоступен, счётчики будут локальными: ", err)
		}
	}

	counter := stats.New(rdb)

	downloaders := []downloadersService.IDownloader{
		tiktok.New(&client, cfg.TikTok.APIURL),
		// YouTube принимает всё остальное, поэтому последним
		youtube.New(&client, space, tc),
	}

	platforms := make([]string, 0, len(downloaders))
	for _, d := range downloaders {
		platforms = append(platforms, d.Name())
	}

	if err := metrics.RegisterTotals(prometheus.DefaultRegisterer, counter, platforms); err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}
	//---------------//

	//------ HTTP сервер ------//
	handler := handlers.NewHandler(downloaders, counter, cfg.Application.UpstreamTimeout.Std())

	server := &fasthttp.Server{
		Name:               "clipper",
		Handler:            handler.Route,
		Concurrency:        cfg.Server.Concurrency,
		ReadTimeout:        cfg.Server.ReadTimeout.Std(),
		WriteTimeout:       cfg.Server.WriteTimeout.Std(),
		MaxRequestBodySize: cfg.Server.MaxRequestBodySize,
	}

	go func() {
		utils.Log.Info("HTTP сервер слушает ", cfg.Server.Listen)

		if err := server.ListenAndServe(cfg.Server.Listen); err != nil {
			utils.Log.Fatal(err)
		}
	}()
	//---------------//

	//------ TELEGRAM бот ------//
	if cfg.Telegram.Token != "" {
		utils.Log.Info("Подключение TG-бота")

		botHandler := bot.NewHandler(downloaders, counter, cfg.Application.UpstreamTimeout.Std(), cfg.Telegram.MaxUploadSize)

		go func() {
			if err := bot.Run(ctx, cfg.Telegram.Token, cfg.Application.LogLevel == "debug", botHandler); err != nil {
				utils.Log.Error(err)
			}
		}()
	}
	//---------------//

	//------ Ожидание завершения программы ------//
	utils.Log.Info("Всё запущено")

	<-ctx.Done()

	utils.Log.Info("Остановка")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		utils.Log.Error(err)
	}
}
