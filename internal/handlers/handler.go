package handlers

import (
	"context"
	"time"

	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/metrics"
	"github.com/StounhandJ/clipper/internal/stats"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	routeInfo     = "/info"
	routeDownload = "/download"
	routeHealth   = "/health"
	routeMetrics  = "/metrics"
)

type handler struct {
	downloaders []downloaders.IDownloader
	counter     *stats.Counter
	timeout     time.Duration
	metrics     fasthttp.RequestHandler
}

// NewHandler timeout ограничивает время на один запрос к YouTube или зеркалу TikTok
func NewHandler(downloaders []downloaders.IDownloader, counter *stats.Counter, timeout time.Duration) handler {
	return handler{
		downloaders: downloaders,
		counter:     counter,
		timeout:     timeout,
		metrics:     fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Route точка входа для fasthttp.Server
func (h handler) Route(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())
	endpoint := path

	switch path {
	case routeInfo:
		h.post(ctx, h.Info)
	case routeDownload:
		h.post(ctx, h.Download)
	case routeHealth:
		h.get(ctx, h.Health)
	case routeMetrics:
		h.get(ctx, h.metrics)
	default:
		endpoint = "other"
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	elapsed := time.Since(start)
	status := ctx.Response.StatusCode()

	metrics.ObserveRequest(endpoint, status, elapsed)

	if path == routeMetrics || path == routeHealth {
		return
	}

	utils.Log.WithFields(logrus.Fields{
		"method":   string(ctx.Method()),
		"path":     path,
		"status":   status,
		"duration": elapsed.String(),
		"remote":   ctx.RemoteIP().String(),
	}).Info("HTTP запрос")
}

func (h handler) Health(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"status":"ok"}`)
}

func (h handler) post(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodPost)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")

		return
	}

	next(ctx)
}

func (h handler) get(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsGet() && !ctx.IsHead() {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodGet)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")

		return
	}

	next(ctx)
}

// upstream контекст для внешних запросов.
// RequestCtx не годится: fasthttp переиспользует его между запросами.
func (h handler) upstream() (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(context.Background())
	}

	return context.WithTimeout(context.Background(), h.timeout)
}
