package handlers

import (
	"fmt"

	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/metrics"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/valyala/fasthttp"
)

const unsupportedURL = "Unsupported URL"

func (h handler) Info(ctx *fasthttp.RequestCtx) {
	var req downloaders.MediaRequest
	if !decode(ctx, &req) {
		return
	}

	if req.URL == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "URL is required")

		return
	}

	downloader := downloaders.Pick(h.downloaders, req.URL)
	if downloader == nil {
		writeError(ctx, fasthttp.StatusBadRequest, unsupportedURL)

		return
	}

	upstream, cancel := h.upstream()
	defer cancel()

	info, err := downloader.Info(upstream, req.URL)
	if err != nil {
		fail(ctx, downloader.Name(), err)

		return
	}

	writeJSON(ctx, fasthttp.StatusOK, info)
}

func (h handler) Download(ctx *fasthttp.RequestCtx) {
	var req downloaders.MediaRequest
	if !decode(ctx, &req) {
		return
	}

	if req.URL == "" || req.Format == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "URL and format are required")

		return
	}

	downloader := downloaders.Pick(h.downloaders, req.URL)
	if downloader == nil {
		writeError(ctx, fasthttp.StatusBadRequest, unsupportedURL)

		return
	}

	upstream, cancel := h.upstream()
	defer cancel()

	payload, err := downloader.Download(upstream, req)
	if err != nil {
		fail(ctx, downloader.Name(), err)

		return
	}

	if h.counter != nil {
		h.counter.Inc(upstream, downloader.Name())
	}
	metrics.ObserveDownload(downloader.Name(), string(req.Format), payload.Size())

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(payload.MIMEType)
	ctx.Response.Header.Set(fasthttp.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, payload.FileName))
	ctx.Response.Header.Set("X-File-Size", utils.FormatFileSize(int64(payload.Size())))
	ctx.Response.Header.Set(fasthttp.HeaderCacheControl, "no-cache")
	// Content-Length fasthttp выставит по длине тела
	ctx.SetBody(payload.Data)
}
