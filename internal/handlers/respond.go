package handlers

import (
	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/mailru/easyjson"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

func decode(ctx *fasthttp.RequestCtx, v easyjson.Unmarshaler) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body")

		return false
	}

	if err := easyjson.Unmarshal(body, v); err != nil {
		utils.Log.Debug("Некорректное тело запроса: ", err)
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body")

		return false
	}

	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	body, err := easyjson.Marshal(v)
	if err != nil {
		utils.Log.Error(err)
		ctx.Error(`{"error":"Internal server error"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")

		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, downloaders.ErrorResponse{Error: message})
}

// fail пишет ответ по ошибке загрузчика, причина остаётся только в логах
func fail(ctx *fasthttp.RequestCtx, platform string, err error) {
	status, message := downloaders.StatusOf(err)

	entry := utils.Log.WithFields(logrus.Fields{
		"platform": platform,
		"path":     string(ctx.Path()),
		"status":   status,
	})
	if status >= fasthttp.StatusInternalServerError {
		entry.Error(err)
	} else {
		entry.Warn(err)
	}

	writeError(ctx, status, message)
}
