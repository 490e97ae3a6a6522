package bot

import (
	"strings"

	"github.com/StounhandJ/clipper/internal/downloaders"
)

// parseRequest разбирает "<url>", "/mp4 <url> [quality]" и "/mp3 <url> [quality]"
func parseRequest(text string) (downloaders.MediaRequest, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return downloaders.MediaRequest{}, false
	}

	req := downloaders.MediaRequest{Format: downloaders.FormatMP4}

	if command, ok := strings.CutPrefix(fields[0], "/"); ok {
		// /mp3@clipper_bot в группах
		command, _, _ = strings.Cut(command, "@")

		format, err := downloaders.ParseFormat(strings.ToLower(command))
		if err != nil {
			return downloaders.MediaRequest{}, false
		}

		req.Format = format
		fields = fields[1:]
	}

	if len(fields) == 0 || !isAllowedURL(fields[0]) {
		return downloaders.MediaRequest{}, false
	}

	req.URL = fields[0]
	if len(fields) > 1 {
		req.Quality = fields[1]
	}

	return req, true
}

// isAllowedURL максимально быстрая проверка, что это вообще ссылка
func isAllowedURL(s string) bool {
	// Минимальная длина: http://youtu.be/X
	if len(s) < 17 {
		return false
	}

	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
