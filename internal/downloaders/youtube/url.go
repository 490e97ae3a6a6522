package youtube

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	errNotYouTube = errors.New("not a YouTube domain")
	errNoVideoID  = errors.New("no video id found")
	errBadVideoID = errors.New("malformed video id")
)

// домены, где id передаётся параметром v
var queryHosts = map[string]bool{
	"youtube.com":        true,
	"www.youtube.com":    true,
	"m.youtube.com":      true,
	"music.youtube.com":  true,
	"gaming.youtube.com": true,
}

var (
	pathHosts = regexp.MustCompile(`^https?://(youtu\.be/|(www\.)?youtube\.com/(embed|v|shorts)/)`)
	videoID   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// parseVideoID достаёт id ролика: watch?v=, youtu.be/<id>, /embed|v|shorts/<id>
func parseVideoID(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}

	id := parsed.Query().Get("v")

	switch {
	case pathHosts.MatchString(raw) && id == "":
		paths := strings.Split(parsed.Path, "/")
		if parsed.Hostname() == "youtu.be" {
			id = paths[1]
		} else if len(paths) > 2 {
			id = paths[2]
		}
	case !queryHosts[strings.ToLower(parsed.Hostname())]:
		return "", errNotYouTube
	}

	if id == "" {
		return "", errNoVideoID
	}

	if len(id) > 11 {
		id = id[:11]
	}

	if !videoID.MatchString(id) {
		return "", errBadVideoID
	}

	return id, nil
}
