//go:generate easyjson api.go
package tiktok

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	netUrl "net/url"

	"github.com/StounhandJ/clipper/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

const (
	BaseUrl = "https://tikwm.com/api/"
)

var (
	ErrRateLimit = errors.New("rate limit exceeded")
	ErrParse     = errors.New("parse error")
	ErrUnknown   = errors.New("unknown error")
	ErrNoData    = errors.New("response without data")
)

var userAgents = []string{
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 YaBrowser/25.10.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.0 Safari/605.1.15",
}

// MirrorError - зеркало ответило, но отказало (code != 0 или нет data)
type MirrorError struct {
	Msg string
	Err error
}

func (e *MirrorError) Error() string {
	return fmt.Sprintf("tikwm: %s (%v)", e.Msg, e.Err)
}

func (e *MirrorError) Unwrap() error {
	return e.Err
}

func userAgent() string {
	ua, err := utils.RandomElement(userAgents)
	if err != nil {
		return ""
	}

	return ua
}

func fetchMetadata(ctx context.Context, client *http.Client, apiURL, postUrl string) (*VideoData, error) {
	requestURL := fmt.Sprintf("%s?url=%s", apiURL, netUrl.QueryEscape(postUrl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data ApiResponse

	if err = easyjson.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode tikwm response (http %d): %w", resp.StatusCode, err)
	}

	if data.Code != 0 {
		switch {
		case strings.HasPrefix(data.Msg, "Free Api Limit"):
			return nil, &MirrorError{Msg: data.Msg, Err: ErrRateLimit}
		case strings.HasPrefix(data.Msg, "Url parsing is failed"):
			return nil, &MirrorError{Msg: data.Msg, Err: ErrParse}
		default:
			return nil, &MirrorError{Msg: data.Msg, Err: ErrUnknown}
		}
	}

	if data.Data == nil {
		return nil, &MirrorError{Msg: data.Msg, Err: ErrNoData}
	}

	resolveLinks(data.Data, apiURL)

	return data.Data, nil
}

// fetchFile скачивает ролик целиком в память
func fetchFile(ctx context.Context, client *http.Client, link string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent())

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("media host answered %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// easyjson:json
type ApiResponse struct {
	Code          int        `json:"code"`
	Msg           string     `json:"msg"`
	ProcessedTime float64    `json:"processed_time,omitempty"`
	Data          *VideoData `json:"data,omitempty"`
}

// easyjson:json
type VideoData struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Cover       string `json:"cover,omitempty"`
	OriginCover string `json:"origin_cover,omitempty"`
	Duration    int64  `json:"duration,omitempty"`
	Play        string `json:"play,omitempty"`
	URL         string `json:"url,omitempty"`
	Wmplay      string `json:"wmplay,omitempty"`
	Hdplay      string `json:"hdplay,omitempty"`
	Size        int64  `json:"size,omitempty"`
	WmSize      int64  `json:"wm_size,omitempty"`
	HdSize      int64  `json:"hd_size,omitempty"`
	PlayCount   int64  `json:"play_count,omitempty"`
	Author      Author `json:"author,omitempty"`
}

// easyjson:json
type Author struct {
	ID       string `json:"id,omitempty"`
	UniqueID string `json:"unique_id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// DownloadURL порядок предпочтения: play, url, wmplay, hdplay
func (d VideoData) DownloadURL() string {
	return utils.StringNotEmptyCoalesce(d.Play, d.URL, d.Wmplay, d.Hdplay)
}

func (d VideoData) Thumbnail() string {
	return utils.StringNotEmptyCoalesce(d.Cover, d.OriginCover)
}

// tikwm иногда отдаёт относительные ссылки вида /video/media/play/...
func resolveLinks(d *VideoData, apiURL string) {
	base, err := netUrl.Parse(apiURL)
	if err != nil {
		return
	}

	for _, link := range []*string{&d.Play, &d.URL, &d.Wmplay, &d.Hdplay, &d.Cover, &d.OriginCover} {
		if !strings.HasPrefix(*link, "/") || strings.HasPrefix(*link, "//") {
			continue
		}

		ref, err := netUrl.Parse(*link)
		if err != nil {
			continue
		}

		*link = base.ResolveReference(ref).String()
	}
}
