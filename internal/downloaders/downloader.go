//go:generate easyjson downloader.go
package downloaders

import (
	"context"
	"fmt"
)

type IDownloader interface {
	Name() string
	Valid(url string) bool
	Info(ctx context.Context, url string) (*MediaInfo, error)
	Download(ctx context.Context, req MediaRequest) (*MediaPayload, error)
}

// Pick возвращает первый загрузчик, принимающий ссылку
func Pick(downloaders []IDownloader, url string) IDownloader {
	for _, d := range downloaders {
		if d.Valid(url) {
			return d
		}
	}

	return nil
}

type Format string

const (
	FormatMP4 Format = "mp4"
	FormatMP3 Format = "mp3"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMP4, FormatMP3:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

func (f Format) MIMEType() string {
	if f == FormatMP3 {
		return "audio/mpeg"
	}

	return "video/mp4"
}

// easyjson:json
type MediaRequest struct {
	URL     string `json:"url"`
	Format  Format `json:"format"`
	Quality string `json:"quality,omitempty"`
}

// easyjson:json
type MediaInfo struct {
	Title              string `json:"title"`
	Author             string `json:"author"`
	LengthSeconds      int64  `json:"lengthSeconds"`
	ViewCount          int64  `json:"viewCount"`
	Thumbnail          string `json:"thumbnail"`
	Description        string `json:"description"`
	IsPrivate          bool   `json:"isPrivate"`
	IsLiveContent      bool   `json:"isLiveContent"`
	EstimatedVideoSize string `json:"estimatedVideoSize"`
	EstimatedAudioSize string `json:"estimatedAudioSize"`
}

// easyjson:json
type ErrorResponse struct {
	Error string `json:"error"`
}

// MediaPayload живёт ровно один ответ
type MediaPayload struct {
	Data     []byte
	FileName string
	MIMEType string
}

func (p MediaPayload) Size() int {
	return len(p.Data)
}
