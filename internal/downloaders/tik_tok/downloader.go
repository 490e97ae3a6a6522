package tiktok

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/gabriel-vasile/mimetype"
)

const (
	defaultTitle    = "TikTok Video"
	defaultFileName = "tiktok-video"
	unknownSize     = "Unknown"
	audioSizeTikTok = "N/A (TikTok)"
	infoFailed      = "Failed to fetch TikTok info"
	videoFailed     = "Failed to fetch TikTok video"
	fileFailed      = "Failed to fetch TikTok video file."
	noVideo         = "No downloadable video found."
	onlyMP4         = "Only MP4 download is supported for TikTok."
	downloaderName  = "tiktok"
)

// tiktok.com, www./m. и короткие ссылки vm./vt.
var urlPattern = regexp.MustCompile(`(?i)(?:^|[/.])tiktok\.com/`)

type downloader struct {
	client *http.Client
	apiURL string
}

func New(client *http.Client, apiURL string) downloaders.IDownloader {
	if apiURL == "" {
		apiURL = BaseUrl
	}

	return &downloader{
		client: client,
		apiURL: apiURL,
	}
}

func (downloader) Name() string {
	return downloaderName
}

func (downloader) Valid(url string) bool {
	return urlPattern.MatchString(url)
}

func (d downloader) Info(ctx context.Context, url string) (*downloaders.MediaInfo, error) {
	metadata, err := fetchMetadata(ctx, d.client, d.apiURL, url)
	if err != nil {
		return nil, mirrorFailure(err, infoFailed)
	}

	videoSize := unknownSize
	if metadata.Size > 0 {
		videoSize = utils.FormatFileSize(metadata.Size)
	}

	return &downloaders.MediaInfo{
		Title:              utils.StringNotEmptyCoalesce(metadata.Title, defaultTitle),
		Author:             utils.StringNotEmptyCoalesce(metadata.Author.Nickname, "Unknown"),
		LengthSeconds:      metadata.Duration,
		ViewCount:          metadata.PlayCount,
		Thumbnail:          metadata.Thumbnail(),
		Description:        metadata.Title,
		EstimatedVideoSize: videoSize,
		EstimatedAudioSize: audioSizeTikTok,
	}, nil
}

func (d downloader) Download(ctx context.Context, req downloaders.MediaRequest) (*downloaders.MediaPayload, error) {
	if req.Format != downloaders.FormatMP4 {
		return nil, downloaders.BadRequest(onlyMP4, nil)
	}

	metadata, err := fetchMetadata(ctx, d.client, d.apiURL, req.URL)
	if err != nil {
		return nil, mirrorFailure(err, videoFailed)
	}

	link := metadata.DownloadURL()
	if link == "" {
		return nil, downloaders.BadRequest(noVideo, nil)
	}

	data, err := fetchFile(ctx, d.client, link)
	if err != nil {
		return nil, downloaders.Internal(fileFailed, err)
	}

	// Зеркало может вернуть html-страницу с ошибкой вместо ролика
	if mt := mimetype.Detect(data); !strings.HasPrefix(mt.String(), "video/") {
		return nil, downloaders.Internal(fileFailed, errors.New("unexpected payload type "+mt.String()))
	}

	utils.Log.WithField("size", len(data)).Debug("TikTok ролик получен: ", req.URL)

	fileName := utils.SanitizeFileName(utils.StringNotEmptyCoalesce(metadata.Title, defaultFileName))
	if fileName == "" {
		fileName = defaultFileName
	}

	return &downloaders.MediaPayload{
		Data:     data,
		FileName: fileName + "." + string(downloaders.FormatMP4),
		MIMEType: downloaders.FormatMP4.MIMEType(),
	}, nil
}

// mirrorFailure: отказ зеркала - ошибка запроса (400), сбой сети/разбора - 500
func mirrorFailure(err error, fallback string) error {
	var mirrorErr *MirrorError
	if errors.As(err, &mirrorErr) {
		return downloaders.BadRequest(utils.StringNotEmptyCoalesce(mirrorErr.Msg, fallback), err)
	}

	return downloaders.Internal(fallback, err)
}
