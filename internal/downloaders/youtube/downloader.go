package youtube

import (
	"context"
	"io"
	"net/http"

	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/scratch"
	"github.com/StounhandJ/clipper/internal/transcoder"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/kkdai/youtube/v2"
	"github.com/sirupsen/logrus"
)

const (
	invalidURL      = "Invalid YouTube URL"
	infoFailed      = "Failed to get video info"
	invalidFormat   = `Invalid format. Use "mp4" or "mp3"`
	noQuality       = "Requested quality is not available"
	unknownSize     = "Unknown"
	downloaderName  = "youtube"
	defaultFileName = "video"
	defaultAudio    = "audio"
)

// client - то, что нужно от youtube.Client
type client interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

type downloader struct {
	client     client
	space      *scratch.Space
	transcoder transcoder.Transcoder
}

// New transcoder может быть nil - тогда аудио отдаётся как есть
func New(httpClient *http.Client, space *scratch.Space, tc transcoder.Transcoder) downloaders.IDownloader {
	return newDownloader(&youtube.Client{HTTPClient: httpClient}, space, tc)
}

func newDownloader(c client, space *scratch.Space, tc transcoder.Transcoder) *downloader {
	return &downloader{
		client:     c,
		space:      space,
		transcoder: tc,
	}
}

func (downloader) Name() string {
	return downloaderName
}

// Valid всё, что не забрали остальные загрузчики, считается ссылкой на YouTube
func (downloader) Valid(string) bool {
	return true
}

func (d downloader) Info(ctx context.Context, url string) (*downloaders.MediaInfo, error) {
	if _, err := parseVideoID(url); err != nil {
		return nil, downloaders.BadRequest(invalidURL, err)
	}

	video, err := d.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, downloaders.Internal(infoFailed, err)
	}

	info := &downloaders.MediaInfo{
		Title:              video.Title,
		Author:             video.Author,
		LengthSeconds:      int64(video.Duration.Seconds()),
		ViewCount:          int64(video.Views),
		Description:        video.Description,
		IsLiveContent:      video.HLSManifestURL != "",
		EstimatedVideoSize: unknownSize,
		EstimatedAudioSize: unknownSize,
	}

	if len(video.Thumbnails) > 0 {
		info.Thumbnail = video.Thumbnails[0].URL
	}

	if best := sortVideo(muxed(video.Formats)); len(best) > 0 {
		info.EstimatedVideoSize = formatSize(best[0].ContentLength)
	}

	if best := sortAudio(audioOnly(video.Formats)); len(best) > 0 {
		info.EstimatedAudioSize = formatSize(best[0].ContentLength)
	}

	return info, nil
}

func (d downloader) Download(ctx context.Context, req downloaders.MediaRequest) (*downloaders.MediaPayload, error) {
	if _, err := parseVideoID(req.URL); err != nil {
		return nil, downloaders.BadRequest(invalidURL, err)
	}

	format, err := downloaders.ParseFormat(string(req.Format))
	if err != nil {
		return nil, downloaders.BadRequest(invalidFormat, err)
	}

	video, err := d.client.GetVideoContext(ctx, req.URL)
	if err != nil {
		return nil, downloaders.Internal(infoFailed, err)
	}

	kind, fallbackName := "video", defaultFileName
	candidates := sortVideo(mp4Only(muxed(video.Formats)))
	if format == downloaders.FormatMP3 {
		kind, fallbackName = "audio", defaultAudio
		candidates = sortAudio(audioOnly(video.Formats))
	}

	rendition := selectFormat(candidates, req.Quality)
	if rendition == nil {
		return nil, downloaders.BadRequest(noQuality, nil)
	}

	log := utils.Log.WithFields(logrus.Fields{
		"url":     req.URL,
		"itag":    rendition.ItagNo,
		"quality": utils.StringNotEmptyCoalesce(rendition.QualityLabel, rendition.Quality),
		"format":  format,
	})

	stream, _, err := d.client.GetStreamContext(ctx, video, rendition)
	if err != nil {
		return nil, downloaders.Internal("Failed to download "+kind, err)
	}

	path, err := d.spool(stream, format, rendition)
	if err != nil {
		return nil, downloaders.Internal("Failed to download "+kind, err)
	}

	if format == downloaders.FormatMP3 && d.transcoder != nil {
		path, err = d.toMP3(ctx, path)
		if err != nil {
			return nil, downloaders.Internal("Failed to process "+kind, err)
		}
	}

	data, err := d.space.Drain(path)
	if err != nil {
		return nil, downloaders.Internal("Failed to process "+kind, err)
	}

	log.WithField("size", len(data)).Debug("YouTube ролик получен")

	fileName := utils.SanitizeFileName(video.Title)
	if fileName == "" {
		fileName = fallbackName
	}

	return &downloaders.MediaPayload{
		Data:     data,
		FileName: fileName + "." + string(format),
		MIMEType: format.MIMEType(),
	}, nil
}

func (d downloader) spool(stream io.ReadCloser, format downloaders.Format, rendition *youtube.Format) (string, error) {
	defer func() {
		if err := stream.Close(); err != nil {
			utils.Log.Warn("Закрытие потока YouTube: ", err)
		}
	}()

	ext := string(format)
	if format == downloaders.FormatMP3 && d.transcoder != nil {
		ext = containerExt(rendition.MimeType)
	}

	return d.space.Spool(stream, ext)
}

// toMP3 перекодирует аудиодорожку, исходный файл удаляется в любом случае
func (d downloader) toMP3(ctx context.Context, in string) (string, error) {
	defer d.space.Remove(in)

	out := d.space.Path(string(downloaders.FormatMP3))
	if err := d.transcoder.ToMP3(ctx, in, out); err != nil {
		d.space.Remove(out)

		return "", err
	}

	return out, nil
}

func formatSize(size int64) string {
	if size <= 0 {
		return unknownSize
	}

	return utils.FormatFileSize(size)
}
