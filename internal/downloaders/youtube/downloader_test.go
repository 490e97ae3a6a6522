package youtube

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/StounhandJ/clipper/internal/downloaders"
	"github.com/StounhandJ/clipper/internal/scratch"
	"github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/require"
)

const videoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

type fakeClient struct {
	video     *youtube.Video
	videoErr  error
	streamErr error
	broken    bool

	mu        sync.Mutex
	requested []int
}

func (c *fakeClient) GetVideoContext(_ context.Context, _ string) (*youtube.Video, error) {
	if c.videoErr != nil {
		return nil, c.videoErr
	}

	return c.video, nil
}

func (c *fakeClient) GetStreamContext(_ context.Context, _ *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error) {
	c.mu.Lock()
	c.requested = append(c.requested, format.ItagNo)
	c.mu.Unlock()

	if c.streamErr != nil {
		return nil, 0, c.streamErr
	}

	body := streamBody(format.ItagNo)
	if c.broken {
		return io.NopCloser(io.MultiReader(bytes.NewReader(body), errReader{})), 0, nil
	}

	return io.NopCloser(bytes.NewReader(body)), int64(len(body)), nil
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

type fakeTranscoder struct {
	err error
}

func (t fakeTranscoder) ToMP3(_ context.Context, in, out string) error {
	if t.err != nil {
		return t.err
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	return os.WriteFile(out, append([]byte("ID3"), data...), 0o644)
}

func streamBody(itag int) []byte {
	return []byte(fmt.Sprintf("stream-%d", itag))
}

func testVideo() *youtube.Video {
	return &youtube.Video{
		ID:             "dQw4w9WgXcQ",
		Title:          "Foo/Bar: Baz?",
		Author:         "Rick",
		Description:    "desc",
		Views:          1000,
		Duration:       212 * time.Second,
		HLSManifestURL: "",
		Thumbnails: youtube.Thumbnails{
			{URL: "https://i.ytimg.com/small.jpg"},
			{URL: "https://i.ytimg.com/large.jpg"},
		},
		Formats: youtube.FormatList{
			{ItagNo: 18, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`, Quality: "medium", QualityLabel: "360p", Width: 640, Height: 360, Bitrate: 500000, AudioChannels: 2, ContentLength: 1536},
			{ItagNo: 22, MimeType: `video/mp4; codecs="avc1.64001F, mp4a.40.2"`, Quality: "hd720", QualityLabel: "720p", Width: 1280, Height: 720, Bitrate: 1500000, AudioChannels: 2, ContentLength: 176729866},
			{ItagNo: 43, MimeType: `video/webm; codecs="vp8.0, vorbis"`, Quality: "medium", QualityLabel: "360p", Width: 640, Height: 360, Bitrate: 400000, AudioChannels: 2},
			{ItagNo: 137, MimeType: `video/mp4; codecs="avc1.640028"`, Quality: "hd1080", QualityLabel: "1080p", Width: 1920, Height: 1080, Bitrate: 4000000},
			{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, Quality: "tiny", Bitrate: 130000, AudioChannels: 2, ContentLength: 3 * 1024 * 1024},
			{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, Quality: "tiny", Bitrate: 160000, AudioChannels: 2},
			{ItagNo: 139, MimeType: `audio/mp4; codecs="mp4a.40.5"`, Quality: "tiny", Bitrate: 48000, AudioChannels: 2, ContentLength: 1024},
		},
	}
}

func newTestDownloader(t *testing.T, c *fakeClient) (*downloader, *scratch.Space) {
	t.Helper()

	space := scratch.New(t.TempDir())

	return newDownloader(c, space, nil), space
}

func requireStatus(t *testing.T, err error, status int, message string) {
	t.Helper()

	gotStatus, gotMessage := downloaders.StatusOf(err)
	require.Equal(t, status, gotStatus, err)
	require.Equal(t, message, gotMessage)
}

func requireEmptyDir(t *testing.T, space *scratch.Space) {
	t.Helper()

	entries, err := os.ReadDir(space.Dir())
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestValidIsCatchAll(t *testing.T) {
	d := New(http.DefaultClient, scratch.New(t.TempDir()), nil)

	require.Equal(t, "youtube", d.Name())
	require.True(t, d.Valid(videoURL))
	require.True(t, d.Valid("https://example.com/anything"))
}

func TestInfo(t *testing.T) {
	d, _ := newTestDownloader(t, &fakeClient{video: testVideo()})

	info, err := d.Info(context.Background(), videoURL)
	require.NoError(t, err)
	require.Equal(t, downloaders.MediaInfo{
		Title:              "Foo/Bar: Baz?",
		Author:             "Rick",
		LengthSeconds:      212,
		ViewCount:          1000,
		Thumbnail:          "https://i.ytimg.com/small.jpg",
		Description:        "desc",
		EstimatedVideoSize: "168.54 MB",
		EstimatedAudioSize: "Unknown",
	}, *info)
}

func TestInfoLiveAndSparse(t *testing.T) {
	video := &youtube.Video{
		Title:          "live",
		HLSManifestURL: "https://manifest.googlevideo.com/live.m3u8",
		Formats: youtube.FormatList{
			{ItagNo: 140, Bitrate: 130000, AudioChannels: 2, ContentLength: 1536},
		},
	}
	d, _ := newTestDownloader(t, &fakeClient{video: video})

	info, err := d.Info(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	require.True(t, info.IsLiveContent)
	require.False(t, info.IsPrivate)
	require.Empty(t, info.Thumbnail)
	require.Equal(t, "Unknown", info.EstimatedVideoSize)
	require.Equal(t, "1.5 KB", info.EstimatedAudioSize)
}

func TestInfoErrors(t *testing.T) {
	c := &fakeClient{video: testVideo()}
	d, _ := newTestDownloader(t, c)

	for _, url := range []string{"https://example.com/watch", "abc", ""} {
		_, err := d.Info(context.Background(), url)
		requireStatus(t, err, http.StatusBadRequest, "Invalid YouTube URL")
	}

	c.videoErr = errors.New("can't bypass age restriction")
	_, err := d.Info(context.Background(), videoURL)
	requireStatus(t, err, http.StatusInternalServerError, "Failed to get video info")
}

func TestSelectFormat(t *testing.T) {
	video := sortVideo(mp4Only(muxed(testVideo().Formats)))
	audio := sortAudio(audioOnly(testVideo().Formats))

	cases := []struct {
		formats youtube.FormatList
		quality string
		itag    int
	}{
		{video, "", 22},
		{video, "highest", 22},
		{video, "lowest", 18},
		{video, "720p", 22},
		{video, "MEDIUM", 18},
		{video, "18", 18},
		{audio, "", 251},
		{audio, "highestaudio", 251},
		{audio, "lowestaudio", 139},
		{audio, "140", 140},
	}

	for _, c := range cases {
		f := selectFormat(c.formats, c.quality)
		require.NotNil(t, f, c.quality)
		require.Equal(t, c.itag, f.ItagNo, c.quality)
	}

	require.Nil(t, selectFormat(video, "1080p"))
	require.Nil(t, selectFormat(video, "137"))
	require.Nil(t, selectFormat(nil, ""))
}

func TestMP4OnlyFallsBack(t *testing.T) {
	webm := youtube.FormatList{{ItagNo: 43, MimeType: "video/webm", Height: 360, AudioChannels: 2}}
	require.Equal(t, webm, mp4Only(webm))
}

func TestDownloadMP4(t *testing.T) {
	c := &fakeClient{video: testVideo()}
	d, space := newTestDownloader(t, c)

	payload, err := d.Download(context.Background(), downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP4})
	require.NoError(t, err)
	require.Equal(t, streamBody(22), payload.Data)
	require.Equal(t, "FooBar Baz.mp4", payload.FileName)
	require.Equal(t, "video/mp4", payload.MIMEType)
	require.Equal(t, []int{22}, c.requested)
	requireEmptyDir(t, space)
}

func TestDownloadMP3Passthrough(t *testing.T) {
	c := &fakeClient{video: testVideo()}
	d, space := newTestDownloader(t, c)

	payload, err := d.Download(context.Background(), downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP3, Quality: "lowestaudio"})
	require.NoError(t, err)
	require.Equal(t, streamBody(139), payload.Data)
	require.Equal(t, "FooBar Baz.mp3", payload.FileName)
	require.Equal(t, "audio/mpeg", payload.MIMEType)
	requireEmptyDir(t, space)
}

func TestDownloadMP3Transcoded(t *testing.T) {
	c := &fakeClient{video: testVideo()}
	space := scratch.New(t.TempDir())
	d := newDownloader(c, space, fakeTranscoder{})

	payload, err := d.Download(context.Background(), downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP3})
	require.NoError(t, err)
	require.Equal(t, append([]byte("ID3"), streamBody(251)...), payload.Data)
	requireEmptyDir(t, space)

	d = newDownloader(c, space, fakeTranscoder{err: errors.New("exit status 1")})
	_, err = d.Download(context.Background(), downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP3})
	requireStatus(t, err, http.StatusInternalServerError, "Failed to process audio")
	requireEmptyDir(t, space)
}

func TestDownloadFileNameFallback(t *testing.T) {
	video := testVideo()
	video.Title = "???"
	d, _ := newTestDownloader(t, &fakeClient{video: video})

	payload, err := d.Download(context.Background(), downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP4})
	require.NoError(t, err)
	require.Equal(t, "video.mp4", payload.FileName)

	payload, err = d.Download(context.Background(), downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP3})
	require.NoError(t, err)
	require.Equal(t, "audio.mp3", payload.FileName)
}

func TestDownloadErrors(t *testing.T) {
	c := &fakeClient{video: testVideo()}
	d, space := newTestDownloader(t, c)
	ctx := context.Background()

	_, err := d.Download(ctx, downloaders.MediaRequest{URL: "https://example.com/watch", Format: downloaders.FormatMP4})
	requireStatus(t, err, http.StatusBadRequest, "Invalid YouTube URL")

	_, err = d.Download(ctx, downloaders.MediaRequest{URL: videoURL, Format: "avi"})
	requireStatus(t, err, http.StatusBadRequest, `Invalid format. Use "mp4" or "mp3"`)

	_, err = d.Download(ctx, downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP4, Quality: "4320p"})
	requireStatus(t, err, http.StatusBadRequest, "Requested quality is not available")

	c.streamErr = errors.New("403")
	_, err = d.Download(ctx, downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP3})
	requireStatus(t, err, http.StatusInternalServerError, "Failed to download audio")

	c.streamErr = nil
	c.broken = true
	_, err = d.Download(ctx, downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP4})
	requireStatus(t, err, http.StatusInternalServerError, "Failed to download video")
	requireEmptyDir(t, space)

	c.videoErr = errors.New("unavailable")
	_, err = d.Download(ctx, downloaders.MediaRequest{URL: videoURL, Format: downloaders.FormatMP4})
	requireStatus(t, err, http.StatusInternalServerError, "Failed to get video info")
}

func TestDownloadConcurrentSameTitle(t *testing.T) {
	c := &fakeClient{video: testVideo()}
	d, space := newTestDownloader(t, c)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			format, want := downloaders.FormatMP4, streamBody(22)
			if i%2 == 1 {
				format, want = downloaders.FormatMP3, streamBody(251)
			}

			payload, err := d.Download(context.Background(), downloaders.MediaRequest{URL: videoURL, Format: format})
			if !assertNoError(t, err) {
				return
			}

			if !bytes.Equal(want, payload.Data) {
				t.Errorf("cross-contaminated payload for %s: %q", format, payload.Data)
			}
		}(i)
	}
	wg.Wait()

	requireEmptyDir(t, space)
}

func assertNoError(t *testing.T, err error) bool {
	t.Helper()

	if err != nil {
		t.Errorf("unexpected error: %v", err)

		return false
	}

	return true
}
