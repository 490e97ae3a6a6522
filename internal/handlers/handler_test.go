package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/StounhandJ/clipper/internal/downloaders"
	tiktok "github.com/StounhandJ/clipper/internal/downloaders/tik_tok"
	"github.com/StounhandJ/clipper/internal/downloaders/youtube"
	"github.com/StounhandJ/clipper/internal/scratch"
	"github.com/StounhandJ/clipper/internal/stats"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// fakeDownloader прогоняет данные через scratch так же, как YouTube
type fakeDownloader struct {
	space *scratch.Space
}

func (fakeDownloader) Name() string {
	return "fake"
}

func (fakeDownloader) Valid(url string) bool {
	return strings.HasPrefix(url, "https://fake.example/")
}

func (fakeDownloader) Info(_ context.Context, url string) (*downloaders.MediaInfo, error) {
	if strings.HasSuffix(url, "/boom") {
		return nil, fmt.Errorf("secret upstream detail")
	}

	return &downloaders.MediaInfo{Title: "Fake", Author: "Tester", LengthSeconds: 3, EstimatedVideoSize: "1 KB", EstimatedAudioSize: "Unknown"}, nil
}

func (d fakeDownloader) Download(_ context.Context, req downloaders.MediaRequest) (*downloaders.MediaPayload, error) {
	format, err := downloaders.ParseFormat(string(req.Format))
	if err != nil {
		return nil, downloaders.BadRequest("bad format", err)
	}

	body := strings.Repeat(string(format)+"-"+strings.TrimPrefix(req.URL, "https://fake.example/")+";", 100)

	path, err := d.space.Spool(strings.NewReader(body), string(format))
	if err != nil {
		return nil, downloaders.Internal("Failed to download", err)
	}

	data, err := d.space.Drain(path)
	if err != nil {
		return nil, downloaders.Internal("Failed to process", err)
	}

	return &downloaders.MediaPayload{
		Data:     data,
		FileName: `My Clip.` + string(format),
		MIMEType: format.MIMEType(),
	}, nil
}

type testServer struct {
	client  *fasthttp.Client
	space   *scratch.Space
	counter *stats.Counter
	media   *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/":
			fmt.Fprintf(w, `{"code":0,"msg":"success","data":{"title":"Foo/Bar: Baz?","size":1536,"play":"http://%s/play.mp4","author":{"nickname":"dancer"}}}`, r.Host)
		default:
			_, _ = w.Write(append([]byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2"), make([]byte, 1000)...))
		}
	}))
	t.Cleanup(media.Close)

	space := scratch.New(t.TempDir())
	counter := stats.New(nil)

	h := NewHandler([]downloaders.IDownloader{
		fakeDownloader{space: space},
		tiktok.New(media.Client(), media.URL+"/api/"),
		youtube.New(http.DefaultClient, space, nil),
	}, counter, 5*time.Second)

	ln := fasthttputil.NewInmemoryListener()
	server := &fasthttp.Server{Handler: h.Route}

	go func() {
		_ = server.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = server.Shutdown()
	})

	return &testServer{
		client: &fasthttp.Client{
			Dial: func(string) (net.Conn, error) {
				return ln.Dial()
			},
		},
		space:   space,
		counter: counter,
		media:   media,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *fasthttp.Response {
	t.Helper()

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI("http://clipper" + path)
	req.Header.SetMethod(method)
	if body != "" {
		req.Header.SetContentType("application/json")
		req.SetBodyString(body)
	}

	resp := &fasthttp.Response{}
	require.NoError(t, s.client.DoTimeout(req, resp, 10*time.Second))

	return resp
}

func requireError(t *testing.T, resp *fasthttp.Response, status int, message string) {
	t.Helper()

	require.Equal(t, status, resp.StatusCode(), string(resp.Body()))
	require.Equal(t, "application/json", string(resp.Header.ContentType()))

	var got downloaders.ErrorResponse
	require.NoError(t, got.UnmarshalJSON(resp.Body()))
	require.Equal(t, message, got.Error)
}

func TestValidation(t *testing.T) {
	s := newTestServer(t)

	requireError(t, s.do(t, fasthttp.MethodPost, "/info", `{}`), 400, "URL is required")
	requireError(t, s.do(t, fasthttp.MethodPost, "/info", `{"url":null}`), 400, "URL is required")
	requireError(t, s.do(t, fasthttp.MethodPost, "/download", `{"url":"https://fake.example/a"}`), 400, "URL and format are required")
	requireError(t, s.do(t, fasthttp.MethodPost, "/download", `{"format":"mp4"}`), 400, "URL and format are required")
	requireError(t, s.do(t, fasthttp.MethodPost, "/info", `{"url":`), 400, "Invalid request body")
	requireError(t, s.do(t, fasthttp.MethodPost, "/info", `{"url":42}`), 400, "Invalid request body")
	requireError(t, s.do(t, fasthttp.MethodPost, "/download", ``), 400, "Invalid request body")
	requireError(t, s.do(t, fasthttp.MethodGet, "/info", ``), 405, "Method not allowed")
	requireError(t, s.do(t, fasthttp.MethodPost, "/health", `{}`), 405, "Method not allowed")
	requireError(t, s.do(t, fasthttp.MethodGet, "/nope", ``), 404, "Not found")
}

func TestInvalidYouTubeURL(t *testing.T) {
	s := newTestServer(t)

	requireError(t, s.do(t, fasthttp.MethodPost, "/info", `{"url":"https://example.com/watch"}`), 400, "Invalid YouTube URL")
	requireError(t, s.do(t, fasthttp.MethodPost, "/download", `{"url":"not a url","format":"mp4"}`), 400, "Invalid YouTube URL")
}

func TestTikTokFormat(t *testing.T) {
	s := newTestServer(t)

	requireError(t, s.do(t, fasthttp.MethodPost, "/download", `{"url":"https://vm.tiktok.com/ZMabcdef/","format":"mp3"}`), 400, "Only MP4 download is supported for TikTok.")
}

func TestTikTokInfo(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fasthttp.MethodPost, "/info", `{"url":"https://www.tiktok.com/@u/video/1"}`)
	require.Equal(t, 200, resp.StatusCode())
	require.JSONEq(t, `{
		"title":"Foo/Bar: Baz?",
		"author":"dancer",
		"lengthSeconds":0,
		"viewCount":0,
		"thumbnail":"",
		"description":"Foo/Bar: Baz?",
		"isPrivate":false,
		"isLiveContent":false,
		"estimatedVideoSize":"1.5 KB",
		"estimatedAudioSize":"N/A (TikTok)"
	}`, string(resp.Body()))
}

func TestTikTokDownload(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fasthttp.MethodPost, "/download", `{"url":"https://www.tiktok.com/@u/video/1","format":"mp4"}`)
	require.Equal(t, 200, resp.StatusCode(), string(resp.Body()))
	require.Equal(t, "video/mp4", string(resp.Header.ContentType()))
	require.Equal(t, `attachment; filename="FooBar Baz.mp4"`, string(resp.Header.Peek("Content-Disposition")))
	require.Equal(t, strconv.Itoa(len(resp.Body())), string(resp.Header.Peek("Content-Length")))
	require.Equal(t, "1 KB", string(resp.Header.Peek("X-File-Size")))
	require.Equal(t, "no-cache", string(resp.Header.Peek("Cache-Control")))

	value, err := s.counter.Value(context.Background(), "tiktok")
	require.NoError(t, err)
	require.Equal(t, int64(1), value)
}

func TestInternalErrorIsMasked(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fasthttp.MethodPost, "/info", `{"url":"https://fake.example/boom"}`)
	requireError(t, resp, 500, "Internal server error")
	require.NotContains(t, string(resp.Body()), "secret")
}

func TestDownloadCleansScratch(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fasthttp.MethodPost, "/download", `{"url":"https://fake.example/a","format":"mp3"}`)
	require.Equal(t, 200, resp.StatusCode())
	require.Equal(t, "audio/mpeg", string(resp.Header.ContentType()))
	require.Equal(t, `attachment; filename="My Clip.mp3"`, string(resp.Header.Peek("Content-Disposition")))
	require.Equal(t, strconv.Itoa(len(resp.Body())), string(resp.Header.Peek("Content-Length")))

	entries, err := os.ReadDir(s.space.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestConcurrentDownloads(t *testing.T) {
	s := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			format := "mp4"
			if i%2 == 1 {
				format = "mp3"
			}
			id := fmt.Sprintf("clip%d", i)

			req := fasthttp.AcquireRequest()
			defer fasthttp.ReleaseRequest(req)
			req.SetRequestURI("http://clipper/download")
			req.Header.SetMethod(fasthttp.MethodPost)
			req.SetBodyString(fmt.Sprintf(`{"url":"https://fake.example/%s","format":"%s"}`, id, format))

			resp := &fasthttp.Response{}
			if err := s.client.DoTimeout(req, resp, 10*time.Second); err != nil {
				t.Error(err)

				return
			}

			want := []byte(strings.Repeat(format+"-"+id+";", 100))
			if !bytes.Equal(want, resp.Body()) {
				t.Errorf("request %d got foreign payload", i)
			}
		}(i)
	}
	wg.Wait()

	entries, err := os.ReadDir(s.space.Dir())
	require.NoError(t, err)
	require.Empty(t, entries)

	value, err := s.counter.Value(context.Background(), "fake")
	require.NoError(t, err)
	require.Equal(t, int64(12), value)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, fasthttp.MethodGet, "/health", ``)
	require.Equal(t, 200, resp.StatusCode())
	require.JSONEq(t, `{"status":"ok"}`, string(resp.Body()))

	s.do(t, fasthttp.MethodPost, "/info", `{}`)

	resp = s.do(t, fasthttp.MethodGet, "/metrics", ``)
	require.Equal(t, 200, resp.StatusCode())
	require.Contains(t, string(resp.Body()), `clipper_requests_total{endpoint="/info",status="400"}`)
}
