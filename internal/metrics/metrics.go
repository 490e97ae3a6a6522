package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/StounhandJ/clipper/internal/stats"
	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "clipper"

	scrapeTimeout = 2 * time.Second
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"endpoint"},
	)

	DownloadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "download_bytes_total",
			Help:      "Total bytes of media returned to clients",
		},
		[]string{"platform", "format"},
	)
)

func ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func ObserveDownload(platform, format string, size int) {
	DownloadBytesTotal.WithLabelValues(platform, format).Add(float64(size))
}

// RegisterTotals выставляет счётчики загрузок по платформам как gauge
func RegisterTotals(reg prometheus.Registerer, counter *stats.Counter, platforms []string) error {
	for _, platform := range platforms {
		gauge := prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "downloads",
				Help:        "Downloads served per platform",
				ConstLabels: prometheus.Labels{"platform": platform},
			},
			func() float64 {
				ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
				defer cancel()

				value, err := counter.Value(ctx, platform)
				if err != nil {
					utils.Log.WithField("platform", platform).Warn("Не удалось получить счётчик загрузок: ", err)
				}

				return float64(value)
			},
		)

		if err := reg.Register(gauge); err != nil {
			return err
		}
	}

	return nil
}
