package stats

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	keyPrefix = "clipper:downloads"
	logEvery  = 10
)

// Counter считает отданные ролики по платформам.
// С Redis счётчики общие для всех инстансов, без него живут в памяти процесса.
type Counter struct {
	rdb *redis.Client

	mu    sync.Mutex
	local map[string]int64
	total atomic.Int64
}

// New rdb может быть nil
func New(rdb *redis.Client) *Counter {
	return &Counter{
		rdb:   rdb,
		local: make(map[string]int64),
	}
}

func key(platform string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, platform)
}

// Inc увеличивает счётчик платформы и возвращает новое значение
func (c *Counter) Inc(ctx context.Context, platform string) int64 {
	value := c.incLocal(platform)

	if c.rdb != nil {
		shared, err := c.rdb.Incr(ctx, key(platform)).Result()
		if err != nil {
			utils.Log.WithField("platform", platform).Warn("Redis недоступен, счётчик только локальный: ", err)
		} else {
			value = shared
		}
	}

	if total := c.total.Add(1); total%logEvery == 0 {
		utils.Log.WithFields(logrus.Fields{
			"platform": platform,
			"value":    value,
		}).Infof("Количество отданных роликов %d", total)
	}

	return value
}

// Value текущее значение счётчика платформы
func (c *Counter) Value(ctx context.Context, platform string) (int64, error) {
	if c.rdb == nil {
		c.mu.Lock()
		defer c.mu.Unlock()

		return c.local[platform], nil
	}

	value, err := c.rdb.Get(ctx, key(platform)).Int64()
	if err == redis.Nil {
		return 0, nil
	}

	return value, err
}

// Total количество роликов, отданных этим процессом
func (c *Counter) Total() int64 {
	return c.total.Load()
}

func (c *Counter) incLocal(platform string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.local[platform]++

	return c.local[platform]
}
