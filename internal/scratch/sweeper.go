package scratch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/StounhandJ/clipper/internal/utils"
)

// RunSweeper периодически удаляет файлы, оставшиеся после падения процесса
// между записью и удалением. Блокирует до отмены ctx.
func (s *Space) RunSweeper(ctx context.Context, interval, ttl time.Duration) {
	utils.Log.Info("[GC] Запуск очистки временного каталога ", s.dir)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ttl)
		}
	}
}

// Sweep удаляет clip_* старше ttl и возвращает их количество
func (s *Space) Sweep(ttl time.Duration) int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Log.Errorf("[GC] Ошибка чтения каталога %s: %v", s.dir, err)
		}

		return 0
	}

	removed := 0
	now := time.Now()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), filePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if now.Sub(info.ModTime()) <= ttl {
			continue
		}

		fullPath := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(fullPath); err != nil {
			utils.Log.Errorf("[GC] Ошибка удаления %s: %v", fullPath, err)

			continue
		}

		removed++
	}

	if removed > 0 {
		utils.Log.Infof("[GC] Удалено осиротевших файлов: %d", removed)
	}

	return removed
}
