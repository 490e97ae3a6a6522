// Package scratch - временные файлы загрузок.
// Каждый запрос получает собственный путь, поэтому одинаковые заголовки роликов не пересекаются.
package scratch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/StounhandJ/clipper/internal/utils"
	"github.com/google/uuid"
)

const filePrefix = "clip_"

type Space struct {
	dir string
}

func New(dir string) *Space {
	return &Space{dir: dir}
}

func (s *Space) Dir() string {
	return s.dir
}

// Ensure создаёт каталог по требованию
func (s *Space) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create scratch dir %s: %w", s.dir, err)
	}

	return nil
}

// Path уникальный путь вида <dir>/clip_<uuid>.<ext>
func (s *Space) Path(ext string) string {
	name := filePrefix + uuid.NewString()
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}

	return filepath.Join(s.dir, name)
}

// Spool записывает поток во временный файл. При ошибке частичный файл удаляется.
func (s *Space) Spool(r io.Reader, ext string) (string, error) {
	if err := s.Ensure(); err != nil {
		return "", err
	}

	path := s.Path(ext)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	_, copyErr := io.Copy(f, r)
	closeErr := f.Close()

	if err := errors.Join(copyErr, closeErr); err != nil {
		s.Remove(path)

		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

// Drain читает файл в память и удаляет его в любом случае
func (s *Space) Drain(path string) ([]byte, error) {
	defer s.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

func (s *Space) Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.Log.WithField("path", path).Warnf("не удалось удалить временный файл: %v", err)
	}
}
