package transcoder

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/StounhandJ/clipper/internal/utils"
)

type Transcoder interface {
	ToMP3(ctx context.Context, in, out string) error
}

type FFmpeg struct {
	Path string
}

func New(path string) *FFmpeg {
	return &FFmpeg{Path: path}
}

func mp3Args(in, out string) []string {
	return []string{"-y", "-i", in, "-vn", "-f", "mp3", "-ab", "192k", out}
}

// ToMP3 перекодирует аудиодорожку в настоящий mp3
func (f *FFmpeg) ToMP3(ctx context.Context, in, out string) error {
	cmd := exec.CommandContext(ctx, f.Path, mp3Args(in, out)...)

	if output, err := cmd.CombinedOutput(); err != nil {
		utils.Log.WithField("input", in).Errorf("ffmpeg: %v, вывод: %s", err, strings.TrimSpace(string(output)))

		return fmt.Errorf("ffmpeg convert: %w", err)
	}

	return nil
}
