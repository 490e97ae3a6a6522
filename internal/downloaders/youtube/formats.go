package youtube

import (
	"slices"
	"strconv"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// muxed дорожки со звуком и картинкой
func muxed(formats youtube.FormatList) youtube.FormatList {
	var result youtube.FormatList
	for _, f := range formats {
		if f.AudioChannels > 0 && (f.Width > 0 || f.Height > 0) {
			result = append(result, f)
		}
	}

	return result
}

func audioOnly(formats youtube.FormatList) youtube.FormatList {
	var result youtube.FormatList
	for _, f := range formats {
		if f.AudioChannels > 0 && f.Width == 0 && f.Height == 0 {
			result = append(result, f)
		}
	}

	return result
}

// mp4Only оставляет mp4-контейнеры, если такие есть
func mp4Only(formats youtube.FormatList) youtube.FormatList {
	var result youtube.FormatList
	for _, f := range formats {
		if strings.HasPrefix(f.MimeType, "video/mp4") {
			result = append(result, f)
		}
	}

	if len(result) == 0 {
		return formats
	}

	return result
}

// sortVideo от лучшего к худшему: высота, затем битрейт
func sortVideo(formats youtube.FormatList) youtube.FormatList {
	slices.SortStableFunc(formats, func(a, b youtube.Format) int {
		if a.Height != b.Height {
			return b.Height - a.Height
		}

		return b.Bitrate - a.Bitrate
	})

	return formats
}

func sortAudio(formats youtube.FormatList) youtube.FormatList {
	slices.SortStableFunc(formats, func(a, b youtube.Format) int {
		return b.Bitrate - a.Bitrate
	})

	return formats
}

// selectFormat выбирает дорожку из отсортированного списка.
// quality: "" / highest*, lowest*, номер itag, либо метка вида "720p" / "hd720".
func selectFormat(formats youtube.FormatList, quality string) *youtube.Format {
	if len(formats) == 0 {
		return nil
	}

	quality = strings.ToLower(strings.TrimSpace(quality))

	switch quality {
	case "", "highest", "highestaudio", "highestvideo":
		return &formats[0]
	case "lowest", "lowestaudio", "lowestvideo":
		return &formats[len(formats)-1]
	}

	if itag, err := strconv.Atoi(quality); err == nil {
		for i := range formats {
			if formats[i].ItagNo == itag {
				return &formats[i]
			}
		}

		return nil
	}

	for i := range formats {
		if strings.EqualFold(formats[i].QualityLabel, quality) || strings.EqualFold(formats[i].Quality, quality) {
			return &formats[i]
		}
	}

	return nil
}

// containerExt расширение для промежуточного файла перед ffmpeg
func containerExt(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "audio/webm"):
		return "webm"
	case strings.HasPrefix(mimeType, "audio/mp4"):
		return "m4a"
	default:
		return "audio"
	}
}
