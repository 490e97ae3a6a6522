package utils

import (
	"errors"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

func RandomElement[T any](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, errors.New("slice is empty")
	}

	return s[rand.Intn(len(s))], nil
}

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

// В имени файла остаются только буквы/цифры/_, пробел и дефис
var unsafeFileNameChars = regexp.MustCompile(`[^\w -]`)

// SanitizeFileName готовит заголовок ролика для Content-Disposition.
// Любой пробельный символ (включая \r и \n) сначала превращается в пробел.
func SanitizeFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}

		return r
	}, name)

	return strings.TrimSpace(unsafeFileNameChars.ReplaceAllString(name, ""))
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize 1536 -> "1.5 KB", 0 -> "0 Bytes"
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	value := float64(bytes)
	i := 0

	for value >= 1024 && i < len(sizeUnits)-1 {
		value /= 1024
		i++
	}

	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}
