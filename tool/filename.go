package tool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeFilename strips everything but letters, digits, spaces, dashes,
// underscores and dots, then trims trailing whitespace. May return "" when
// nothing survives; callers pick the fallback name.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " \t")
}

// NextAvailablePath returns the first free path under dir for fileName,
// probing base_1.ext, base_2.ext, ... in increasing order when the name is
// taken (e.g. video.mp4 -> video_1.mp4 -> video_2.mp4).
func NextAvailablePath(dir, fileName string) string {
	try := filepath.Join(dir, fileName)
	if _, err := os.Stat(try); os.IsNotExist(err) {
		return try
	}
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	for n := 1; ; n++ {
		try = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, n, ext))
		if _, err := os.Stat(try); os.IsNotExist(err) {
			return try
		}
	}
}
