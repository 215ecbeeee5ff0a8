package storage

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const (
	// maxFilenameLen keeps uuid-prefixed keys well under NAME_MAX and the
	// file_path column width.
	maxFilenameLen = 100
	maxExtLen      = 16
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces name to a safe, ASCII-only basename. Path
// separators become spaces, runs of whitespace become a single underscore,
// and anything outside [A-Za-z0-9_.-] is dropped. Leading and trailing dots
// and underscores are trimmed; an empty result becomes "file". Names longer
// than maxFilenameLen are cut down, keeping a short extension.
func SanitizeFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	s := b.String()

	s = strings.NewReplacer("/", " ", `\`, " ").Replace(s)
	s = strings.Join(strings.Fields(s), "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "._")

	if s == "" {
		return "file"
	}
	return truncateFilename(s)
}

// truncateFilename shortens an already sanitized, ASCII-only name.
func truncateFilename(s string) string {
	if len(s) <= maxFilenameLen {
		return s
	}
	ext := filepath.Ext(s)
	if len(ext) > maxExtLen {
		ext = ""
	}
	base := strings.TrimRight(s[:maxFilenameLen-len(ext)], "._")
	return base + ext
}

// objectKey prefixes the sanitized name with a random uuid so uploads with
// the same name never collide.
func objectKey(filename string) string {
	return uuid.NewString() + "_" + SanitizeFilename(filename)
}
