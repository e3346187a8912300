package slug

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Generate строит URL-safe slug из заголовка.
func Generate(title string) string {
	s := strings.ToLower(title)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Valid проверяет, что строка уже является slug.
func Valid(s string) bool {
	return s != "" && Generate(s) == s
}

// WithSuffix добавляет числовой суффикс для разрешения коллизий: bloom-2.
func WithSuffix(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
