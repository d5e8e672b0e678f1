// Package textutil provides the pure formatting helpers used across the
// blog: truncation, date formatting, reading-time estimation, slug and ID
// generation, and small input-validation utilities. Nothing in this package
// touches shared state or does I/O.
package textutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// wordsPerMinute is the average reading speed the estimate is based on.
const wordsPerMinute = 200

// Truncate shortens text to at most maxLen characters. Text at or under the
// bound is returned unchanged; otherwise the prefix is trimmed of trailing
// whitespace and an ellipsis is appended.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimRight(string(runes[:maxLen]), " \t\n") + "..."
}

// FormatDate renders t as a long-form date, e.g. "January 15, 2024".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// relative-time bucket sizes in seconds: 365-day year, 30-day month,
// 7-day week.
var intervals = []struct {
	unit    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// RelativeTime renders the elapsed time between t and now as a phrase like
// "2 days ago", using the largest non-zero bucket. Anything under a minute
// is "just now".
func RelativeTime(t, now time.Time) string {
	secs := int64(now.Sub(t).Seconds())
	for _, iv := range intervals {
		if n := secs / iv.seconds; n >= 1 {
			unit := iv.unit
			if n != 1 {
				unit += "s"
			}
			return strconv.FormatInt(n, 10) + " " + unit + " ago"
		}
	}
	return "just now"
}

// ReadingTime estimates reading time in minutes for the given text at 200
// words per minute, rounding up. The minimum is 1 minute, even for empty
// text, matching the display behavior of the detail page header.
func ReadingTime(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if inWord {
				words++
				inWord = false
			}
		} else {
			inWord = true
		}
	}
	if inWord {
		words++
	}

	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped. Slugify is idempotent.
func Slugify(title string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ExtractYouTubeID pulls the video id out of a YouTube URL in watch,
// youtu.be, or embed form. It returns "" if the URL does not match.
func ExtractYouTubeID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. This is a
// presentation-level check, not an RFC validator.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// CapitalizeFirst upper-cases the first rune of s.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// NewID returns a new unique identifier for posts and comments created at
// runtime.
func NewID() string {
	return uuid.NewString()
}

// Debounce wraps fn so that rapid successive calls collapse into a single
// invocation, fired wait after the last call (trailing edge).
func Debounce(fn func(), wait time.Duration) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
}
