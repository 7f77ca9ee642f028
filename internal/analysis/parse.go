package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp parses an RFC3339-like timestamp (with either a zone offset
// or a trailing Z) and normalizes it to UTC so every comparison within one
// run happens in the same frame. Missing or malformed input returns nil;
// callers exclude such records from date-dependent aggregates but keep them
// in total counts.
func ParseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// ParseCount converts an API count field to a non-negative integer. Absent,
// malformed, or negative values collapse to 0 so no downstream ratio ever
// sees a bogus operand. This is the single place the defaulting policy for
// counts lives.
func ParseCount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// channelURLPatterns are tried in priority order: channel-ID link, custom
// link, legacy user link, handle link, bare channel ID.
var channelURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/channel/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/c/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/user/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/(@[A-Za-z0-9_.-]+)`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{24,})$`),
}

// ExtractChannelIdentifier pulls the best-effort channel identifier out of a
// free-text input line. It never guesses: when no pattern matches and the
// line is not a bare handle, the trimmed input is returned unchanged and
// resolution is left to the API lookup.
func ExtractChannelIdentifier(line string) string {
	line = strings.TrimSpace(line)
	for _, pat := range channelURLPatterns {
		if m := pat.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	if strings.HasPrefix(line, "@") {
		return line
	}
	return line
}
